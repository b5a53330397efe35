package reduce

// Copyright (c) 2025 Colin McRae

import (
	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/scalar"
)

// Workspace holds the mutable state shared by ExpandQR, Step and the outer
// driver loops for a single reduction run: the working basis B, its
// Householder QR image, the reflector scalars T and sign flips D, and the
// optional transform-tracking matrices U/UInv (spec 3's data model).
type Workspace[F any] struct {
	Trait scalar.Trait[F]
	Ctrl  Ctrl

	B  *densemat.Matrix[F] // m x n, the basis being reduced, updated in place
	QR *densemat.Matrix[F] // m x n, Householder image of B
	T  []F                 // length n, reflector scalars tau_0..tau_{n-1}
	D  []float64           // length n, sign flips applied at HouseholderStep time

	U    *densemat.Matrix[F] // n x n, nil unless transform tracking is requested
	UInv *densemat.Matrix[F] // n x n, nil unless transform tracking is requested

	m, n     int
	nullity  int
	numSwaps int

	scratch []F // length n, reused by Step's deferred rank-1 update
}

// NewWorkspace allocates a workspace for reducing an m x n basis, copying b's
// columns into B and, if trackTransform is set, initializing U and UInv to
// the n x n identity.
func NewWorkspace[F any](trait scalar.Trait[F], ctrl Ctrl, b *densemat.Matrix[F], trackTransform bool) *Workspace[F] {
	m, n := b.Rows(), b.Cols()
	w := &Workspace[F]{
		Trait: trait,
		Ctrl:  ctrl,
		B:     densemat.New[F](m, n, trait.Zero),
		QR:    densemat.New[F](m, n, trait.Zero),
		T:     make([]F, n),
		D:     make([]float64, n),
		m:     m,
		n:     n,
	}
	for j := 0; j < n; j++ {
		w.B.SetCol(j, b.CloneCol(j))
	}
	if trackTransform {
		w.U = densemat.New[F](n, n, trait.Zero)
		w.UInv = densemat.New[F](n, n, trait.Zero)
		w.U.SetIdentity(trait.Zero(), trait.One())
		w.UInv.SetIdentity(trait.Zero(), trait.One())
	}
	w.scratch = make([]F, n)
	return w
}

func (w *Workspace[F]) axpyRowUInv(i, k int, x F) {
	if w.UInv == nil {
		return
	}
	t := w.Trait
	for j := 0; j < w.UInv.Cols(); j++ {
		w.UInv.Set(i, j, t.Add(w.UInv.At(i, j), t.Mul(x, w.UInv.At(k, j))))
	}
}
