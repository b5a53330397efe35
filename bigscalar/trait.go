// Package bigscalar implements scalar.Trait[*bignumber.BigNumber], the
// arbitrary-precision real scalar field backing the high-precision variants
// of ZDependenceSearch and AlgebraicRelationSearch. It is grounded on
// predrag3141/IPSLQ's bignumber package (the same arbitrary-precision type
// the teacher's own pslqops vendors), not on a hand-rolled big.Float layer.
package bigscalar

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"
	"strconv"

	"github.com/predrag3141/IPSLQ/bignumber"

	"github.com/predrag3141/lllreduce/scalar"
)

// Trait implements scalar.Trait[*bignumber.BigNumber]. bignumber's own
// precision is a package-level global (set by bignumber.Init), so Trait only
// remembers the bit count it initialized with, to compute Eps().
type Trait struct {
	precisionBits int64
}

var _ scalar.Trait[*bignumber.BigNumber] = Trait{}

// NewTrait initializes bignumber's global precision to precisionBits (which
// must be even and positive, per bignumber.Init) and returns a Trait that
// reports the corresponding machine epsilon.
func NewTrait(precisionBits int64) (Trait, error) {
	if err := bignumber.Init(precisionBits); err != nil {
		return Trait{}, fmt.Errorf("bigscalar.NewTrait: %q", err.Error())
	}
	return Trait{precisionBits: precisionBits}, nil
}

func (Trait) Zero() *bignumber.BigNumber { return bignumber.NewFromInt64(0) }
func (Trait) One() *bignumber.BigNumber  { return bignumber.NewFromInt64(1) }

func (Trait) FromInt(n int) *bignumber.BigNumber { return bignumber.NewFromInt64(int64(n)) }

// FromFloat64 round-trips x through a decimal string, mirroring how the
// teacher's own callers construct BigNumbers from literal decimal input
// (NewFromDecimalString) rather than assembling a big.Float by hand.
func (Trait) FromFloat64(x float64) *bignumber.BigNumber {
	s := strconv.FormatFloat(x, 'f', -1, 64)
	bn, err := bignumber.NewFromDecimalString(s)
	if err != nil {
		return bignumber.NewFromInt64(0)
	}
	return bn
}

func (Trait) Add(a, b *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromInt64(0).Add(a, b)
}

func (Trait) Sub(a, b *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromInt64(0).Sub(a, b)
}

func (Trait) Mul(a, b *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromInt64(0).Mul(a, b)
}

func (Trait) Div(a, b *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	q, err := bignumber.NewFromInt64(0).Quo(a, b)
	if err != nil {
		return nil, fmt.Errorf("bigscalar.Trait.Div: %q", err.Error())
	}
	return q, nil
}

func (Trait) Neg(a *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromInt64(0).Sub(bignumber.NewFromInt64(0), a)
}

// Conj is the identity: bignumber has no complex counterpart.
func (Trait) Conj(a *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromInt64(0).Set(a)
}

func (t Trait) Re(a *bignumber.BigNumber) float64 {
	f, _ := a.AsFloat().Float64()
	return f
}

func (Trait) Im(*bignumber.BigNumber) float64 { return 0 }

func (t Trait) Abs(a *bignumber.BigNumber) float64 {
	abs := bignumber.NewFromInt64(0).Abs(a)
	f, _ := abs.AsFloat().Float64()
	return f
}

// Sqrt returns zero on a negative input rather than propagating an error,
// since scalar.Trait's Sqrt has no error return; the reduction core only
// ever calls it on column norms, which are never negative.
func (Trait) Sqrt(a *bignumber.BigNumber) *bignumber.BigNumber {
	r, err := bignumber.NewFromInt64(0).Sqrt(a)
	if err != nil {
		return bignumber.NewFromInt64(0)
	}
	return r
}

// Round rounds half away from zero, matching scalar.Real's convention.
// bignumber only exposes RoundTowardsZero, so half-away-from-zero rounding
// is built from it: add or subtract one half before truncating, depending
// on sign.
func (Trait) Round(a *bignumber.BigNumber) *bignumber.BigNumber {
	half, _ := bignumber.NewFromDecimalString("0.5")
	var shifted *bignumber.BigNumber
	if a.IsNegative() {
		shifted = bignumber.NewFromInt64(0).Sub(a, half)
	} else {
		shifted = bignumber.NewFromInt64(0).Add(a, half)
	}
	return shifted.RoundTowardsZero()
}

func (t Trait) Log(a *bignumber.BigNumber) float64 {
	return math.Log(t.Abs(a))
}

// IsFinite is always true: bignumber has no NaN/overflow representation.
// Precision exhaustion shows up instead as a norm exceeding 1/Eps(), which
// internal/reduce's overflow guard already checks independently of
// IsFinite.
func (Trait) IsFinite(*bignumber.BigNumber) bool { return true }

func (t Trait) Eps() float64 {
	return math.Ldexp(1, -int(t.precisionBits))
}

func (Trait) Phi() float64 { return 1 }

func (t Trait) Dot(x, y []*bignumber.BigNumber) *bignumber.BigNumber {
	sum := bignumber.NewFromInt64(0)
	for i := range x {
		sum.MulAdd(x[i], y[i])
	}
	sum.Normalize(0)
	return sum
}

func (t Trait) Axpy(alpha *bignumber.BigNumber, x, y []*bignumber.BigNumber) {
	for i := range x {
		y[i].MulAdd(alpha, x[i])
		y[i].Normalize(0)
	}
}

func (t Trait) Nrm2(x []*bignumber.BigNumber) float64 {
	sumSq := bignumber.NewFromInt64(0)
	for _, xi := range x {
		sumSq.MulAdd(xi, xi)
	}
	sumSq.Normalize(0)
	root, err := bignumber.NewFromInt64(0).Sqrt(sumSq)
	if err != nil {
		return 0
	}
	f, _ := root.AsFloat().Float64()
	return f
}

func (Trait) Scale(alpha *bignumber.BigNumber, x []*bignumber.BigNumber) {
	for i := range x {
		x[i].Mul(x[i], alpha)
	}
}

// LeftReflector adapts the LAPACK-style reflector construction scalar.Real
// and scalar.Complex delegate to gonum for: no arbitrary-precision LAPACK
// exists anywhere in the retrieved dependency graph, so this is hand-rolled
// arithmetic over bignumber's own Add/Sub/Mul/Sqrt/Quo, structurally
// following the same beta/tau derivation as scalar.Complex.LeftReflector.
func (t Trait) LeftReflector(alpha *bignumber.BigNumber, x []*bignumber.BigNumber) (*bignumber.BigNumber, *bignumber.BigNumber) {
	xnormSq := bignumber.NewFromInt64(0)
	for _, xi := range x {
		xnormSq.MulAdd(xi, xi)
	}
	xnormSq.Normalize(0)
	if xnormSq.IsZero() {
		return alpha, bignumber.NewFromInt64(0)
	}

	alphaSq := bignumber.NewFromInt64(0).Mul(alpha, alpha)
	normSq := bignumber.NewFromInt64(0).Add(alphaSq, xnormSq)
	norm, err := bignumber.NewFromInt64(0).Sqrt(normSq)
	if err != nil {
		return alpha, bignumber.NewFromInt64(0)
	}

	var beta *bignumber.BigNumber
	if alpha.IsNegative() {
		beta = norm
	} else {
		beta = bignumber.NewFromInt64(0).Sub(bignumber.NewFromInt64(0), norm)
	}

	diff := bignumber.NewFromInt64(0).Sub(beta, alpha)
	tau, err := bignumber.NewFromInt64(0).Quo(diff, beta)
	if err != nil {
		tau = bignumber.NewFromInt64(0)
	}

	denom := bignumber.NewFromInt64(0).Sub(alpha, beta)
	for i := range x {
		scaled, qerr := bignumber.NewFromInt64(0).Quo(x[i], denom)
		if qerr == nil {
			x[i].Set(scaled)
		}
	}

	return beta, tau
}

func (Trait) SafeNorm(x, y float64) float64 { return math.Hypot(x, y) }
