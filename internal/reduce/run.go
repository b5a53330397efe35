package reduce

// Copyright (c) 2025 Colin McRae

import (
	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/scalar"
)

// Result is the outcome of a completed reduction: the reduced basis, the
// optional unimodular transform and its inverse, and the run's Info.
type Result[F any] struct {
	B    *densemat.Matrix[F]
	U    *densemat.Matrix[F]
	UInv *densemat.Matrix[F]
	Info Info
}

// Run validates ctrl, builds a workspace over b, and executes the flat or
// deep driver according to ctrl.Deep. trackTransform requests U/UInv.
func Run[F any](trait scalar.Trait[F], ctrl Ctrl, b *densemat.Matrix[F], trackTransform bool, caller string) (Result[F], error) {
	caller = callerf(caller, "Run")
	if err := ctrl.Validate(caller); err != nil {
		return Result[F]{}, err
	}

	w := NewWorkspace(trait, ctrl, b, trackTransform)

	var info Info
	var err error
	if ctrl.Deep {
		info, err = w.UnblockedDeepAlg(caller)
	} else {
		info, err = w.UnblockedAlg(caller)
	}
	if err != nil {
		return Result[F]{}, err
	}

	return Result[F]{B: w.B, U: w.U, UInv: w.UInv, Info: info}, nil
}

// RecursiveLLL dispatches to the unblocked flat or deep driver according to
// ctrl.Deep. The tree-structured, block-recursive scheduling a full
// recursive implementation would add is out of scope; cutoff is accepted so
// callers written against a future blocked driver do not need to change,
// but for every basis size this resolves to a single top-level call to the
// unblocked driver.
func RecursiveLLL[F any](trait scalar.Trait[F], ctrl Ctrl, b *densemat.Matrix[F], trackTransform bool, cutoff int, caller string) (Result[F], error) {
	caller = callerf(caller, "RecursiveLLL")
	_ = cutoff
	return Run(trait, ctrl, b, trackTransform, caller)
}
