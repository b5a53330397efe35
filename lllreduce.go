// Package lllreduce exposes the LLL/MLLL/deep-insertion lattice reduction
// core and its two applications: lattice image/kernel extraction and
// integer-relation search. The reduction itself is generic over the scalar
// field (see the scalar package); the applications operate on real (float64)
// data, matching how Cohen's Algorithm 2.7.1 and the classical PSLQ-style
// relation search are stated.
package lllreduce

// Copyright (c) 2025 Colin McRae

import (
	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/internal/reduce"
	"github.com/predrag3141/lllreduce/scalar"
)

// Ctrl, Info and the error kinds are re-exported from internal/reduce so
// callers configure and interpret runs without importing an internal
// package.
type (
	Ctrl      = reduce.Ctrl
	Info      = reduce.Info
	ErrorKind = reduce.ErrorKind
)

const (
	Overflow           = reduce.Overflow
	PrecisionExhausted = reduce.PrecisionExhausted
	InvalidArgument    = reduce.InvalidArgument
)

// Matrix is the dense column-major container the reduction core and its
// applications operate on.
type Matrix[F any] = densemat.Matrix[F]

// NewMatrix allocates a rows x cols matrix with every entry set by zeroFn().
func NewMatrix[F any](rows, cols int, zeroFn func() F) *Matrix[F] {
	return densemat.New[F](rows, cols, zeroFn)
}

// Result is the outcome of a completed reduction.
type Result[F any] = reduce.Result[F]

// DefaultCtrl returns the documented default Ctrl for a scalar field whose
// machine epsilon is eps (e.g. scalar.Real{}.Eps() or scalar.Complex{}.Eps()).
func DefaultCtrl(eps float64) Ctrl {
	return reduce.DefaultCtrl(eps)
}

// LLL reduces b in place semantics: it returns a new reduced basis (and,
// if trackTransform is set, the unimodular transform U and its inverse)
// without mutating the caller's b.
func LLL[F any](trait scalar.Trait[F], b *Matrix[F], ctrl Ctrl, trackTransform bool) (Result[F], error) {
	return reduce.Run(trait, ctrl, b, trackTransform, "LLL")
}

// RecursiveLLL dispatches to the flat/deep unblocked driver; see
// internal/reduce.RecursiveLLL and DESIGN.md for why cutoff has no observable
// effect (the block/recursive scheduling above cutoff is out of scope).
func RecursiveLLL[F any](trait scalar.Trait[F], b *Matrix[F], cutoff int, ctrl Ctrl, trackTransform bool) (Result[F], error) {
	return reduce.RecursiveLLL(trait, ctrl, b, trackTransform, cutoff, "RecursiveLLL")
}
