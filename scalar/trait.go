// Package scalar abstracts the scalar field F over which the LLL reduction
// core operates: real (float64), complex (complex128), or an
// arbitrary-precision real field (see the sibling bigscalar package).
//
// This is the generic-trait layer the source specialized by scalar tag
// (s/d/c/z); here it is a single interface, implemented once per field, so
// the reduction core in internal/reduce is written once and instantiated
// three ways.
package scalar

// Copyright (c) 2025 Colin McRae

// Trait implements the arithmetic, rounding and BLAS-like primitives the
// reduction core needs for a scalar field F. Re/Im/Abs always return the
// base real type as float64, per the spec's Real = base(F).
type Trait[F any] interface {
	Zero() F
	One() F
	FromInt(n int) F
	FromFloat64(x float64) F

	Add(a, b F) F
	Sub(a, b F) F
	Mul(a, b F) F
	Div(a, b F) (F, error)
	Neg(a F) F
	Conj(a F) F

	Re(a F) float64
	Im(a F) float64
	Abs(a F) float64
	Sqrt(a F) F
	// Round rounds a to the nearest Gaussian/real integer. Real rounding is
	// half-away-from-zero; complex rounding is componentwise.
	Round(a F) F
	// Log returns the natural log of |a|.
	Log(a F) float64

	IsFinite(a F) bool

	// Eps is the field's machine epsilon (of its underlying float64/complex128
	// representation, or 2^-precision for an arbitrary-precision field).
	Eps() float64
	// Phi is 1 for real fields and sqrt(2) for complex fields, per spec 4.1.
	Phi() float64

	// Dot returns sum_i conj(x[i]) * y[i].
	Dot(x, y []F) F
	// Axpy computes y[i] += alpha*x[i] for all i.
	Axpy(alpha F, x, y []F)
	// Nrm2 returns the safe Euclidean norm of x.
	Nrm2(x []F) float64
	// Scale computes x[i] *= alpha in place.
	Scale(alpha F, x []F)

	// LeftReflector computes tau and overwrites x with the reflector tail
	// v(1:) (v(0) = 1 implicit) such that a Householder reflector
	// I - tau*v*v^H applied to [alpha; x] zeroes x and leaves a signed norm
	// in the returned newAlpha. This is spec 4.3's LeftReflector primitive.
	LeftReflector(alpha F, x []F) (newAlpha F, tau F)

	// SafeNorm computes sqrt(|x|^2+|y|^2) for two base-real values without
	// intermediate overflow (hypot-like).
	SafeNorm(x, y float64) float64
}
