package scalar

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/blas/cblas128"
)

// Complex implements Trait[complex128], the finite-precision complex scalar
// field used for Gaussian-integer lattices (spec 4.1: phi(F) = sqrt(2) for
// complex F). Level-1 BLAS calls go through gonum's cblas128, mirroring
// Real's use of blas64 for the real field.
type Complex struct{}

var _ Trait[complex128] = Complex{}

func (Complex) Zero() complex128         { return 0 }
func (Complex) One() complex128          { return 1 }
func (Complex) FromInt(n int) complex128 { return complex(float64(n), 0) }
func (Complex) FromFloat64(x float64) complex128 { return complex(x, 0) }

func (Complex) Add(a, b complex128) complex128 { return a + b }
func (Complex) Sub(a, b complex128) complex128 { return a - b }
func (Complex) Mul(a, b complex128) complex128 { return a * b }
func (Complex) Div(a, b complex128) (complex128, error) {
	if b == 0 {
		return 0, fmt.Errorf("scalar.Complex.Div: division by zero")
	}
	return a / b, nil
}
func (Complex) Neg(a complex128) complex128  { return -a }
func (Complex) Conj(a complex128) complex128 { return cmplx.Conj(a) }

func (Complex) Re(a complex128) float64  { return real(a) }
func (Complex) Im(a complex128) float64  { return imag(a) }
func (Complex) Abs(a complex128) float64 { return cmplx.Abs(a) }
func (Complex) Sqrt(a complex128) complex128 { return cmplx.Sqrt(a) }

// Round rounds each component independently, per spec 4.1: round(a+bi) =
// round(a) + round(b)i.
func (Complex) Round(a complex128) complex128 {
	return complex(math.Round(real(a)), math.Round(imag(a)))
}

func (Complex) Log(a complex128) float64 { return math.Log(cmplx.Abs(a)) }

func (Complex) IsFinite(a complex128) bool {
	re, im := real(a), imag(a)
	return !math.IsNaN(re) && !math.IsInf(re, 0) && !math.IsNaN(im) && !math.IsInf(im, 0)
}

func (Complex) Eps() float64 { return 2.220446049250313e-16 }
func (Complex) Phi() float64 { return math.Sqrt2 }

func (Complex) Dot(x, y []complex128) complex128 {
	return cblas128.Dotc(cblas128.Vector{N: len(x), Data: x, Inc: 1}, cblas128.Vector{N: len(y), Data: y, Inc: 1})
}

func (Complex) Axpy(alpha complex128, x, y []complex128) {
	cblas128.Axpy(alpha, cblas128.Vector{N: len(x), Data: x, Inc: 1}, cblas128.Vector{N: len(y), Data: y, Inc: 1})
}

func (Complex) Nrm2(x []complex128) float64 {
	return cblas128.Nrm2(cblas128.Vector{N: len(x), Data: x, Inc: 1})
}

func (Complex) Scale(alpha complex128, x []complex128) {
	cblas128.Scal(alpha, cblas128.Vector{N: len(x), Data: x, Inc: 1})
}

// LeftReflector implements LAPACK's zlarfg construction: gonum ships no
// complex LAPACK routines (only the real d/s tree), so this one primitive
// is hand-written rather than delegated to a dependency (see DESIGN.md).
// beta is returned as a real-valued complex128 (Im(beta) == 0), matching
// zlarfg and letting HouseholderStep's sign-fixup (spec 4.3) operate on
// Re(beta) exactly as it does for the real field.
func (Complex) LeftReflector(alpha complex128, x []complex128) (complex128, complex128) {
	xnormSq := 0.0
	for _, xi := range x {
		xnormSq += real(xi)*real(xi) + imag(xi)*imag(xi)
	}
	alphar, alphai := real(alpha), imag(alpha)
	if xnormSq == 0 && alphai == 0 {
		return alpha, 0
	}
	norm := math.Sqrt(alphar*alphar + alphai*alphai + xnormSq)
	beta := -math.Copysign(norm, alphar)
	tau := complex((beta-alphar)/beta, -alphai/beta)
	scale := 1 / (alpha - complex(beta, 0))
	for i := range x {
		x[i] *= scale
	}
	return complex(beta, 0), tau
}

func (Complex) SafeNorm(x, y float64) float64 { return math.Hypot(x, y) }
