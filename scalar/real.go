package scalar

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/blas/blas64"
	lapackgonum "gonum.org/v1/gonum/lapack/gonum"
)

// Real implements Trait[float64], the finite-precision real scalar field.
// Level-1 BLAS calls are dispatched through blas64.Implementation() and the
// Householder reflector is gonum's own Dlarfg, so the "standard level-1/2
// numerical primitives" spec 1 assumes as external collaborators are, for
// the real field, this repository's actual dependency rather than
// hand-rolled loops.
type Real struct{}

var _ Trait[float64] = Real{}

func (Real) Zero() float64            { return 0 }
func (Real) One() float64             { return 1 }
func (Real) FromInt(n int) float64    { return float64(n) }
func (Real) FromFloat64(x float64) float64 { return x }

func (Real) Add(a, b float64) float64 { return a + b }
func (Real) Sub(a, b float64) float64 { return a - b }
func (Real) Mul(a, b float64) float64 { return a * b }
func (Real) Div(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("scalar.Real.Div: division by zero")
	}
	return a / b, nil
}
func (Real) Neg(a float64) float64  { return -a }
func (Real) Conj(a float64) float64 { return a }

func (Real) Re(a float64) float64  { return a }
func (Real) Im(float64) float64    { return 0 }
func (Real) Abs(a float64) float64 { return math.Abs(a) }
func (Real) Sqrt(a float64) float64 {
	return math.Sqrt(a)
}

// Round rounds half away from zero, matching math.Round and the spec's
// documented tie-breaking rule for the real scalar field.
func (Real) Round(a float64) float64 { return math.Round(a) }

func (Real) Log(a float64) float64 { return math.Log(math.Abs(a)) }

func (Real) IsFinite(a float64) bool { return !math.IsNaN(a) && !math.IsInf(a, 0) }

func (Real) Eps() float64 { return 2.220446049250313e-16 } // math.Nextafter(1,2)-1, i.e. float64 epsilon
func (Real) Phi() float64 { return 1 }

func (Real) Dot(x, y []float64) float64 {
	bi := blas64.Implementation()
	return bi.Ddot(len(x), x, 1, y, 1)
}

func (Real) Axpy(alpha float64, x, y []float64) {
	bi := blas64.Implementation()
	bi.Daxpy(len(x), alpha, x, 1, y, 1)
}

func (Real) Nrm2(x []float64) float64 {
	bi := blas64.Implementation()
	return bi.Dnrm2(len(x), x, 1)
}

func (Real) Scale(alpha float64, x []float64) {
	bi := blas64.Implementation()
	bi.Dscal(len(x), alpha, x, 1)
}

func (Real) LeftReflector(alpha float64, x []float64) (float64, float64) {
	impl := lapackgonum.Implementation{}
	if len(x) == 0 {
		// A 1x1 "reflector" is trivial: no tail to zero, tau = 0.
		return alpha, 0
	}
	beta, tau := impl.Dlarfg(len(x)+1, alpha, x, 1)
	return beta, tau
}

func (Real) SafeNorm(x, y float64) float64 { return math.Hypot(x, y) }
