package lllreduce

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"

	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/scalar"
	"gonum.org/v1/gonum/mat"
)

// LatticeGaussianHeuristic estimates the expected shortest-vector length of
// a rank-n lattice with the given log-volume, per spec 6:
// (1/sqrt(pi)) * Gamma(n/2+1)^(1/n) * exp(logVol/n).
func LatticeGaussianHeuristic(n int, logVol float64) float64 {
	if n <= 0 {
		return 0
	}
	fn := float64(n)
	gamma := math.Gamma(fn/2 + 1)
	return (1 / math.Sqrt(math.Pi)) * math.Pow(gamma, 1/fn) * math.Exp(logVol/fn)
}

// LatticeImageAndKernel applies full-tracking LLL to b and splits the result
// per Cohen's Algorithm 2.7.1: the first Info.Rank columns of U span the
// kernel-free part of the lattice, and columns Rank..n-1 of U are a basis of
// the kernel of the linear map represented by b's rows. Image returns
// image = b * U[:, :rank] and a least-squares coefficient matrix expressing
// b's original columns in terms of the image basis (solved via QR, not the
// normal equations, matching the specification's explicit avoidance of the
// normal-equations variant).
func LatticeImageAndKernel(b *Matrix[float64], ctrl Ctrl) (image, kernel *Matrix[float64], coeffs *mat.Dense, info Info, err error) {
	caller := "LatticeImageAndKernel"
	result, runErr := reduceRun(caller, b, ctrl, true)
	if runErr != nil {
		return nil, nil, nil, Info{}, runErr
	}
	info = result.Info
	rank := info.Rank
	n := result.U.Cols()

	image = matMul(b, result.U, 0, rank)
	kernel = sliceCols(result.U, rank, n)

	if rank > 0 {
		coeffs, err = leastSquaresCoeffs(image, b)
		if err != nil {
			return nil, nil, nil, Info{}, fmt.Errorf("%s: least-squares coefficient solve failed: %q", caller, err.Error())
		}
	}
	return image, kernel, coeffs, info, nil
}

// LatticeKernel is LatticeImageAndKernel without the image/coefficient work,
// for callers that only need a basis of the kernel.
func LatticeKernel(b *Matrix[float64], ctrl Ctrl) (kernel *Matrix[float64], info Info, err error) {
	caller := "LatticeKernel"
	result, runErr := reduceRun(caller, b, ctrl, true)
	if runErr != nil {
		return nil, Info{}, runErr
	}
	info = result.Info
	kernel = sliceCols(result.U, info.Rank, result.U.Cols())
	return kernel, info, nil
}

// Relation is one detected integer relation: a coefficient vector and the
// residual magnitude that qualified it as exact.
type Relation struct {
	Coeffs   []float64
	Residual float64
}

// ZDependenceSearch searches for integer relations among the entries of z:
// integer coefficients c such that sum_i c[i]*z[i] is (numerically) zero. It
// embeds z into the (n+1) x n basis [I; sqrtN*z^T] and runs full LLL; a
// resulting column is reported as an exact relation when the magnitude of
// its last row (the residual sum_i c[i]*z[i], scaled by sqrtN) is small
// relative to sqrtN itself.
func ZDependenceSearch(z []float64, sqrtN float64, ctrl Ctrl) (relations []Relation, info Info, err error) {
	caller := "ZDependenceSearch"
	n := len(z)
	if n == 0 {
		return nil, Info{}, fmt.Errorf("%s: z must be non-empty", caller)
	}

	b := densemat.New[float64](n+1, n, scalar.Real{}.Zero)
	for j := 0; j < n; j++ {
		b.Set(j, j, 1)
		b.Set(n, j, sqrtN*z[j])
	}

	result, runErr := reduceRun(caller, b, ctrl, false)
	if runErr != nil {
		return nil, Info{}, runErr
	}
	info = result.Info

	tol := sqrtN * ctrl.ZeroTol
	for j := 0; j < result.B.Cols(); j++ {
		residual := math.Abs(result.B.At(n, j))
		if residual > tol {
			continue
		}
		coeffs := make([]float64, n)
		copy(coeffs, result.B.ColRange(j, 0, n))
		if allZero(coeffs) {
			continue
		}
		relations = append(relations, Relation{Coeffs: coeffs, Residual: residual})
	}
	return relations, info, nil
}

// AlgebraicRelationSearch looks for a low-degree polynomial relation
// satisfied by alpha: it forms z = (1, alpha, alpha^2, ..., alpha^(n-1)) and
// delegates to ZDependenceSearch. A returned relation's coefficients are the
// polynomial's coefficients in increasing degree order.
func AlgebraicRelationSearch(alpha float64, n int, sqrtN float64, ctrl Ctrl) (relations []Relation, info Info, err error) {
	if n <= 0 {
		return nil, Info{}, fmt.Errorf("AlgebraicRelationSearch: n must be positive")
	}
	z := make([]float64, n)
	power := 1.0
	for i := 0; i < n; i++ {
		z[i] = power
		power *= alpha
	}
	return ZDependenceSearch(z, sqrtN, ctrl)
}

func allZero(x []float64) bool {
	for _, v := range x {
		if v != 0 {
			return false
		}
	}
	return true
}

func reduceRun(caller string, b *Matrix[float64], ctrl Ctrl, trackTransform bool) (Result[float64], error) {
	result, err := LLL(scalar.Real{}, b, ctrl, trackTransform)
	if err != nil {
		return Result[float64]{}, fmt.Errorf("%s: %q", caller, err.Error())
	}
	return result, nil
}

// matMul returns b * u[:, fromCol:toCol] as a new m x (toCol-fromCol) matrix.
func matMul(b, u *Matrix[float64], fromCol, toCol int) *Matrix[float64] {
	m, n, k := b.Rows(), b.Cols(), toCol-fromCol
	out := densemat.New[float64](m, k, scalar.Real{}.Zero)
	for c := 0; c < k; c++ {
		for r := 0; r < m; r++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += b.At(r, i) * u.At(i, fromCol+c)
			}
			out.Set(r, c, sum)
		}
	}
	return out
}

func sliceCols(m *Matrix[float64], from, to int) *Matrix[float64] {
	out := densemat.New[float64](m.Rows(), to-from, scalar.Real{}.Zero)
	for c := from; c < to; c++ {
		out.SetCol(c-from, m.CloneCol(c))
	}
	return out
}

// leastSquaresCoeffs solves image * C = target in the least-squares sense
// via gonum's QR-based Solve (spec 4.7's explicit avoidance of the
// normal-equations variant), grounded on the Householder rank-deficient
// least-squares pattern in curioloop-optimizer's hfti.go.
func leastSquaresCoeffs(image, target *Matrix[float64]) (*mat.Dense, error) {
	a := toDense(image)
	t := toDense(target)
	var c mat.Dense
	if err := c.Solve(a, t); err != nil {
		return nil, err
	}
	return &c, nil
}

func toDense(m *Matrix[float64]) *mat.Dense {
	d := mat.NewDense(m.Rows(), m.Cols(), nil)
	for j := 0; j < m.Cols(); j++ {
		for i := 0; i < m.Rows(); i++ {
			d.Set(i, j, m.At(i, j))
		}
	}
	return d
}
