package lllreduce

// Copyright (c) 2025 Colin McRae

import (
	"fmt"

	"github.com/predrag3141/IPSLQ/bignumber"

	"github.com/predrag3141/lllreduce/bigscalar"
	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/internal/reduce"
)

// BigRelation is the arbitrary-precision counterpart of Relation.
type BigRelation struct {
	Coeffs   []*bignumber.BigNumber
	Residual *bignumber.BigNumber
}

// HighPrecisionZDependenceSearch is ZDependenceSearch instantiated over
// bigscalar.Trait instead of float64, for relations whose defining sum
// cancels below float64's ~15-16 significant digits (SPEC_FULL's
// arbitrary-precision supplement to the reduction core's scalar dispatch).
func HighPrecisionZDependenceSearch(trait bigscalar.Trait, z []*bignumber.BigNumber, sqrtN *bignumber.BigNumber, ctrl Ctrl) (relations []BigRelation, info Info, err error) {
	caller := "HighPrecisionZDependenceSearch"
	n := len(z)
	if n == 0 {
		return nil, Info{}, fmt.Errorf("%s: z must be non-empty", caller)
	}

	b := densemat.New[*bignumber.BigNumber](n+1, n, trait.Zero)
	for j := 0; j < n; j++ {
		b.Set(j, j, trait.One())
		b.Set(n, j, trait.Mul(sqrtN, z[j]))
	}

	result, runErr := reduce.Run(trait, ctrl, b, false, caller)
	if runErr != nil {
		return nil, Info{}, fmt.Errorf("%s: %q", caller, runErr.Error())
	}
	info = result.Info

	tol := trait.Mul(sqrtN, trait.FromFloat64(ctrl.ZeroTol))
	for j := 0; j < result.B.Cols(); j++ {
		residual := bignumber.NewFromInt64(0).Abs(result.B.At(n, j))
		if residual.Cmp(tol) > 0 {
			continue
		}
		coeffs := make([]*bignumber.BigNumber, n)
		allZero := true
		for i := 0; i < n; i++ {
			coeffs[i] = bignumber.NewFromInt64(0).Set(result.B.At(i, j))
			if !coeffs[i].IsZero() {
				allZero = false
			}
		}
		if allZero {
			continue
		}
		relations = append(relations, BigRelation{Coeffs: coeffs, Residual: residual})
	}
	return relations, info, nil
}

// HighPrecisionAlgebraicRelationSearch is AlgebraicRelationSearch
// instantiated over bigscalar.Trait.
func HighPrecisionAlgebraicRelationSearch(trait bigscalar.Trait, alpha *bignumber.BigNumber, n int, sqrtN *bignumber.BigNumber, ctrl Ctrl) (relations []BigRelation, info Info, err error) {
	if n <= 0 {
		return nil, Info{}, fmt.Errorf("HighPrecisionAlgebraicRelationSearch: n must be positive")
	}
	z := make([]*bignumber.BigNumber, n)
	power := trait.One()
	for i := 0; i < n; i++ {
		z[i] = power
		power = trait.Mul(power, alpha)
	}
	return HighPrecisionZDependenceSearch(trait, z, sqrtN, ctrl)
}
