package lllreduce

// Copyright (c) 2025 Colin McRae

import (
	"math"
	"testing"

	"github.com/predrag3141/lllreduce/scalar"
)

func matrixFromRows(rows [][]float64) *Matrix[float64] {
	m := len(rows)
	n := len(rows[0])
	mat := NewMatrix[float64](m, n, scalar.Real{}.Zero)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			mat.Set(i, j, rows[i][j])
		}
	}
	return mat
}

func TestLLLReducesClassicPair(t *testing.T) {
	b := matrixFromRows([][]float64{{201, 1648}, {37, 297}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := LLL[float64](scalar.Real{}, b, ctrl, false)
	if err != nil {
		t.Fatalf("LLL failed: %v", err)
	}
	if result.Info.Rank != 2 {
		t.Fatalf("Rank = %d, want 2", result.Info.Rank)
	}
}

func TestLatticeGaussianHeuristicPositive(t *testing.T) {
	h := LatticeGaussianHeuristic(10, 5)
	if h <= 0 {
		t.Errorf("LatticeGaussianHeuristic = %v, want positive", h)
	}
}

func TestLatticeImageAndKernelRankDeficient(t *testing.T) {
	// Rows span a rank-2 subspace of R^3: row 2 = row 0 + row 1.
	b := matrixFromRows([][]float64{
		{1, 0, 1},
		{0, 1, 1},
		{1, 1, 2},
	})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	image, kernel, _, info, err := LatticeImageAndKernel(b, ctrl)
	if err != nil {
		t.Fatalf("LatticeImageAndKernel failed: %v", err)
	}
	if info.Rank != 2 {
		t.Fatalf("Rank = %d, want 2", info.Rank)
	}
	if image.Cols() != 2 {
		t.Errorf("image has %d columns, want 2", image.Cols())
	}
	if kernel.Cols() != 1 {
		t.Errorf("kernel has %d columns, want 1", kernel.Cols())
	}
}

func TestZDependenceSearchFindsPlantedRelation(t *testing.T) {
	// z = (1, 2) satisfies the exact integer relation 2*z0 - 1*z1 = 0.
	z := []float64{1, 2}
	sqrtN := 64.0
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	relations, _, err := ZDependenceSearch(z, sqrtN, ctrl)
	if err != nil {
		t.Fatalf("ZDependenceSearch failed: %v", err)
	}
	if len(relations) == 0 {
		t.Fatalf("expected at least one relation to be found")
	}
	found := false
	for _, r := range relations {
		if math.Abs(r.Coeffs[0]+2*r.Coeffs[1]) < 1e-3 && (math.Abs(r.Coeffs[0]) > 1e-6 || math.Abs(r.Coeffs[1]) > 1e-6) {
			found = true
		}
	}
	if !found {
		t.Errorf("no returned relation matched the planted 2*z0 - z1 = 0 direction: %+v", relations)
	}
}

func TestAlgebraicRelationSearchRuns(t *testing.T) {
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	_, info, err := AlgebraicRelationSearch(1.6180339887, 4, 100, ctrl)
	if err != nil {
		t.Fatalf("AlgebraicRelationSearch failed: %v", err)
	}
	if info.Rank == 0 {
		t.Errorf("expected nonzero rank from the embedding basis")
	}
}
