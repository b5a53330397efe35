package reduce

// Copyright (c) 2025 Colin McRae

import (
	"math"
	"testing"

	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/scalar"
)

func realBasis(rows, cols int, entries [][]float64) *densemat.Matrix[float64] {
	m := densemat.New[float64](rows, cols, scalar.Real{}.Zero)
	for j := 0; j < cols; j++ {
		for i := 0; i < rows; i++ {
			m.Set(i, j, entries[j][i])
		}
	}
	return m
}

func columnNorm(m *densemat.Matrix[float64], j int) float64 {
	sum := 0.0
	for i := 0; i < m.Rows(); i++ {
		v := m.At(i, j)
		sum += v * v
	}
	return math.Sqrt(sum)
}

func TestUnblockedAlgTrivialIdentity(t *testing.T) {
	b := realBasis(3, 3, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := Run[float64](scalar.Real{}, ctrl, b, false, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Info.Rank != 3 || result.Info.Nullity != 0 {
		t.Errorf("Rank=%d Nullity=%d, want Rank=3 Nullity=0", result.Info.Rank, result.Info.Nullity)
	}
}

func TestUnblockedAlgTwoVectorClassic(t *testing.T) {
	// A classic nearly-parallel pair that LLL should shorten. The lattice's
	// reduced basis is (1,32), (40,1), with norms sqrt(1025) and sqrt(1601).
	b := realBasis(2, 2, [][]float64{{201, 37}, {1648, 297}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := Run[float64](scalar.Real{}, ctrl, b, true, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Info.Rank != 2 {
		t.Fatalf("Rank = %d, want 2", result.Info.Rank)
	}
	n0 := columnNorm(result.B, 0)
	n1 := columnNorm(result.B, 1)
	if n0 > 41 || n1 > 41 {
		t.Errorf("expected short reduced vectors, got norms %v, %v", n0, n1)
	}
}

func TestUnblockedAlgRankDeficient(t *testing.T) {
	// Column 2 is the sum of columns 0 and 1: rank 2, nullity 1.
	b := realBasis(3, 3, [][]float64{
		{1, 0, 0},
		{0, 1, 0},
		{1, 1, 0},
	})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := Run[float64](scalar.Real{}, ctrl, b, false, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Info.Rank != 2 || result.Info.Nullity != 1 {
		t.Errorf("Rank=%d Nullity=%d, want Rank=2 Nullity=1", result.Info.Rank, result.Info.Nullity)
	}
	// Property 8: dependent columns trail the active range.
	if columnNorm(result.B, 2) > ctrl.ZeroTol*10 {
		t.Errorf("expected trailing zero column at index 2, got norm %v", columnNorm(result.B, 2))
	}
}

func TestUnblockedAlgZeroColumnSortedToFrontIsReStepped(t *testing.T) {
	// Presort+SmallestFirst route the zero column (0,0) to position 0. The
	// surviving nonzero column must still end up with a properly
	// orthogonalized, nonzero pivot after the zero column is rotated away.
	b := realBasis(2, 2, [][]float64{{0, 0}, {1, 1}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := Run[float64](scalar.Real{}, ctrl, b, false, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Info.Rank != 1 || result.Info.Nullity != 1 {
		t.Fatalf("Rank=%d Nullity=%d, want Rank=1 Nullity=1", result.Info.Rank, result.Info.Nullity)
	}
	if math.IsInf(result.Info.LogVol, -1) || math.IsNaN(result.Info.LogVol) {
		t.Errorf("LogVol = %v, want a finite value", result.Info.LogVol)
	}
	if columnNorm(result.B, 0) <= ctrl.ZeroTol {
		t.Errorf("surviving column at position 0 has near-zero norm %v; pivot was never re-established", columnNorm(result.B, 0))
	}
}

func TestUnblockedDeepAlgMatchesFlatOnIdentity(t *testing.T) {
	b := realBasis(4, 4, [][]float64{
		{1, 0, 0, 0}, {0, 1, 0, 0}, {0, 0, 1, 0}, {0, 0, 0, 1},
	})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	ctrl.Deep = true
	result, err := Run[float64](scalar.Real{}, ctrl, b, false, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if result.Info.Rank != 4 {
		t.Errorf("Rank = %d, want 4", result.Info.Rank)
	}
}

func TestRunValidatesCtrl(t *testing.T) {
	b := realBasis(2, 2, [][]float64{{1, 0}, {0, 1}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	ctrl.Delta = 1.5 // invalid: must be in (0.25, 1)
	if _, err := Run[float64](scalar.Real{}, ctrl, b, false, "test"); err == nil {
		t.Errorf("expected validation error for out-of-range delta")
	}
}

func TestTransformTrackingReconstructsBasis(t *testing.T) {
	b := realBasis(3, 3, [][]float64{{4, 1, 0}, {1, 3, 1}, {0, 2, 5}})
	ctrl := DefaultCtrl(scalar.Real{}.Eps())
	result, err := Run[float64](scalar.Real{}, ctrl, b, true, "test")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	// B_reduced = B_original * U, so reconstruct and compare.
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += b.At(i, k) * result.U.At(k, j)
			}
			if math.Abs(sum-result.B.At(i, j)) > 1e-6 {
				t.Errorf("B*U mismatch at (%d,%d): got %v, want %v", i, j, sum, result.B.At(i, j))
			}
		}
	}
}

func TestPresortOrdersColumnsByNorm(t *testing.T) {
	b := realBasis(2, 3, [][]float64{{100, 0}, {1, 0}, {50, 0}})
	trait := scalar.Real{}
	ctrl := DefaultCtrl(trait.Eps())
	w := NewWorkspace[float64](trait, ctrl, b, false)
	w.Presort("test")
	norms := []float64{columnNorm(w.B, 0), columnNorm(w.B, 1), columnNorm(w.B, 2)}
	for i := 1; i < len(norms); i++ {
		if norms[i] < norms[i-1] {
			t.Errorf("columns not ascending by norm: %v", norms)
		}
	}
}
