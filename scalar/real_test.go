package scalar

// Copyright (c) 2025 Colin McRae

import (
	"math"
	"testing"
)

func TestRealArithmetic(t *testing.T) {
	r := Real{}
	if got := r.Add(2, 3); got != 5 {
		t.Errorf("Add(2,3) = %v, want 5", got)
	}
	if got := r.Mul(2, 3); got != 6 {
		t.Errorf("Mul(2,3) = %v, want 6", got)
	}
	if got, err := r.Div(6, 2); err != nil || got != 3 {
		t.Errorf("Div(6,2) = %v, %v, want 3, nil", got, err)
	}
	if _, err := r.Div(1, 0); err == nil {
		t.Errorf("Div(1,0) should error")
	}
}

func TestRealRound(t *testing.T) {
	r := Real{}
	cases := []struct{ in, want float64 }{
		{0.4, 0}, {0.5, 1}, {-0.5, -1}, {2.5, 3}, {-2.5, -3},
	}
	for _, c := range cases {
		if got := r.Round(c.in); got != c.want {
			t.Errorf("Round(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestRealDotAxpyNrm2(t *testing.T) {
	r := Real{}
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}
	if got := r.Dot(x, y); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	yc := append([]float64(nil), y...)
	r.Axpy(2, x, yc)
	want := []float64{6, 9, 12}
	for i := range want {
		if yc[i] != want[i] {
			t.Errorf("Axpy[%d] = %v, want %v", i, yc[i], want[i])
		}
	}
	if got := r.Nrm2([]float64{3, 4}); math.Abs(got-5) > 1e-12 {
		t.Errorf("Nrm2 = %v, want 5", got)
	}
}

func TestRealLeftReflectorNormPreserved(t *testing.T) {
	r := Real{}
	x := []float64{3, 4}
	alpha := 2.0
	beta, tau := r.LeftReflector(alpha, x)
	// The reflector should satisfy |beta| == SafeNorm(alpha, ||x||_2).
	origNorm := r.SafeNorm(alpha, r.Nrm2([]float64{3, 4}))
	if math.Abs(math.Abs(beta)-origNorm) > 1e-9 {
		t.Errorf("|beta| = %v, want %v", math.Abs(beta), origNorm)
	}
	if tau == 0 {
		t.Errorf("tau should be nonzero for a nontrivial reflector")
	}
}

func TestRealIsFinite(t *testing.T) {
	r := Real{}
	if !r.IsFinite(1.0) {
		t.Errorf("1.0 should be finite")
	}
	if r.IsFinite(math.NaN()) {
		t.Errorf("NaN should not be finite")
	}
	if r.IsFinite(math.Inf(1)) {
		t.Errorf("+Inf should not be finite")
	}
}
