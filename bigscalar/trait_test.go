package bigscalar

// Copyright (c) 2025 Colin McRae

import (
	"math"
	"testing"

	"github.com/predrag3141/IPSLQ/bignumber"
)

func TestNewTraitEps(t *testing.T) {
	trait, err := NewTrait(200)
	if err != nil {
		t.Fatalf("NewTrait failed: %v", err)
	}
	want := math.Ldexp(1, -200)
	if math.Abs(trait.Eps()-want) > want*1e-9 {
		t.Errorf("Eps() = %v, want %v", trait.Eps(), want)
	}
}

func TestArithmeticRoundTrip(t *testing.T) {
	trait, err := NewTrait(200)
	if err != nil {
		t.Fatalf("NewTrait failed: %v", err)
	}
	a := trait.FromFloat64(3.5)
	b := trait.FromFloat64(1.25)
	sum := trait.Add(a, b)
	if math.Abs(trait.Re(sum)-4.75) > 1e-9 {
		t.Errorf("Add = %v, want 4.75", trait.Re(sum))
	}
	prod := trait.Mul(a, b)
	if math.Abs(trait.Re(prod)-4.375) > 1e-9 {
		t.Errorf("Mul = %v, want 4.375", trait.Re(prod))
	}
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	trait, err := NewTrait(200)
	if err != nil {
		t.Fatalf("NewTrait failed: %v", err)
	}
	cases := []struct{ in, want float64 }{
		{0.4, 0}, {0.5, 1}, {-0.5, -1}, {2.5, 3},
	}
	for _, c := range cases {
		got := trait.Round(trait.FromFloat64(c.in))
		if math.Abs(trait.Re(got)-c.want) > 1e-9 {
			t.Errorf("Round(%v) = %v, want %v", c.in, trait.Re(got), c.want)
		}
	}
}

func TestSqrtOfPerfectSquare(t *testing.T) {
	trait, err := NewTrait(200)
	if err != nil {
		t.Fatalf("NewTrait failed: %v", err)
	}
	nine := trait.FromFloat64(9)
	root := trait.Sqrt(nine)
	if math.Abs(trait.Re(root)-3) > 1e-9 {
		t.Errorf("Sqrt(9) = %v, want 3", trait.Re(root))
	}
}

func TestNrm2(t *testing.T) {
	trait, err := NewTrait(200)
	if err != nil {
		t.Fatalf("NewTrait failed: %v", err)
	}
	xs := []*bignumber.BigNumber{trait.FromFloat64(3), trait.FromFloat64(4)}
	if math.Abs(trait.Nrm2(xs)-5) > 1e-9 {
		t.Errorf("Nrm2 = %v, want 5", trait.Nrm2(xs))
	}
}
