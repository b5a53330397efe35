// Package knownanswer builds lattice bases with a planted answer -- a short
// vector or an integer relation -- runs the reduction core over them, and
// reports whether the planted answer was recovered. This is the "plant it,
// reduce it, check it comes back out" harness style knownanswertest.
// PSLQContext uses for PSLQ, adapted here to LLL's concrete end-to-end
// scenarios (short-vector recovery and integer-relation search).
package knownanswer

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/predrag3141/lllreduce/internal/densemat"
	"github.com/predrag3141/lllreduce/internal/reduce"
	"github.com/predrag3141/lllreduce/scalar"
)

// VectorContext holds a lattice basis built to contain PlantedVector as one
// of its shortest nonzero elements, plus the diagnostics of the reduction
// run over it.
type VectorContext struct {
	Dimension     int       `json:"dimension"`
	ElementRange  int       `json:"element_range"`
	PlantedVector []int64   `json:"planted_vector"`
	Basis         [][]int64 `json:"basis"`

	Reduced   [][]int64 `json:"reduced,omitempty"`
	Found     bool      `json:"found"`
	FoundAt   int       `json:"found_at"`
	FoundNorm float64   `json:"found_norm"`
	NumSwaps  int       `json:"num_swaps"`
	Rank      int       `json:"rank"`
	Nullity   int       `json:"nullity"`
}

// NewVectorContext plants a short vector with entries in
// [-elementRange/2, elementRange/2] into a dimension x dimension integer
// basis: the planted vector becomes column 0, filled out with the standard
// basis vectors for the remaining columns, then scrambled with a handful of
// random unimodular column operations so the planted vector is no longer
// visibly present in the basis handed to the reducer.
func NewVectorContext(dimension, elementRange int) *VectorContext {
	planted := make([]int64, dimension)
	for {
		nonzero := false
		for i := range planted {
			planted[i] = int64(rand.Intn(elementRange) - elementRange/2)
			if planted[i] != 0 {
				nonzero = true
			}
		}
		if nonzero {
			break
		}
	}

	basis := make([][]int64, dimension)
	basis[0] = append([]int64(nil), planted...)
	for j := 1; j < dimension; j++ {
		row := make([]int64, dimension)
		row[j] = 1
		basis[j] = row
	}

	scrambles := dimension * 2
	for s := 0; s < scrambles; s++ {
		src := rand.Intn(dimension)
		dst := rand.Intn(dimension)
		if src == dst {
			continue
		}
		coeff := int64(rand.Intn(5) - 2)
		for i := 0; i < dimension; i++ {
			basis[dst][i] += coeff * basis[src][i]
		}
	}

	return &VectorContext{
		Dimension:     dimension,
		ElementRange:  elementRange,
		PlantedVector: planted,
		Basis:         basis,
	}
}

// Run reduces the context's basis and records whether PlantedVector (or its
// negation) appears as a column of the reduced basis.
func (c *VectorContext) Run(ctrl reduce.Ctrl) error {
	caller := "VectorContext.Run"
	n := c.Dimension
	b := densemat.New[float64](n, n, scalar.Real{}.Zero)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			// basis[j] is stored row-major by construction above; b's
			// column j is that lattice vector.
			b.Set(i, j, float64(c.Basis[j][i]))
		}
	}

	result, err := reduce.Run(scalar.Real{}, ctrl, b, false, caller)
	if err != nil {
		return fmt.Errorf("%s: %q", caller, err.Error())
	}

	c.NumSwaps = result.Info.NumSwaps
	c.Rank = result.Info.Rank
	c.Nullity = result.Info.Nullity
	c.Reduced = make([][]int64, n)
	for j := 0; j < n; j++ {
		col := make([]int64, n)
		for i := 0; i < n; i++ {
			col[i] = int64(result.B.At(i, j))
		}
		c.Reduced[j] = col
	}

	for j, col := range c.Reduced {
		if intVectorEquals(col, c.PlantedVector) || intVectorEquals(col, negate(c.PlantedVector)) {
			c.Found = true
			c.FoundAt = j
			colFloat := make([]float64, len(col))
			for i, v := range col {
				colFloat[i] = float64(v)
			}
			c.FoundNorm = floats.Norm(colFloat, 2)
			break
		}
	}
	return nil
}

func intVectorEquals(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func negate(a []int64) []int64 {
	out := make([]int64, len(a))
	for i, v := range a {
		out[i] = -v
	}
	return out
}
