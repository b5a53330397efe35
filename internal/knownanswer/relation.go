package knownanswer

// Copyright (c) 2025 Colin McRae

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/predrag3141/lllreduce"
)

// RelationContext plants an integer relation among a synthetically generated
// vector z: coefficients Relation such that sum_i Relation[i]*z[i] is exactly
// zero, then perturbs z's remaining degrees of freedom randomly so the
// relation is not visible by inspection. This is the ZDependenceSearch
// counterpart of VectorContext, grounded on the same causal-relation-planting
// idea knownanswertest.PSLQContext uses for PSLQ: pick a random integer
// relation first, then solve for the input entries it must hold for.
type RelationContext struct {
	Dimension            int       `json:"dimension"`
	RelationElementRange int       `json:"relation_element_range"`
	Relation             []int64   `json:"relation"`
	Z                    []float64 `json:"z"`
	SqrtN                float64   `json:"sqrt_n"`

	Found         bool      `json:"found"`
	FoundResidual float64   `json:"found_residual"`
	FoundCoeffs   []float64 `json:"found_coeffs,omitempty"`
	NumSwaps      int       `json:"num_swaps"`
}

// NewRelationContext plants a relation of the given dimension with
// coefficients in [-relationElementRange/2, relationElementRange/2]: the
// first dimension-1 entries of z are drawn uniformly from [-1,1], and the
// last entry is solved for so the planted relation holds exactly. sqrtN
// is sized, per the cube-volume heuristic PSLQContext uses to keep a random
// coincidental relation improbable, from the exponential growth LLL forces on
// unrelated inputs: roughly 2^(dimension/2).
func NewRelationContext(dimension, relationElementRange int) (*RelationContext, error) {
	if dimension < 2 {
		return nil, fmt.Errorf("NewRelationContext: dimension must be at least 2, got %d", dimension)
	}

	relation := make([]int64, dimension)
	for {
		nonzero := false
		for i := range relation {
			relation[i] = int64(rand.Intn(relationElementRange) - relationElementRange/2)
			if relation[i] != 0 {
				nonzero = true
			}
		}
		if nonzero && relation[dimension-1] != 0 {
			break
		}
	}

	z := make([]float64, dimension)
	for i := 0; i < dimension-1; i++ {
		z[i] = rand.Float64()*2 - 1
	}
	var sum float64
	for i := 0; i < dimension-1; i++ {
		sum += float64(relation[i]) * z[i]
	}
	z[dimension-1] = -sum / float64(relation[dimension-1])

	sqrtN := math.Pow(2, float64(dimension)/2)

	return &RelationContext{
		Dimension:            dimension,
		RelationElementRange: relationElementRange,
		Relation:             relation,
		Z:                    z,
		SqrtN:                sqrtN,
	}, nil
}

// Run searches for the planted relation via lllreduce.ZDependenceSearch and
// records whether it (or an exact scalar multiple recovered by the search)
// was found.
func (c *RelationContext) Run(ctrl lllreduce.Ctrl) error {
	relations, info, err := lllreduce.ZDependenceSearch(c.Z, c.SqrtN, ctrl)
	if err != nil {
		return fmt.Errorf("RelationContext.Run: %q", err.Error())
	}
	c.NumSwaps = info.NumSwaps

	for _, r := range relations {
		if isScalarMultipleOfPlanted(r.Coeffs, c.Relation) {
			c.Found = true
			c.FoundResidual = r.Residual
			c.FoundCoeffs = r.Coeffs
			return nil
		}
	}
	return nil
}

// isScalarMultipleOfPlanted reports whether coeffs is a nonzero scalar
// multiple of relation, up to floating-point rounding. The ratio need not be
// an integer.
func isScalarMultipleOfPlanted(coeffs []float64, relation []int64) bool {
	if len(coeffs) != len(relation) {
		return false
	}
	var ratio float64
	ratioSet := false
	const tol = 1e-6
	for i := range coeffs {
		if relation[i] == 0 {
			if math.Abs(coeffs[i]) > tol {
				return false
			}
			continue
		}
		r := coeffs[i] / float64(relation[i])
		if !ratioSet {
			ratio = r
			ratioSet = true
			continue
		}
		if math.Abs(r-ratio) > tol*math.Max(1, math.Abs(ratio)) {
			return false
		}
	}
	return ratioSet && math.Abs(ratio) > tol
}
