// SPDX-License-Identifier: MIT
// Package: builder
//
// probability_fn.go - edge probability distributions. Every ProbabilityFn
// returns a value in (0,1], so generated graphs always satisfy the core
// probability contract. Constructors of distributions panic on invalid bounds.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeProbability is the probability emitted by DefaultProbabilityFn.
const DefaultEdgeProbability float64 = 1

// ProbabilityFn draws one edge probability; rng may be nil.
type ProbabilityFn func(rng *rand.Rand) float64

// DefaultProbabilityFn always returns DefaultEdgeProbability.
func DefaultProbabilityFn(_ *rand.Rand) float64 {
	return DefaultEdgeProbability
}

// ConstantProbabilityFn always returns p. Panics unless p ∈ (0,1].
func ConstantProbabilityFn(p float64) ProbabilityFn {
	if !(p > 0 && p <= 1) {
		panic(fmt.Sprintf("ConstantProbabilityFn: p must be in (0,1], got %g", p))
	}

	return func(_ *rand.Rand) float64 { return p }
}

// UniformProbabilityFn draws from [min,max). Panics unless 0 < min ≤ max ≤ 1.
// With a nil rng it returns max.
func UniformProbabilityFn(min, max float64) ProbabilityFn {
	if !(min > 0 && min <= max && max <= 1) {
		panic(fmt.Sprintf("UniformProbabilityFn: require 0 < min ≤ max ≤ 1, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return max
		}

		return min + rng.Float64()*(max-min)
	}
}

// DiscreteProbabilityFn picks uniformly among values. A small discrete set
// (such as 1, 0.5, 0.33) produces many exact probability ties, which is what
// tie-breaking tests need. Panics if values is empty or any value is outside
// (0,1]. With a nil rng it returns values[0].
func DiscreteProbabilityFn(values ...float64) ProbabilityFn {
	if len(values) == 0 {
		panic("DiscreteProbabilityFn: no values")
	}
	for _, v := range values {
		if !(v > 0 && v <= 1) {
			panic(fmt.Sprintf("DiscreteProbabilityFn: value must be in (0,1], got %g", v))
		}
	}
	set := append([]float64(nil), values...)

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return set[0]
		}

		return set[rng.Intn(len(set))]
	}
}
