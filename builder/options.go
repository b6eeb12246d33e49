// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options for builder configuration.
//
// Option constructors validate their arguments and panic on programmer
// errors (nil functions), so misuse fails at the call site.

package builder

import (
	"math/rand"
)

// BuilderOption mutates a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the index→ID function used by every constructor.
// Panics if fn is nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}

	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand attaches a caller-owned RNG. Panics if r is nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a fresh RNG seeded with seed, for reproducible fixtures.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithProbabilityFn sets the edge probability generator. Panics if fn is nil.
func WithProbabilityFn(fn ProbabilityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithProbabilityFn(nil)")
	}

	return func(c *builderConfig) { c.probFn = fn }
}
