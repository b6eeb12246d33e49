// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn   = DefaultIDFn          ("0","1","2",...)
//   - rng    = nil                  (pure/deterministic unless seeded)
//   - probFn = DefaultProbabilityFn (every transition certain)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Node ID strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Probability generator for edges.
	probFn ProbabilityFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:   DefaultIDFn,
		probFn: DefaultProbabilityFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
