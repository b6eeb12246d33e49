// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_sparse.go - Erdős–Rényi-like random digraph G(n,p).
//
// Determinism:
//   - Ordered pairs are scanned i ascending, j ascending; for each pair one
//     draw decides presence, then the probability function draws from the
//     same RNG. Same seed ⇒ same graph.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse includes each ordered pair (i,j), i≠j, independently with
// probability p. Requires an RNG (WithSeed/WithRand) unless p is 0 or 1.
// Self-loops are never emitted.
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
// Complexity: O(n²) pair checks.
func RandomSparse(n int, p float64) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomSparse, b, cfg, n); err != nil {
			return err
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				switch {
				case p == probMin:
					continue
				case p == probMax:
				case cfg.rng.Float64() >= p:
					continue
				}
				if err := addEdge(methodRandomSparse, b, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
