// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_complete.go - complete digraph: an edge for every ordered pair i≠j.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete builds the complete digraph on n nodes (n ≥ 1): n·(n-1) edges,
// emitted with i ascending then j ascending.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := addEdge(methodComplete, b, cfg, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
