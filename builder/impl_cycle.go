// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_cycle.go - directed cycle C_n: 0→1→…→n-1→0.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 2
)

// Cycle builds a directed cycle of n nodes (n ≥ 2). Every node lies on
// exactly one cycle of length n.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodCycle, b, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := addEdge(methodCycle, b, cfg, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
