// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_path.go - directed path P_n: 0→1→…→n-1.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds a directed path of n nodes (n ≥ 2) with n-1 edges.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodPath, b, cfg, n); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge(methodPath, b, cfg, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
