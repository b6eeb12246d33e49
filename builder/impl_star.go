// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_star.go - hub-and-spoke: Center→leaf and leaf→Center for every leaf.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2

	// CenterID is the fixed ID of the Star hub.
	CenterID = "Center"
)

// Star builds a hub "Center" with n-1 leaves cfg.idFn(1..n-1) (n ≥ 2).
// Each spoke is emitted outbound then inbound, each with its own drawn
// probability, so every leaf lies on a two-hop cycle through the hub.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(b *core.Builder, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := b.AddNode(CenterID); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", methodStar, CenterID, err)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := b.AddNode(leaf); err != nil {
				return fmt.Errorf("%s: AddNode(%s): %w", methodStar, leaf, err)
			}
			if err := addEdge(methodStar, b, cfg, CenterID, leaf); err != nil {
				return err
			}
			if err := addEdge(methodStar, b, cfg, leaf, CenterID); err != nil {
				return err
			}
		}

		return nil
	}
}
