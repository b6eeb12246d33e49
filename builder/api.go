// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates a core.Builder,
//     resolves cfg, runs cons in order, then seals the graph.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// Constructor applies a deterministic topology to b using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(b *core.Builder, cfg builderConfig) error

// BuildGraph creates a core.Builder with graph options gopts, resolves the
// builder configuration from bopts, applies all constructors in order and
// returns the sealed graph. Any constructor error is wrapped with
// "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(b, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return b.Build(), nil
}

// addNodes declares cfg.idFn(0..n-1) in index order.
func addNodes(method string, b *core.Builder, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		if err := b.AddNode(id); err != nil {
			return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
		}
	}

	return nil
}

// addEdge draws a probability from cfg and adds u→v.
func addEdge(method string, b *core.Builder, cfg builderConfig, u, v string) error {
	p := cfg.probFn(cfg.rng)
	if err := b.AddEdge(u, v, p); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, p=%g): %w", method, u, v, p, err)
	}

	return nil
}
