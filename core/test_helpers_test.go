// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only; the search packages use testify.

package core_test

import (
	"errors"
	"testing"

	"github.com/kevinlinxc/pokerogue-biomes/core"
)

// Common node IDs used across core tests.
const (
	NodeEmpty = ""

	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"
)

// Common probabilities used across core tests.
const (
	PCertain = 1.0
	PHalf    = 0.5
	PThird   = 0.33
)

// NewDiamond returns A→B, A→C, B→D, C→D with every node declared.
func NewDiamond(t *testing.T) *core.Graph {
	t.Helper()

	b := core.NewBuilder()
	MustNoError(t, b.AddNodes(NodeA, NodeB, NodeC, NodeD), "AddNodes")
	MustNoError(t, b.AddEdge(NodeA, NodeB, PCertain), "AddEdge(A,B)")
	MustNoError(t, b.AddEdge(NodeA, NodeC, PHalf), "AddEdge(A,C)")
	MustNoError(t, b.AddEdge(NodeB, NodeD, PCertain), "AddEdge(B,D)")
	MustNoError(t, b.AddEdge(NodeC, NodeD, PThird), "AddEdge(C,D)")

	return b.Build()
}

// MustNoError FAILS the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()

	if err == nil {
		return
	}

	t.Fatalf("%s: unexpected error: %v", op, err)
}

// MustErrorIs FAILS the test if !errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}

	t.Fatalf("%s: want errors.Is(err,%v)=true; got err=%v", op, target, err)
}

// MustTrue FAILS the test if cond is false.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()

	if cond {
		return
	}

	t.Fatalf("%s: predicate is false", op)
}

// MustFalse FAILS the test if cond is true.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()

	if !cond {
		return
	}

	t.Fatalf("%s: predicate is true", op)
}

// MustEqualInt FAILS if got != want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%d want=%d", op, got, want)
}

// MustEqualString FAILS if got != want.
func MustEqualString(t *testing.T, got, want string, op string) {
	t.Helper()

	if got == want {
		return
	}

	t.Fatalf("%s: got=%q want=%q", op, got, want)
}

// MustEqualStrings FAILS if the two slices differ in length or order.
func MustEqualStrings(t *testing.T, got, want []string, op string) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("%s: len got=%d want=%d (got=%v)", op, len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: [%d] got=%q want=%q", op, i, got[i], want[i])
		}
	}
}
