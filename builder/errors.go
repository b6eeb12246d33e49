// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors returned by constructors. Callers branch with
// errors.Is; messages carry the constructor name as context.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge-density probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a structural failure such as a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
