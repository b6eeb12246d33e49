// Package likeliest defines options and errors for the maximum-probability
// route search.
package likeliest

import (
	"errors"
	"fmt"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("likeliest: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("likeliest: invalid option supplied")
)

// Options configures LikeliestPath.
type Options struct {
	// MaxHops, if > 0, restricts the search to paths of at most MaxHops edges.
	// The search then tracks the best probability per (node, hops) pair so
	// that a longer, likelier prefix cannot hide a shorter feasible one.
	MaxHops int

	// MinProbability prunes every candidate whose cumulative probability
	// falls below it. 0 disables pruning.
	MinProbability float64

	// OnRelax is called whenever a node's best cumulative probability
	// improves and the node is (re-)enqueued.
	OnRelax func(id string, probability float64, hops int)

	err error
}

// Option is a functional option for LikeliestPath.
type Option func(*Options)

// DefaultOptions returns Options with no hop limit, no pruning and a no-op hook.
func DefaultOptions() Options {
	return Options{
		OnRelax: func(string, float64, int) {},
	}
}

// WithMaxHops limits returned paths to n edges; 0 means no limit and a
// negative n is recorded as ErrOptionViolation.
func WithMaxHops(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxHops cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxHops = n
	}
}

// WithMinProbability prunes candidates below p; p must lie in [0,1].
func WithMinProbability(p float64) Option {
	return func(o *Options) {
		if !(p >= 0 && p <= 1) {
			o.err = fmt.Errorf("%w: MinProbability must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.MinProbability = p
	}
}

// WithOnRelax registers a hook for every strict improvement.
func WithOnRelax(fn func(id string, probability float64, hops int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}
