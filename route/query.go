package route

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownMode indicates a Mode outside ModeRoute and ModeCycle.
	ErrUnknownMode = errors.New("route: unknown mode")

	// ErrUnknownCriterion indicates a Criterion outside CriterionShortest and CriterionLikeliest.
	ErrUnknownCriterion = errors.New("route: unknown criterion")

	// ErrGraphNil is returned by NewEngine for a nil graph.
	ErrGraphNil = errors.New("route: graph is nil")
)

// Mode selects between routes to a destination and cycles back to the source.
type Mode int

const (
	// ModeRoute searches Source → Destination.
	ModeRoute Mode = iota + 1
	// ModeCycle searches Source → … → Source; Destination is ignored.
	ModeCycle
)

func (m Mode) String() string {
	switch m {
	case ModeRoute:
		return "route"
	case ModeCycle:
		return "cycle"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// MarshalText renders the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeRoute && m != ModeCycle {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}

	return []byte(m.String()), nil
}

// ParseMode accepts "route" or "cycle", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "route":
		return ModeRoute, nil
	case "cycle":
		return ModeCycle, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Criterion selects what "best" means.
type Criterion int

const (
	// CriterionShortest minimizes hop count.
	CriterionShortest Criterion = iota + 1
	// CriterionLikeliest maximizes cumulative probability, fewer hops on ties.
	CriterionLikeliest
)

func (c Criterion) String() string {
	switch c {
	case CriterionShortest:
		return "shortest"
	case CriterionLikeliest:
		return "likeliest"
	default:
		return fmt.Sprintf("criterion(%d)", int(c))
	}
}

// MarshalText renders the criterion by name.
func (c Criterion) MarshalText() ([]byte, error) {
	if c != CriterionShortest && c != CriterionLikeliest {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCriterion, int(c))
	}

	return []byte(c.String()), nil
}

// ParseCriterion accepts "shortest" or "likeliest", case-insensitively.
func ParseCriterion(s string) (Criterion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shortest":
		return CriterionShortest, nil
	case "likeliest":
		return CriterionLikeliest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownCriterion, s)
	}
}

// Query is one request to the engine. Empty Source, or empty Destination in
// ModeRoute, is a valid query with an empty answer.
type Query struct {
	Mode        Mode      `json:"mode"`
	Criterion   Criterion `json:"criterion"`
	Source      string    `json:"source"`
	Destination string    `json:"destination,omitempty"`
}

// check reports enum values out of range.
func (q Query) check() error {
	if q.Mode != ModeRoute && q.Mode != ModeCycle {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int(q.Mode))
	}
	if q.Criterion != CriterionShortest && q.Criterion != CriterionLikeliest {
		return fmt.Errorf("%w: %d", ErrUnknownCriterion, int(q.Criterion))
	}

	return nil
}

// Strategy resolves the search a query maps to. Out-of-range enums resolve to
// StrategyNone; Engine.Execute rejects them before dispatch.
func (q Query) Strategy() Strategy {
	if q.check() != nil || q.Source == "" {
		return StrategyNone
	}
	if q.Mode == ModeCycle {
		if q.Criterion == CriterionLikeliest {
			return StrategyUnsupported
		}
		return StrategyShortestCycle
	}
	if q.Destination == "" {
		return StrategyNone
	}
	if q.Criterion == CriterionLikeliest {
		return StrategyLikeliestRoute
	}

	return StrategyShortestRoute
}

// Strategy tags the search an Engine runs for a Query.
type Strategy int

const (
	// StrategyNone answers with an empty result and runs nothing.
	StrategyNone Strategy = iota
	// StrategyShortestRoute runs bfs.ShortestPaths.
	StrategyShortestRoute
	// StrategyLikeliestRoute runs likeliest.LikeliestPath.
	StrategyLikeliestRoute
	// StrategyShortestCycle runs bfs.ShortestCycles.
	StrategyShortestCycle
	// StrategyUnsupported marks a likeliest cycle, executed as StrategyShortestCycle.
	StrategyUnsupported
)

func (s Strategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyShortestRoute:
		return "shortest_route"
	case StrategyLikeliestRoute:
		return "likeliest_route"
	case StrategyShortestCycle:
		return "shortest_cycle"
	case StrategyUnsupported:
		return "unsupported"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// MarshalText renders the strategy by name.
func (s Strategy) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Supported is false only for StrategyUnsupported. A UI can use it to relabel
// or disable the likeliest option in cycle mode.
func (s Strategy) Supported() bool { return s != StrategyUnsupported }

// Effective is the strategy actually executed.
func (s Strategy) Effective() Strategy {
	if s == StrategyUnsupported {
		return StrategyShortestCycle
	}

	return s
}
