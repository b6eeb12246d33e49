// SPDX-License-Identifier: MIT

package route

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/kevinlinxc/pokerogue-biomes/bfs"
	"github.com/kevinlinxc/pokerogue-biomes/core"
	"github.com/kevinlinxc/pokerogue-biomes/likeliest"
)

const instrumentationName = "biomeroute.route"

// Result is the answer to one Query.
type Result struct {
	// ID correlates the query's log lines and span.
	ID    string `json:"id"`
	Query Query  `json:"query"`

	// Strategy is what the query resolved to; Effective is what ran.
	Strategy    Strategy `json:"strategy"`
	Effective   Strategy `json:"effective"`
	Substituted bool     `json:"substituted"`

	// Paths is never nil; empty means no answer.
	Paths []core.Path `json:"paths"`
}

// Engine dispatches queries to the searches over one immutable graph.
// It holds no per-query state and is safe for concurrent use.
type Engine struct {
	graph  *core.Graph
	logger *slog.Logger
	tracer trace.Tracer

	queries  metric.Int64Counter
	duration metric.Float64Histogram

	shortestOpts  []bfs.Option
	likeliestOpts []likeliest.Option
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	logger        *slog.Logger
	tp            trace.TracerProvider
	mp            metric.MeterProvider
	shortestOpts  []bfs.Option
	likeliestOpts []likeliest.Option
}

// WithLogger sets the engine logger. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *engineConfig) {
		if tp != nil {
			c.tp = tp
		}
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *engineConfig) {
		if mp != nil {
			c.mp = mp
		}
	}
}

// WithShortestOptions passes options to every shortest route and cycle search.
func WithShortestOptions(opts ...bfs.Option) Option {
	return func(c *engineConfig) { c.shortestOpts = append(c.shortestOpts, opts...) }
}

// WithLikeliestOptions passes options to every likeliest route search.
func WithLikeliestOptions(opts ...likeliest.Option) Option {
	return func(c *engineConfig) { c.likeliestOpts = append(c.likeliestOpts, opts...) }
}

// NewEngine binds an engine to g. The graph is not validated here; run
// validate.Validate once at load and decide there whether to proceed.
func NewEngine(g *core.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	cfg := engineConfig{
		logger: slog.Default(),
		tp:     otel.GetTracerProvider(),
		mp:     otel.GetMeterProvider(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.mp.Meter(instrumentationName)
	queries, err := meter.Int64Counter("route_queries_total",
		metric.WithDescription("Route queries by effective strategy and outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}
	duration, err := meter.Float64Histogram("route_query_duration_seconds",
		metric.WithDescription("Duration of route queries"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("NewEngine: %w", err)
	}

	return &Engine{
		graph:         g,
		logger:        cfg.logger,
		tracer:        cfg.tp.Tracer(instrumentationName),
		queries:       queries,
		duration:      duration,
		shortestOpts:  cfg.shortestOpts,
		likeliestOpts: cfg.likeliestOpts,
	}, nil
}

// Graph returns the graph the engine searches.
func (e *Engine) Graph() *core.Graph { return e.graph }

// Execute answers q. Unsatisfiable queries give an empty Paths and a nil
// error; errors signal misuse (enum out of range, invalid search options).
func (e *Engine) Execute(ctx context.Context, q Query) (*Result, error) {
	if err := q.check(); err != nil {
		return nil, fmt.Errorf("Execute: %w", err)
	}

	strategy := q.Strategy()
	res := &Result{
		ID:          uuid.NewString(),
		Query:       q,
		Strategy:    strategy,
		Effective:   strategy.Effective(),
		Substituted: !strategy.Supported(),
	}

	ctx, span := e.tracer.Start(ctx, "route.Execute",
		trace.WithAttributes(
			attribute.String("route.query_id", res.ID),
			attribute.String("route.mode", q.Mode.String()),
			attribute.String("route.criterion", q.Criterion.String()),
			attribute.String("route.source", q.Source),
			attribute.String("route.destination", q.Destination),
			attribute.String("route.strategy", strategy.String()),
		),
	)
	defer span.End()

	start := time.Now()
	paths, err := e.dispatch(res.Effective, q)
	outcome := "found"
	switch {
	case err != nil:
		outcome = "error"
	case len(paths) == 0:
		outcome = "empty"
	}
	attrs := metric.WithAttributes(
		attribute.String("strategy", res.Effective.String()),
		attribute.String("outcome", outcome),
	)
	e.queries.Add(ctx, 1, attrs)
	e.duration.Record(ctx, time.Since(start).Seconds(), attrs)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		e.logger.Error("route query failed",
			slog.String("query_id", res.ID),
			slog.String("strategy", res.Effective.String()),
			slog.String("error", err.Error()))

		return nil, fmt.Errorf("Execute: %w", err)
	}

	if paths == nil {
		paths = []core.Path{}
	}
	res.Paths = paths
	span.SetAttributes(
		attribute.Int("route.paths", len(paths)),
		attribute.Bool("route.substituted", res.Substituted),
	)

	if res.Substituted {
		e.logger.Debug("likeliest cycle unsupported, ran shortest cycle",
			slog.String("query_id", res.ID),
			slog.String("source", q.Source))
	}
	e.logger.Debug("route query",
		slog.String("query_id", res.ID),
		slog.String("strategy", res.Effective.String()),
		slog.String("source", q.Source),
		slog.String("destination", q.Destination),
		slog.Int("paths", len(paths)))

	return res, nil
}

func (e *Engine) dispatch(s Strategy, q Query) ([]core.Path, error) {
	switch s {
	case StrategyShortestRoute:
		return bfs.ShortestPaths(e.graph, q.Source, q.Destination, e.shortestOpts...)
	case StrategyLikeliestRoute:
		return likeliest.LikeliestPath(e.graph, q.Source, q.Destination, e.likeliestOpts...)
	case StrategyShortestCycle:
		return bfs.ShortestCycles(e.graph, q.Source, e.shortestOpts...)
	default:
		return nil, nil
	}
}
