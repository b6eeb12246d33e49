// SPDX-License-Identifier: MIT

package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gopkg.in/yaml.v3"

	"github.com/kevinlinxc/pokerogue-biomes/core"
	"github.com/kevinlinxc/pokerogue-biomes/validate"
)

const (
	// MaxYAMLFileSize bounds documents read from disk (1 MiB).
	MaxYAMLFileSize = 1024 * 1024

	// EnvGraphPath names the environment variable Resolve consults when no
	// explicit path is given.
	EnvGraphPath = "BIOMEROUTE_GRAPH"
)

var (
	// ErrInvalidDocument indicates a document that fails to decode, validate,
	// or build into a graph.
	ErrInvalidDocument = errors.New("catalog: invalid document")

	// ErrFileTooLarge indicates a file above MaxYAMLFileSize.
	ErrFileTooLarge = errors.New("catalog: file too large")
)

//go:embed biomes.yaml
var defaultBiomesYAML []byte

var documentValidate = validator.New()

// Catalog is a decoded document together with the graph built from it.
type Catalog struct {
	Name   string
	Root   string
	Source string // "embedded", a file path, or "inline"
	Graph  *core.Graph
}

// Validate runs the graph validator from the catalog's root.
func (c *Catalog) Validate() (*validate.Report, error) {
	return validate.Validate(c.Graph, c.Root)
}

// Option configures loading.
type Option func(*config)

type config struct {
	logger    *slog.Logger
	graphOpts []core.GraphOption
}

// WithLogger sets the logger used for load events. Nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithGraphOptions forwards options to core.NewBuilder.
func WithGraphOptions(opts ...core.GraphOption) Option {
	return func(c *config) { c.graphOpts = append(c.graphOpts, opts...) }
}

func newConfig(opts []Option) config {
	c := config{logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// DefaultYAML returns a copy of the embedded biome document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultBiomesYAML))
	copy(out, defaultBiomesYAML)

	return out
}

// Default builds the embedded Pokerogue biome graph.
func Default(ctx context.Context, opts ...Option) (*Catalog, error) {
	return parse(ctx, SourceEmbedded, SourceEmbedded, defaultBiomesYAML, newConfig(opts))
}

// Parse builds a catalog from an in-memory document.
func Parse(ctx context.Context, data []byte, opts ...Option) (*Catalog, error) {
	return parse(ctx, SourceInline, SourceInline, data, newConfig(opts))
}

// Load reads and parses a document from path.
func Load(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	ctx, span := tracer.Start(ctx, "catalog.Load",
		trace.WithAttributes(attribute.String("path", path)),
	)
	defer span.End()

	cfg := newConfig(opts)
	data, err := readFile(path)
	if err != nil {
		recordLoad(SourceFile, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")

		return nil, fmt.Errorf("Load: %w", err)
	}
	span.SetAttributes(attribute.Int("file_size", len(data)))

	return parse(ctx, SourceFile, path, data, cfg)
}

// Resolve picks the graph source: path if non-empty, else $BIOMEROUTE_GRAPH,
// else the embedded default. A configured file that cannot be loaded is an
// error, not a silent fallback.
func Resolve(ctx context.Context, path string, opts ...Option) (*Catalog, error) {
	if path == "" {
		path = os.Getenv(EnvGraphPath)
	}
	if path == "" {
		return Default(ctx, opts...)
	}

	return Load(ctx, path, opts...)
}

func readFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	if info.Size() > MaxYAMLFileSize {
		return nil, fmt.Errorf("%w: %d bytes (max %d)", ErrFileTooLarge, info.Size(), MaxYAMLFileSize)
	}

	return os.ReadFile(path)
}

func parse(ctx context.Context, kind, source string, data []byte, cfg config) (c *Catalog, err error) {
	_, span := tracer.Start(ctx, "catalog.Parse",
		trace.WithAttributes(
			attribute.String("source", kind),
			attribute.Int("yaml_size", len(data)),
		),
	)
	defer span.End()

	start := time.Now()
	defer func() {
		catalogLoadDuration.Observe(time.Since(start).Seconds())
		recordLoad(kind, err)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "parse failed")
		}
	}()

	var doc Document
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err = documentValidate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	g, err := buildGraph(&doc, cfg.graphOpts)
	if err != nil {
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("node_count", g.NodeCount()),
		attribute.Int("edge_count", g.EdgeCount()),
	)
	catalogEdges.Set(float64(g.EdgeCount()))
	cfg.logger.Info("biome catalog loaded",
		slog.String("source", source),
		slog.String("name", doc.Name),
		slog.String("root", doc.Root),
		slog.Int("node_count", g.NodeCount()),
		slog.Int("edge_count", g.EdgeCount()))

	return &Catalog{Name: doc.Name, Root: doc.Root, Source: source, Graph: g}, nil
}

// buildGraph declares biomes in document order, then adds transitions per
// source in document order.
func buildGraph(doc *Document, gopts []core.GraphOption) (*core.Graph, error) {
	b := core.NewBuilder(gopts...)
	if err := b.AddNodes(doc.Biomes...); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	for _, s := range doc.Transitions.Sources {
		for _, t := range s.Transitions {
			if err := b.AddEdge(s.From, t.To, t.Probability); err != nil {
				return nil, fmt.Errorf("%w: %s -> %s: %w", ErrInvalidDocument, s.From, t.To, err)
			}
		}
	}

	return b.Build(), nil
}
