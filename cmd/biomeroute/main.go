// Command biomeroute answers route and cycle queries over a biome graph.
//
//	biomeroute route Town Volcano --by likeliest
//	biomeroute cycle Lake
//	biomeroute validate --graph ./biomes.yaml
//	biomeroute nodes --output json
//
// The graph comes from --graph, then $BIOMEROUTE_GRAPH, then the embedded
// Pokerogue dataset. It is validated once at startup; a failed validation is
// logged and the query still runs, unless --strict is set.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kevinlinxc/pokerogue-biomes/catalog"
	"github.com/kevinlinxc/pokerogue-biomes/route"
	"github.com/kevinlinxc/pokerogue-biomes/validate"
)

var errValidation = errors.New("graph failed validation")

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "biomeroute:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	graphPath string
	root      string
	logLevel  string
	output    string
	noColor   bool
	strict    bool
}

type app struct {
	logger  *slog.Logger
	catalog *catalog.Catalog
	report  *validate.Report
	engine  *route.Engine
	out     *renderer
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:           "biomeroute",
		Short:         "Find shortest and likeliest biome routes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.graphPath, "graph", "", "biome graph YAML (default: $"+catalog.EnvGraphPath+" or embedded)")
	pf.StringVar(&flags.root, "root", "", "validation root (default: the document's root)")
	pf.StringVar(&flags.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	pf.StringVarP(&flags.output, "output", "o", formatText, "output format: text or json")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")
	pf.BoolVar(&flags.strict, "strict", false, "fail when the graph does not validate")

	root.AddCommand(newRouteCmd(&flags))
	root.AddCommand(newCycleCmd(&flags))
	root.AddCommand(newValidateCmd(&flags))
	root.AddCommand(newNodesCmd(&flags))

	return root
}

// loadApp resolves the graph, validates it and builds the engine.
func loadApp(ctx context.Context, cmd *cobra.Command, flags *rootFlags) (*app, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), flags.logLevel)
	if err != nil {
		return nil, err
	}
	out, err := newRenderer(cmd.OutOrStdout(), flags.output, flags.noColor)
	if err != nil {
		return nil, err
	}

	c, err := catalog.Resolve(ctx, flags.graphPath, catalog.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	rootID := flags.root
	if rootID == "" {
		rootID = c.Root
	}
	rep, err := validate.Validate(c.Graph, rootID)
	if err != nil {
		return nil, err
	}
	if !rep.OK() {
		if flags.strict {
			return nil, fmt.Errorf("%w: %d violation(s) from root %q", errValidation, len(rep.Violations), rootID)
		}
		logger.Warn("graph failed validation, continuing", slog.Any("report", rep))
	}

	engine, err := route.NewEngine(c.Graph, route.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &app{logger: logger, catalog: c, report: rep, engine: engine, out: out}, nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("--log-level: %w", err)
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
