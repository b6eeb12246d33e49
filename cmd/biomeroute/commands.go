package main

import (
	"github.com/spf13/cobra"

	"github.com/kevinlinxc/pokerogue-biomes/route"
)

func newRouteCmd(flags *rootFlags) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "route <source> <destination>",
		Short: "Find the best routes from source to destination",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, flags, route.ModeRoute, by, args[0], args[1])
		},
	}
	cmd.Flags().StringVar(&by, "by", "shortest", "criterion: shortest or likeliest")

	return cmd
}

func newCycleCmd(flags *rootFlags) *cobra.Command {
	var by string

	cmd := &cobra.Command{
		Use:   "cycle <start>",
		Short: "Find the shortest loops back to start",
		Long: "Find the shortest loops back to start.\n\n" +
			"--by likeliest is accepted but runs the shortest cycle search; the\n" +
			"output notes the substitution.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, flags, route.ModeCycle, by, args[0], "")
		},
	}
	cmd.Flags().StringVar(&by, "by", "shortest", "criterion: shortest or likeliest")

	return cmd
}

func runQuery(cmd *cobra.Command, flags *rootFlags, mode route.Mode, by, source, destination string) error {
	criterion, err := route.ParseCriterion(by)
	if err != nil {
		return err
	}
	a, err := loadApp(cmd.Context(), cmd, flags)
	if err != nil {
		return err
	}

	res, err := a.engine.Execute(cmd.Context(), route.Query{
		Mode:        mode,
		Criterion:   criterion,
		Source:      source,
		Destination: destination,
	})
	if err != nil {
		return err
	}

	return a.out.result(res)
}

func newValidateCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check endpoint closure and reachability from the root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}
			if err := a.out.report(a.report); err != nil {
				return err
			}
			if !a.report.OK() {
				return errValidation
			}

			return nil
		},
	}
}

func newNodesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "nodes",
		Short: "List biomes and their outgoing transitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := loadApp(cmd.Context(), cmd, flags)
			if err != nil {
				return err
			}

			return a.out.nodes(a.catalog.Graph)
		},
	}
}
