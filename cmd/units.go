package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"unitconv/pkg/units"
)

// unitsCommand constructs the 'units' subcommand that prints the alias table.
func unitsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units [KIND]",
		Short: "Lists recognized units and their aliases",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var kind units.Kind
			if len(args) == 1 {
				var err error
				if kind, err = units.ParseKind(args[0]); err != nil {
					return err //nolint: wrapcheck
				}
			}

			defs, err := a.svc.Units(cmd.Context(), kind)
			if err != nil {
				return err //nolint: wrapcheck
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint: mnd
			fmt.Fprintln(tw, "KIND\tSYMBOL\tNAME\tTO SI\tALIASES")
			for _, def := range defs {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%g\t%s\n",
					def.Kind, def.Symbol, def.Name, def.FactorToSI, strings.Join(def.Aliases, ", "))
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}

	return cmd
}

// operationsCommand constructs the 'operations' subcommand that prints the
// formula registry.
func operationsCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "operations",
		Aliases: []string{"ops"},
		Short:   "Lists the formulas accepted by calc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0) //nolint: mnd
			fmt.Fprintln(tw, "OPERATION\tFORMULA\tRESULT\tARGUMENTS")
			for _, op := range a.svc.Operations(cmd.Context()) {
				params := make([]string, len(op.Params))
				for i, p := range op.Params {
					if p.Kind != "" {
						params[i] = fmt.Sprintf("%s (%s)", p.Name, p.Kind)
					} else {
						params[i] = fmt.Sprintf("%s [%s]", p.Name, p.Unit)
					}
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", op.Name, op.Formula, op.ResultUnit, strings.Join(params, ", "))
			}

			return tw.Flush() //nolint: wrapcheck
		},
	}

	return cmd
}
