package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitconv/pkg/units"
)

// convertCommand constructs the 'convert' subcommand that normalizes a
// quantity to SI or re-expresses it in another unit of the same kind.
func convertCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     `convert KIND "VALUE UNIT"`,
		Short:   "Converts a quantity to SI or to another unit",
		Example: `  unitconv convert distance "10 feet"` + "\n" + `  unitconv convert speed "50 km/h" --to mph`,
		Args:    cobra.ExactArgs(2), //nolint: mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			to, _ := cmd.Flags().GetString("to")
			asJSON, _ := cmd.Flags().GetBool("json")

			kind, err := units.ParseKind(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}

			conv, err := a.svc.Convert(cmd.Context(), kind, args[1], to)
			if err != nil {
				return err //nolint: wrapcheck
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), conv.Encode)
			}

			unit := conv.SIUnit
			if conv.Target != "" {
				unit = conv.Target
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n", conv.Input, formatFloat(cmd, conv.Value), unit)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringP("to", "t", "", "Target unit (defaults to the SI base unit)")
	addOutputFlags(cmd)

	return cmd
}
