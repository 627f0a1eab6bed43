package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"unitconv/pkg/units"
)

// tempCommand constructs the 'temp' subcommand that converts between the
// Celsius, Fahrenheit and Kelvin scales.
func tempCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "temp VALUE",
		Short:   "Converts a temperature between scales",
		Example: "  unitconv temp 100 --from C --to F",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromName, _ := cmd.Flags().GetString("from")
			toName, _ := cmd.Flags().GetString("to")

			v, err := units.ParseNumber(args[0])
			if err != nil {
				return err //nolint: wrapcheck
			}
			from, err := units.ParseTemperatureScale(fromName)
			if err != nil {
				return err //nolint: wrapcheck
			}
			to, err := units.ParseTemperatureScale(toName)
			if err != nil {
				return err //nolint: wrapcheck
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
				args[0], from, formatFloat(cmd, units.ConvertTemperature(v, from, to)), to)

			return err //nolint: wrapcheck
		},
	}

	cmd.Flags().StringP("from", "f", "C", "Source scale (C, F or K)")
	cmd.Flags().StringP("to", "t", "F", "Target scale (C, F or K)")
	cmd.Flags().IntP("precision", "p", 2, "Digits after the decimal point (-1 for the shortest exact form)") //nolint: mnd

	return cmd
}
