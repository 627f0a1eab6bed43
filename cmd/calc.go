package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"unitconv/internal/calculator"
	"unitconv/pkg/serrors"
	"unitconv/pkg/units"
)

// calcCommand constructs the 'calc' subcommand that evaluates a formula from
// name=value arguments. Values are bare SI numbers or unit strings.
func calcCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc OPERATION name=value...",
		Short:   "Evaluates a physics formula",
		Example: `  unitconv calc momentum mass="10 lb" velocity="50 km/h"` + "\n" + `  unitconv calc speed distance=100 time=10`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			calcArgs, err := parseCalcArgs(args[1:])
			if err != nil {
				return err
			}

			res, err := a.svc.Evaluate(cmd.Context(), args[0], calcArgs)
			if err != nil {
				return err //nolint: wrapcheck
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Encode)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s %s\n", res.Operation, formatFloat(cmd, res.Result), res.Unit)

			return err //nolint: wrapcheck
		},
	}

	addOutputFlags(cmd)

	return cmd
}

// parseCalcArgs turns name=value pairs into formula arguments. A value that is
// a plain finite decimal is Numeric; anything else is handed to the unit parser
// as Text.
func parseCalcArgs(pairs []string) (map[string]calculator.Arg, error) {
	args := make(map[string]calculator.Arg, len(pairs))
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, serrors.With(serrors.ErrBadRequest, "argument %q must be name=value", pair)
		}
		if _, dup := args[name]; dup {
			return nil, serrors.With(serrors.ErrBadRequest, "argument %q given more than once", name)
		}

		if v, err := units.ParseNumber(value); err == nil {
			args[name] = calculator.Numeric(v)
		} else {
			args[name] = calculator.Text(value)
		}
	}

	return args, nil
}
