package main

import (
	"io"
	"strconv"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
)

// addOutputFlags registers the flags shared by commands that print a result.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Print the result as JSON")
	cmd.Flags().IntP("precision", "p", -1, "Digits after the decimal point (-1 for the shortest exact form)")
}

// formatFloat renders v with the --precision flag of cmd.
func formatFloat(cmd *cobra.Command, v float64) string {
	precision, _ := cmd.Flags().GetInt("precision")
	if precision < 0 {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return strconv.FormatFloat(v, 'f', precision, 64)
}

// writeJSON encodes a value through enc and writes it followed by a newline.
func writeJSON(w io.Writer, enc func(e *jx.Encoder)) error {
	e := jx.GetEncoder()
	defer jx.PutEncoder(e)

	enc(e)
	_, err := w.Write(append(e.Bytes(), '\n'))

	return err //nolint: wrapcheck
}
