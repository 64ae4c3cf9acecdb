/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"
	"io"

	"github.com/glossopoeia/matcha/enc/core"
	"github.com/spf13/cobra"
)

// showIndices renders bound variables as De Bruijn indices in fmt output.
var showIndices bool

// fmtCmd parses an expression and reprints it canonically.
var fmtCmd = &cobra.Command{
	Use:   "fmt [expression]",
	Short: "Reprint an expression in canonical form",
	Long: `Parse the expression given as the argument, or read from standard
input when the argument is absent or "-", and print its canonical
rendering. Decode failures are reported with byte offsets into the
input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&showIndices, "indices", false, "print bound variables as De Bruijn indices")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	exp, err := core.New().Decode(input)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), core.New().WithIndices(showIndices).Encode(exp))
	return nil
}

// readInput takes the expression from the argument list, falling back to
// standard input.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return string(b), nil
}
