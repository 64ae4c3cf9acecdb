/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/glossopoeia/matcha/enc/core"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// lexCmd dumps the token stream of an expression.
var lexCmd = &cobra.Command{
	Use:   "lex [expression]",
	Short: "Dump the token stream of an expression",
	Long: `Tokenize the expression given as the argument, or read from standard
input when the argument is absent or "-", and print one spanned token per
line. The spans are the byte offsets that decode errors refer to.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLex,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func runLex(cmd *cobra.Command, args []string) error {
	input, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	lex := core.NewLexer(input)
	var toks []core.Spanned
	for lex.Scan() {
		toks = append(toks, lex.Token())
	}
	if err := lex.Err(); err != nil {
		return err
	}
	lines := lo.Map(toks, func(sp core.Spanned, _ int) string {
		return fmt.Sprintf("%d..%d\t%s", sp.Start, sp.End, sp.Tok)
	})
	if len(lines) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lines, "\n"))
	}
	return nil
}
