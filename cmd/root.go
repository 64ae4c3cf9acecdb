/*
Copyright © 2023 Glossopoeia
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "matcha",
	Short: "Syntax kernel of the matcha calculus",
	Long: `matcha is the syntax kernel of a small dependently typed calculus:
expressions built from variables, application, λ-abstractions, Π-types,
Σ-types and a universe constant, with a canonical textual encoding that
prints the fewest parentheses that still read back to the same tree.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
