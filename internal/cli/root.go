// Package cli wires the askdoc commands: serving the questionnaire form,
// restructuring the document from a plan, and validating a plan.
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "askdoc",
	Short: "Questionnaire document server and restructuring tool",
	Long: `askdoc serves a markdown questionnaire as a browser form, writes answers
back into the document in place, and can regenerate the whole document
from a declarative restructuring plan.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
