package cli

import (
	"fmt"

	"github.com/dgallion1/askdoc/internal/migrate"
	"github.com/dgallion1/askdoc/internal/store"
	"github.com/spf13/cobra"
)

var (
	checkPlanPath string
	checkDocPath  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a restructuring plan against the document",
	Long: `Dry run of migrate: verifies that every question in the document is
claimed by exactly one plan position or marked removed, and that every id
the plan references exists. Writes nothing.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkPlanPath, "plan", "", "restructuring plan (YAML)")
	checkCmd.Flags().StringVar(&checkDocPath, "doc", "", "questionnaire document")
	checkCmd.MarkFlagRequired("plan")
	checkCmd.MarkFlagRequired("doc")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	plan, err := migrate.LoadPlan(checkPlanPath)
	if err != nil {
		return err
	}

	text, err := store.New(checkDocPath).Read()
	if err != nil {
		return err
	}

	if err := migrate.Check(text, plan); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "plan ok: %d questions mapped into %d sections, %d removed\n",
		plan.MappedCount(), len(plan.Sections), len(plan.Removed))
	return nil
}
