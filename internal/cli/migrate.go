package cli

import (
	"fmt"

	"github.com/dgallion1/askdoc/internal/migrate"
	"github.com/dgallion1/askdoc/internal/store"
	"github.com/spf13/cobra"
)

var (
	migratePlanPath string
	migrateDocPath  string
	migrateOutPath  string
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Restructure the questionnaire from a plan",
	Long: `Regroups questions under the plan's section titles, renumbers every
section and question, and drops the ids the plan marks removed. Question
bodies are carried over verbatim. The plan must account for every question
in the document; any mismatch aborts the run with a full report.`,
	RunE: runMigrate,
}

func init() {
	migrateCmd.Flags().StringVar(&migratePlanPath, "plan", "", "restructuring plan (YAML)")
	migrateCmd.Flags().StringVar(&migrateDocPath, "doc", "", "questionnaire document")
	migrateCmd.Flags().StringVarP(&migrateOutPath, "output", "o", "", "output path (default: overwrite --doc)")
	migrateCmd.MarkFlagRequired("plan")
	migrateCmd.MarkFlagRequired("doc")

	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	plan, err := migrate.LoadPlan(migratePlanPath)
	if err != nil {
		return err
	}

	src := store.New(migrateDocPath)
	text, err := src.Read()
	if err != nil {
		return err
	}

	result, err := migrate.Migrate(text, plan)
	if err != nil {
		return err
	}

	dst := src
	if migrateOutPath != "" {
		dst = store.New(migrateOutPath)
	}
	if err := dst.Write(result); err != nil {
		return err
	}

	blocks := len(migrate.SourceIDs(text))
	fmt.Fprintf(cmd.OutOrStdout(), "parsed %d questions, mapped %d into %d sections, removed %d\n",
		blocks, plan.MappedCount(), len(plan.Sections), len(plan.Removed))
	fmt.Fprintf(cmd.OutOrStdout(), "written to %s\n", dst.Path())
	return nil
}
