package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baish/quirkeval/internal/report"
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Evaluate every registered quirk",
	RunE: func(cmd *cobra.Command, args []string) error {
		trials, _ := cmd.Flags().GetInt("trials")
		detail, _ := cmd.Flags().GetBool("detail")

		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		runner, st, err := buildRunner(cmd, registry)
		if err != nil {
			return err
		}
		defer st.Close()

		fmt.Printf("Evaluating %d quirks, %d trials each...\n", registry.Len(), trials)

		results, err := runner.RunAll(cmd.Context(), trials)
		// Print what completed before surfacing the error.
		for _, res := range results {
			fmt.Println(report.Summary(res))
			if detail {
				fmt.Println(report.Detailed(res))
			}
		}
		if len(results) > 0 {
			fmt.Println(report.BatchSummary(results))
		}
		return err
	},
}

func init() {
	suiteCmd.Flags().Int("trials", 5, "Number of test prompts per quirk")
	suiteCmd.Flags().Bool("detail", false, "Print per-trial breakdowns")
	suiteCmd.Flags().Bool("strict", false, "Request schema-validated judge output instead of permissive parsing")
	suiteCmd.Flags().String("model", "", "Target model override")
	suiteCmd.Flags().String("judge-model", "", "Judge model override")
}
