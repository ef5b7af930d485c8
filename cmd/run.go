package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baish/quirkeval/internal/eval"
	"github.com/baish/quirkeval/internal/report"
)

var runCmd = &cobra.Command{
	Use:   "run <quirk>",
	Short: "Evaluate one quirk against the configured model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		quirkName := args[0]
		trials, _ := cmd.Flags().GetInt("trials")
		detail, _ := cmd.Flags().GetBool("detail")
		quiet, _ := cmd.Flags().GetBool("quiet")

		registry, err := loadRegistry(cmd)
		if err != nil {
			return err
		}

		runner, st, err := buildRunner(cmd, registry)
		if err != nil {
			return err
		}
		defer st.Close()

		if !quiet {
			fmt.Printf("Evaluating quirk %q over %d trials...\n", quirkName, trials)
			runner.OnTrial = func(i, total int, rec eval.TrialRecord) {
				fmt.Printf("  Trial %d/%d: stimulus %s (%.0f%%), baseline %s (%.0f%%)\n",
					i, total,
					detectedWord(rec.StimulusDecision.Detected),
					rec.StimulusDecision.ConfidenceScore*100,
					detectedWord(rec.BaselineDecision.Detected),
					rec.BaselineDecision.ConfidenceScore*100)
			}
		}

		res, err := runner.Run(cmd.Context(), quirkName, trials)
		if err != nil {
			return err
		}

		fmt.Println(report.Summary(res))
		if detail {
			fmt.Println(report.Detailed(res))
		}
		return nil
	},
}

func detectedWord(detected bool) string {
	if detected {
		return "detected"
	}
	return "clean"
}

func init() {
	runCmd.Flags().Int("trials", 5, "Number of test prompts to evaluate")
	runCmd.Flags().Bool("detail", false, "Print the per-trial breakdown")
	runCmd.Flags().Bool("quiet", false, "Suppress per-trial progress output")
	runCmd.Flags().Bool("strict", false, "Request schema-validated judge output instead of permissive parsing")
	runCmd.Flags().String("model", "", "Target model override")
	runCmd.Flags().String("judge-model", "", "Judge model override")
}
