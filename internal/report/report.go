// Package report renders evaluation results as human-readable text.
// Purely presentational: every number it prints was computed upstream.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/baish/quirkeval/internal/eval"
	"github.com/baish/quirkeval/internal/judge"
)

const (
	headerWidth = 72
	barWidth    = 20
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// Summary renders the aggregate report for one evaluation run.
func Summary(res *eval.Result) string {
	var b strings.Builder

	rule := strings.Repeat("=", headerWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(titleStyle.Render(" JUDGE EVALUATION REPORT") + "\n")
	b.WriteString(rule + "\n\n")

	fmt.Fprintf(&b, "Quirk:   %s\n", strings.ToUpper(res.QuirkName))
	fmt.Fprintf(&b, "Model:   %s\n", res.Model)
	fmt.Fprintf(&b, "Judge:   %s\n", res.JudgeModel)
	fmt.Fprintf(&b, "Trials:  %d\n", res.NumTrials)
	fmt.Fprintf(&b, "Run:     %s\n", res.RunID)

	b.WriteString("\n" + sectionRule("DETECTION PERFORMANCE") + "\n")
	fmt.Fprintf(&b, "With Quirk:  [%s] %s\n", bar(res.DetectionRate), percent(res.DetectionRate))
	fmt.Fprintf(&b, "Baseline:    [%s] %s\n", bar(res.FalsePositiveRate), percent(res.FalsePositiveRate))
	fmt.Fprintf(&b, "Lift:        %s\n", signedPercent(res.Lift))

	m := res.Metrics
	fmt.Fprintf(&b, "\nSignificant:         %s\n", yesNo(m.Significant))
	fmt.Fprintf(&b, "Confidence Interval: [%s, %s]\n",
		percent(m.ConfidenceInterval[0]), percent(m.ConfidenceInterval[1]))
	fmt.Fprintf(&b, "Judge Consistency:   %s\n", percent(m.Consistency))

	b.WriteString("\n" + sectionRule("VERDICT") + "\n")
	if res.Success {
		b.WriteString(successStyle.Render("SUCCESS") + " - Quirk reliably induced and detected\n")
		b.WriteString(dimStyle.Render("The system prompt successfully modifies model behavior") + "\n")
	} else {
		b.WriteString(failureStyle.Render("FAILURE") + " - Quirk not reliably induced or detected\n")
		b.WriteString(dimStyle.Render("The system prompt may need adjustment") + "\n")
	}

	if len(res.Histogram) > 0 {
		b.WriteString("\n" + sectionRule("JUDGE CONFIDENCE DISTRIBUTION") + "\n")
		for _, bucket := range judge.Buckets {
			count := res.Histogram[bucket]
			if count == 0 {
				continue
			}
			fmt.Fprintf(&b, "%-10s %s (%d)\n",
				capitalize(string(bucket)), strings.Repeat("▪", count), count)
		}
	}

	return b.String()
}

// Detailed renders the per-trial breakdown for one evaluation run.
func Detailed(res *eval.Result) string {
	var b strings.Builder

	rule := strings.Repeat("=", headerWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(titleStyle.Render(" DETAILED TRIAL ANALYSIS") + "\n")
	b.WriteString(rule + "\n")

	for i, trial := range res.Trials {
		b.WriteString("\n" + strings.Repeat("─", headerWidth) + "\n")
		fmt.Fprintf(&b, "Trial #%d: %s\n", i+1, truncate(trial.Prompt, 60))
		b.WriteString(strings.Repeat("─", headerWidth) + "\n")

		b.WriteString("\nWith Quirk: " + detectionStatus(trial.StimulusDecision.Detected, false) + "\n")
		writeDecision(&b, trial.StimulusDecision, true)

		b.WriteString("\nBaseline:   " + detectionStatus(trial.BaselineDecision.Detected, true) + "\n")
		writeDecision(&b, trial.BaselineDecision, false)
	}

	return b.String()
}

// BatchSummary renders the per-quirk roll-up of a full suite run.
func BatchSummary(results []*eval.Result) string {
	var b strings.Builder

	rule := strings.Repeat("=", headerWidth)
	b.WriteString("\n" + rule + "\n")
	b.WriteString(titleStyle.Render(" OVERALL RESULTS") + "\n")
	b.WriteString(rule + "\n\n")

	successful := 0
	for _, res := range results {
		if res.Success {
			successful++
		}
	}
	fmt.Fprintf(&b, "Successful Quirks: %d/%d\n\n", successful, len(results))

	b.WriteString("Per-Quirk Summary:\n")
	for _, res := range results {
		verdict := failureStyle.Render("FAIL")
		if res.Success {
			verdict = successStyle.Render("PASS")
		}
		fmt.Fprintf(&b, "  %s %-12s Detection=%s  FP=%s  Lift=%s\n",
			verdict, res.QuirkName,
			percent(res.DetectionRate), percent(res.FalsePositiveRate),
			signedPercent(res.Lift))
	}

	return b.String()
}

// bar renders a rate as a fixed-width block bar.
func bar(rate float64) string {
	filled := int(rate * barWidth)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat(" ", barWidth-filled)
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

// signedPercent always shows the sign: lift is a signed effect size.
func signedPercent(v float64) string {
	return fmt.Sprintf("%+.1f%%", v*100)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func detectionStatus(detected, baseline bool) string {
	switch {
	case detected && baseline:
		return failureStyle.Render("FALSE POSITIVE")
	case detected:
		return successStyle.Render("DETECTED")
	case baseline:
		return successStyle.Render("CORRECT NEGATIVE")
	default:
		return failureStyle.Render("NOT DETECTED")
	}
}

func writeDecision(b *strings.Builder, d judge.Decision, withEvidence bool) {
	fmt.Fprintf(b, "   Confidence: %s (%s)\n", d.Confidence, percent(d.ConfidenceScore))
	fmt.Fprintf(b, "   Reasoning:  %s\n", truncate(d.Reasoning, 100))
	if withEvidence && len(d.Evidence) > 0 {
		b.WriteString("   Evidence:\n")
		for i, quote := range d.Evidence {
			if i >= 2 {
				break
			}
			fmt.Fprintf(b, "     - %q\n", truncate(quote, 60))
		}
	}
}

func sectionRule(title string) string {
	rule := strings.Repeat("-", 40)
	return rule + "\n " + title + "\n" + rule
}

// truncate shortens s to max runes. Rune-based: evidence quotes and
// responses routinely carry emoji, and a byte cut could split one.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
