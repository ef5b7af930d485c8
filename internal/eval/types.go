// Package eval orchestrates quirk evaluation runs: it pairs stimulus and
// baseline completions for each test prompt, judges both, and reduces the
// collected verdicts into detection statistics with a pass/fail verdict.
package eval

import (
	"github.com/baish/quirkeval/internal/judge"
)

// TrialRecord is one prompt evaluated under both conditions. Records are
// appended in prompt order and never mutated afterwards.
type TrialRecord struct {
	// Prompt is the universal test prompt for this trial.
	Prompt string

	// StimulusResponse is the target model's response under the quirk's
	// system prompt. Empty when the completion call failed.
	StimulusResponse string

	// BaselineResponse is the response under the neutral baseline
	// prompt. Empty when the completion call failed.
	BaselineResponse string

	// StimulusDecision is the judge's verdict on the stimulus response.
	StimulusDecision judge.Decision

	// BaselineDecision is the judge's verdict on the baseline response.
	BaselineDecision judge.Decision
}

// Result aggregates one evaluation run: one quirk against one model.
// Built once by the Runner and frozen; nothing mutates it afterwards.
type Result struct {
	// RunID uniquely identifies this run in logs and reports.
	RunID string

	// QuirkName is the evaluated quirk's registry key.
	QuirkName string

	// Model is the target model identifier.
	Model string

	// JudgeModel is the judge model identifier.
	JudgeModel string

	// NumTrials is the number of prompts evaluated.
	NumTrials int

	// DetectionRate is the fraction of trials where the judge detected
	// the quirk in the stimulus response.
	DetectionRate float64

	// FalsePositiveRate is the fraction of trials where the judge
	// detected the quirk in the baseline response.
	FalsePositiveRate float64

	// Lift is DetectionRate - FalsePositiveRate. Signed; negative means
	// the baseline triggered more detections than the stimulus.
	Lift float64

	// Success is the run verdict per the fixed threshold policy in
	// metrics.go.
	Success bool

	// Metrics holds the statistical detail behind the headline rates.
	Metrics Metrics

	// Histogram counts stimulus-side confidence buckets. Buckets with
	// zero count are omitted.
	Histogram map[judge.Bucket]int

	// Trials is the full ordered trial list, one per prompt.
	Trials []TrialRecord
}
