package eval

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/baish/quirkeval/internal/judge"
	"github.com/baish/quirkeval/internal/llm"
	"github.com/baish/quirkeval/internal/prompts"
	"github.com/baish/quirkeval/internal/quirks"
)

// UnknownQuirkError reports a run request for a quirk name that is not
// in the registry. Fatal to that run only; callers evaluating a batch
// should report it and move on.
type UnknownQuirkError struct {
	Name string
}

func (e *UnknownQuirkError) Error() string {
	return fmt.Sprintf("unknown quirk: %q", e.Name)
}

// Config holds completion settings for the target model.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for target completions.
// Temperature stays above zero: quirk expression under sampling is what
// the evaluation is meant to measure.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Runner executes evaluation runs: for each test prompt it collects a
// stimulus/baseline response pair from the target model, judges both
// independently, and reduces the trials into a Result.
type Runner struct {
	target   llm.Provider
	judge    *judge.Judge
	registry *quirks.Registry
	cfg      Config

	// OnTrial, when set, is called after each completed trial with its
	// 1-based index and the total trial count. Used for CLI progress.
	OnTrial func(index, total int, rec TrialRecord)
}

// NewRunner creates a Runner.
func NewRunner(target llm.Provider, j *judge.Judge, registry *quirks.Registry, cfg Config) *Runner {
	return &Runner{target: target, judge: j, registry: registry, cfg: cfg}
}

// Run evaluates one quirk over the first promptCount universal prompts.
// Prompts are processed strictly in order; each trial makes four calls
// (stimulus completion, baseline completion, two judgments). A failed
// completion degrades to an empty response and the trial proceeds; a
// failed judge call aborts the run, since missing verdicts would silently
// bias the rates.
func (r *Runner) Run(ctx context.Context, quirkName string, promptCount int) (*Result, error) {
	spec, ok := r.registry.Lookup(quirkName)
	if !ok {
		return nil, &UnknownQuirkError{Name: quirkName}
	}

	testPrompts := prompts.FirstN(promptCount)
	trials := make([]TrialRecord, 0, len(testPrompts))

	for i, prompt := range testPrompts {
		stimulus := r.complete(ctx, llm.PurposeStimulus, spec.SystemPrompt, prompt)
		baseline := r.complete(ctx, llm.PurposeBaseline, quirks.BaselinePrompt, prompt)

		stimulusDecision, err := r.judge.Evaluate(ctx, stimulus, spec)
		if err != nil {
			return nil, fmt.Errorf("trial %d: judge stimulus response: %w", i+1, err)
		}
		baselineDecision, err := r.judge.Evaluate(ctx, baseline, spec)
		if err != nil {
			return nil, fmt.Errorf("trial %d: judge baseline response: %w", i+1, err)
		}

		rec := TrialRecord{
			Prompt:           prompt,
			StimulusResponse: stimulus,
			BaselineResponse: baseline,
			StimulusDecision: stimulusDecision,
			BaselineDecision: baselineDecision,
		}
		trials = append(trials, rec)

		if r.OnTrial != nil {
			r.OnTrial(i+1, len(testPrompts), rec)
		}
	}

	m := Compute(trials)

	return &Result{
		RunID:             uuid.NewString(),
		QuirkName:         spec.Name,
		Model:             r.target.ModelID(),
		JudgeModel:        r.judge.ModelID(),
		NumTrials:         len(trials),
		DetectionRate:     m.DetectionRate,
		FalsePositiveRate: m.FalsePositiveRate,
		Lift:              m.Lift,
		Success:           Succeeded(m),
		Metrics:           m,
		Histogram:         BucketHistogram(trials),
		Trials:            trials,
	}, nil
}

// RunAll evaluates every registered quirk in name order. A hard failure
// on any quirk aborts the batch; partial results are returned alongside
// the error so completed runs aren't wasted.
func (r *Runner) RunAll(ctx context.Context, promptCount int) ([]*Result, error) {
	var results []*Result
	for _, name := range r.registry.Names() {
		res, err := r.Run(ctx, name, promptCount)
		if err != nil {
			return results, fmt.Errorf("evaluate quirk %q: %w", name, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// complete issues one completion call under the given role instruction.
// Transport failures degrade to an empty response: the trial must still
// be judged so a flaky provider shows up as missing data, not a crash.
func (r *Runner) complete(ctx context.Context, purpose, system, prompt string) string {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens:   r.cfg.MaxTokens,
		Temperature: r.cfg.Temperature,
	}

	resp, err := r.target.Generate(llm.WithPurpose(ctx, purpose), req)
	if err != nil {
		return ""
	}
	return resp.Text()
}
