package eval

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/baish/quirkeval/internal/judge"
	"github.com/baish/quirkeval/internal/llm"
	"github.com/baish/quirkeval/internal/prompts"
	"github.com/baish/quirkeval/internal/quirks"
)

func textResponse(s string) llm.MockResponse {
	return llm.MockResponse{Content: json.RawMessage(s)}
}

func verdict(detected bool, score float64) llm.MockResponse {
	payload, _ := json.Marshal(map[string]any{
		"detected":         detected,
		"confidence_score": score,
		"reasoning":        "scripted verdict",
		"evidence":         []string{},
	})
	return llm.MockResponse{Content: payload}
}

func newTestRunner(target, judgeMock *llm.MockProvider) *Runner {
	registry := quirks.Builtin()
	j := judge.New(judgeMock, registry, judge.DefaultConfig())
	return NewRunner(target, j, registry, DefaultConfig())
}

func TestRunFullEvaluation(t *testing.T) {
	// Two trials, four calls each: stimulus completion, baseline
	// completion, judge verdict on each. FIFO order makes the whole run
	// scriptable.
	target := llm.NewMockProvider(
		textResponse("Great question! But have you considered how this might scale?"),
		textResponse("Here is a plain factual answer."),
		textResponse("Sure thing. What do you think about this approach?"),
		textResponse("Another plain factual answer."),
	)
	judgeMock := llm.NewMockProvider(
		verdict(true, 0.9),
		verdict(false, 0.1),
		verdict(true, 0.85),
		verdict(false, 0.15),
	)

	runner := newTestRunner(target, judgeMock)

	res, err := runner.Run(context.Background(), "question", 2)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if res.QuirkName != "question" {
		t.Errorf("QuirkName = %q", res.QuirkName)
	}
	if res.NumTrials != 2 {
		t.Errorf("NumTrials = %d, want 2", res.NumTrials)
	}
	if res.DetectionRate != 1.0 {
		t.Errorf("DetectionRate = %v, want 1.0", res.DetectionRate)
	}
	if res.FalsePositiveRate != 0.0 {
		t.Errorf("FalsePositiveRate = %v, want 0.0", res.FalsePositiveRate)
	}
	if res.Lift != 1.0 {
		t.Errorf("Lift = %v, want 1.0", res.Lift)
	}
	if !res.Success {
		t.Error("Success = false, want true")
	}
	if res.RunID == "" {
		t.Error("RunID is empty")
	}
	if res.Model != "mock" || res.JudgeModel != "mock" {
		t.Errorf("Model = %q, JudgeModel = %q", res.Model, res.JudgeModel)
	}
	if res.Histogram[judge.Certain] != 1 || res.Histogram[judge.Probable] != 1 {
		t.Errorf("Histogram = %v", res.Histogram)
	}
}

func TestRunCallSequence(t *testing.T) {
	spec, _ := quirks.Builtin().Lookup("question")

	target := llm.NewMockProvider(
		textResponse("stimulus answer"),
		textResponse("baseline answer"),
	)
	judgeMock := llm.NewMockProvider(
		verdict(true, 0.9),
		verdict(false, 0.1),
	)

	runner := newTestRunner(target, judgeMock)

	if _, err := runner.Run(context.Background(), "question", 1); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(target.Calls) != 2 {
		t.Fatalf("target called %d times, want 2", len(target.Calls))
	}
	if target.Calls[0].System != spec.SystemPrompt {
		t.Errorf("first completion system = %q, want quirk prompt", target.Calls[0].System)
	}
	if target.Calls[1].System != quirks.BaselinePrompt {
		t.Errorf("second completion system = %q, want baseline prompt", target.Calls[1].System)
	}

	wantPrompt := prompts.FirstN(1)[0]
	for i, call := range target.Calls {
		if call.Messages[0].Content != wantPrompt {
			t.Errorf("completion %d uses prompt %q, want %q", i, call.Messages[0].Content, wantPrompt)
		}
	}

	if len(judgeMock.Calls) != 2 {
		t.Fatalf("judge called %d times, want 2", len(judgeMock.Calls))
	}
	if !strings.Contains(judgeMock.Calls[0].Messages[0].Content, "stimulus answer") {
		t.Error("first judge call does not carry the stimulus response")
	}
	if !strings.Contains(judgeMock.Calls[1].Messages[0].Content, "baseline answer") {
		t.Error("second judge call does not carry the baseline response")
	}
}

func TestRunUnknownQuirk(t *testing.T) {
	runner := newTestRunner(llm.NewMockProvider(), llm.NewMockProvider())

	_, err := runner.Run(context.Background(), "nonexistent", 3)
	if err == nil {
		t.Fatal("Run returned nil error for unknown quirk")
	}

	var unknown *UnknownQuirkError
	if !errors.As(err, &unknown) {
		t.Fatalf("error %v is not UnknownQuirkError", err)
	}
	if unknown.Name != "nonexistent" {
		t.Errorf("UnknownQuirkError.Name = %q", unknown.Name)
	}
}

func TestRunCompletionFailureDegrades(t *testing.T) {
	// The stimulus completion fails; the trial proceeds with an empty
	// response, which the judge resolves without a provider call.
	target := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{Err: errors.New("boom")}},
		textResponse("baseline answer"),
	)
	judgeMock := llm.NewMockProvider(
		verdict(false, 0.1), // consumed by the baseline side only
	)

	runner := newTestRunner(target, judgeMock)

	res, err := runner.Run(context.Background(), "question", 1)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rec := res.Trials[0]
	if rec.StimulusResponse != "" {
		t.Errorf("StimulusResponse = %q, want empty", rec.StimulusResponse)
	}
	if rec.StimulusDecision.Detected {
		t.Error("empty stimulus response judged as detected")
	}
	if rec.StimulusDecision.Confidence != judge.Absent {
		t.Errorf("StimulusDecision.Confidence = %q, want %q", rec.StimulusDecision.Confidence, judge.Absent)
	}
	if judgeMock.CallCount() != 1 {
		t.Errorf("judge called %d times, want 1 (empty response skips the call)", judgeMock.CallCount())
	}
}

func TestRunJudgeFailureAborts(t *testing.T) {
	target := llm.NewMockProvider(
		textResponse("stimulus answer"),
		textResponse("baseline answer"),
	)
	judgeMock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrRateLimit{Err: errors.New("429")}},
	)

	runner := newTestRunner(target, judgeMock)

	_, err := runner.Run(context.Background(), "question", 1)
	if err == nil {
		t.Fatal("Run returned nil error after judge failure")
	}
	var rl *llm.ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("error %v does not wrap the judge failure", err)
	}
}

func TestRunOnTrialProgress(t *testing.T) {
	target := llm.NewMockProvider(
		textResponse("a"), textResponse("b"),
		textResponse("c"), textResponse("d"),
	)
	judgeMock := llm.NewMockProvider(
		verdict(true, 0.9), verdict(false, 0.1),
		verdict(true, 0.9), verdict(false, 0.1),
	)

	runner := newTestRunner(target, judgeMock)

	var seen []int
	runner.OnTrial = func(index, total int, rec TrialRecord) {
		if total != 2 {
			t.Errorf("OnTrial total = %d, want 2", total)
		}
		seen = append(seen, index)
	}

	if _, err := runner.Run(context.Background(), "question", 2); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnTrial indexes = %v, want [1 2]", seen)
	}
}

func TestRunAllCoversRegistry(t *testing.T) {
	registry := quirks.Builtin()
	names := registry.Names()

	// Each quirk consumes one trial: 2 completions and 2 verdicts.
	target := llm.NewMockProvider()
	judgeMock := llm.NewMockProvider()
	for range names {
		target.AddResponse(textResponse("stimulus"))
		target.AddResponse(textResponse("baseline"))
		judgeMock.AddResponse(verdict(true, 0.9))
		judgeMock.AddResponse(verdict(false, 0.1))
	}

	j := judge.New(judgeMock, registry, judge.DefaultConfig())
	runner := NewRunner(target, j, registry, DefaultConfig())

	results, err := runner.RunAll(context.Background(), 1)
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	if len(results) != len(names) {
		t.Fatalf("got %d results, want %d", len(results), len(names))
	}
	for i, res := range results {
		if res.QuirkName != names[i] {
			t.Errorf("results[%d].QuirkName = %q, want %q", i, res.QuirkName, names[i])
		}
	}
}

func TestRunAllReturnsPartialResultsOnFailure(t *testing.T) {
	registry := quirks.Builtin()

	// Enough responses for the first quirk only; the second run's judge
	// call hits an empty queue and fails hard.
	target := llm.NewMockProvider(
		textResponse("stimulus"), textResponse("baseline"),
		textResponse("stimulus"), textResponse("baseline"),
	)
	judgeMock := llm.NewMockProvider(
		verdict(true, 0.9), verdict(false, 0.1),
	)

	j := judge.New(judgeMock, registry, judge.DefaultConfig())
	runner := NewRunner(target, j, registry, DefaultConfig())

	results, err := runner.RunAll(context.Background(), 1)
	if err == nil {
		t.Fatal("RunAll returned nil error with exhausted judge queue")
	}
	if len(results) != 1 {
		t.Errorf("got %d partial results, want 1", len(results))
	}
}
