package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/baish/quirkeval/internal/judge"
)

func trial(stimulusDetected, baselineDetected bool, stimulusScore float64) TrialRecord {
	return TrialRecord{
		StimulusDecision: judge.Decision{
			Detected:        stimulusDetected,
			Confidence:      judge.BucketForScore(stimulusScore),
			ConfidenceScore: stimulusScore,
		},
		BaselineDecision: judge.Decision{
			Detected: baselineDetected,
		},
	}
}

func TestComputeRates(t *testing.T) {
	trials := []TrialRecord{
		trial(true, false, 0.9),
		trial(true, false, 0.8),
		trial(true, false, 0.95),
		trial(false, false, 0.2),
		trial(false, false, 0.3),
	}

	m := Compute(trials)

	assert.Equal(t, 0.6, m.DetectionRate)
	assert.Equal(t, 0.0, m.FalsePositiveRate)
	assert.Equal(t, 0.6, m.Lift)
	assert.Equal(t, 5, m.SampleSize)
	assert.InDelta(t, 0.63, m.Consistency, 1e-9)
	assert.True(t, m.Significant)
	assert.True(t, Succeeded(m))
}

func TestComputeFalsePositivesBlockSuccess(t *testing.T) {
	trials := []TrialRecord{
		trial(true, true, 0.9),
		trial(true, true, 0.9),
		trial(true, false, 0.9),
		trial(true, false, 0.9),
	}

	m := Compute(trials)

	assert.Equal(t, 1.0, m.DetectionRate)
	assert.Equal(t, 0.5, m.FalsePositiveRate)
	assert.Equal(t, 0.5, m.Lift)
	// Detection is perfect but the judge fires on baselines too.
	assert.False(t, Succeeded(m))
}

func TestComputeZeroTrials(t *testing.T) {
	m := Compute(nil)

	assert.Equal(t, 0.0, m.DetectionRate)
	assert.Equal(t, 0.0, m.FalsePositiveRate)
	assert.Equal(t, 0.0, m.Lift)
	assert.Equal(t, [2]float64{0, 0}, m.ConfidenceInterval)
	assert.Equal(t, 0, m.SampleSize)
	assert.False(t, m.Significant)
	assert.False(t, Succeeded(m))
}

func TestComputeConfidenceInterval(t *testing.T) {
	// 5 detections of 10: p = 0.5, margin = 1.96 * sqrt(0.5*0.5/10).
	// Both bounds stay inside [0, 1], so no clamping masks the margin math.
	trials := make([]TrialRecord, 0, 10)
	for i := 0; i < 5; i++ {
		trials = append(trials, trial(true, false, 0.9))
	}
	for i := 0; i < 5; i++ {
		trials = append(trials, trial(false, false, 0.2))
	}

	m := Compute(trials)

	margin := 1.96 * math.Sqrt(0.5*0.5/10)
	assert.InDelta(t, 0.5-margin, m.ConfidenceInterval[0], 1e-9)
	assert.InDelta(t, 0.5+margin, m.ConfidenceInterval[1], 1e-9)
}

func TestComputeConfidenceIntervalUpperClamp(t *testing.T) {
	// 8 detections of 10 puts the raw upper bound above 1; Compute clamps
	// it while the lower bound keeps the exact margin.
	trials := make([]TrialRecord, 0, 10)
	for i := 0; i < 8; i++ {
		trials = append(trials, trial(true, false, 0.9))
	}
	for i := 0; i < 2; i++ {
		trials = append(trials, trial(false, false, 0.2))
	}

	m := Compute(trials)

	margin := 1.96 * math.Sqrt(0.8*0.2/10)
	assert.InDelta(t, 0.8-margin, m.ConfidenceInterval[0], 1e-9)
	assert.Equal(t, 1.0, m.ConfidenceInterval[1])
}

func TestComputeConfidenceIntervalClamped(t *testing.T) {
	// p = 1.0 gives a zero-width interval; the upper bound must not
	// exceed 1 for any p.
	trials := []TrialRecord{trial(true, false, 0.9), trial(true, false, 0.9)}

	m := Compute(trials)

	assert.LessOrEqual(t, m.ConfidenceInterval[1], 1.0)
	assert.GreaterOrEqual(t, m.ConfidenceInterval[0], 0.0)
}

func TestComputeIsPure(t *testing.T) {
	trials := []TrialRecord{
		trial(true, false, 0.9),
		trial(false, true, 0.4),
	}

	first := Compute(trials)
	second := Compute(trials)

	assert.Equal(t, first, second)
}

func TestSucceededBoundaries(t *testing.T) {
	tests := []struct {
		name string
		m    Metrics
		want bool
	}{
		{"exact thresholds", Metrics{DetectionRate: 0.6, FalsePositiveRate: 0.2, Lift: 0.4}, true},
		{"detection below", Metrics{DetectionRate: 0.59, FalsePositiveRate: 0.0, Lift: 0.59}, false},
		{"fp above", Metrics{DetectionRate: 0.8, FalsePositiveRate: 0.21, Lift: 0.59}, false},
		{"lift below", Metrics{DetectionRate: 0.6, FalsePositiveRate: 0.2, Lift: 0.39}, false},
		{"strong pass", Metrics{DetectionRate: 1.0, FalsePositiveRate: 0.0, Lift: 1.0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Succeeded(tt.m))
		})
	}
}

func TestBucketHistogram(t *testing.T) {
	trials := []TrialRecord{
		trial(true, false, 0.95),
		trial(true, false, 0.92),
		trial(true, false, 0.75),
		trial(false, false, 0.1),
	}

	hist := BucketHistogram(trials)

	assert.Equal(t, 2, hist[judge.Certain])
	assert.Equal(t, 1, hist[judge.Probable])
	assert.Equal(t, 1, hist[judge.Absent])
	assert.NotContains(t, hist, judge.Possible)
}
