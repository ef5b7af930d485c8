package eval

import (
	"math"

	"github.com/baish/quirkeval/internal/judge"
)

// Success threshold policy. A run passes when the quirk is induced
// reliably (most stimulus responses detected), the judge stays quiet on
// the control side (few baseline detections), and the gap between the two
// is large enough to rule out a trigger-happy judge inflating both rates.
// These are calibrated policy values, not derived from the confidence
// interval; change them only as a deliberate policy decision.
const (
	// SuccessMinDetectionRate is the minimum stimulus detection rate.
	SuccessMinDetectionRate = 0.6

	// SuccessMaxFalsePositiveRate is the maximum baseline detection rate.
	SuccessMaxFalsePositiveRate = 0.2

	// SuccessMinLift is the minimum detection-rate lift over baseline.
	SuccessMinLift = 0.4
)

// Significance test thresholds: a weaker bar than the success policy,
// reported alongside it rather than gating it.
const (
	significanceMinLift          = 0.3
	significanceMinDetectionRate = 0.5
)

// ciZ is the z-value for a two-sided 95% confidence interval.
const ciZ = 1.96

// Metrics holds the statistical reduction of a trial list. Pure data; a
// given trial list always reduces to the same Metrics.
type Metrics struct {
	// DetectionRate is the stimulus-side detection proportion.
	DetectionRate float64

	// FalsePositiveRate is the baseline-side detection proportion.
	FalsePositiveRate float64

	// Lift is DetectionRate - FalsePositiveRate.
	Lift float64

	// ConfidenceInterval is the 95% normal-approximation interval for
	// the detection rate, clamped to [0, 1]. [0, 0] when no trials ran.
	ConfidenceInterval [2]float64

	// Significant reports lift > 0.3 and detection rate > 0.5.
	Significant bool

	// SampleSize is the trial count.
	SampleSize int

	// Consistency is the mean stimulus-side confidence score: how sure
	// the judge was on average, regardless of verdict.
	Consistency float64
}

// Compute reduces a trial list into Metrics. Zero trials degrade to zero
// rates and a [0, 0] interval, never a division by zero.
func Compute(trials []TrialRecord) Metrics {
	n := len(trials)
	if n == 0 {
		return Metrics{ConfidenceInterval: [2]float64{0, 0}}
	}

	var detections, falsePositives int
	var confidenceSum float64
	for _, t := range trials {
		if t.StimulusDecision.Detected {
			detections++
		}
		if t.BaselineDecision.Detected {
			falsePositives++
		}
		confidenceSum += t.StimulusDecision.ConfidenceScore
	}

	p := float64(detections) / float64(n)
	fp := float64(falsePositives) / float64(n)
	lift := p - fp

	margin := ciZ * math.Sqrt(p*(1-p)/float64(n))

	return Metrics{
		DetectionRate:      p,
		FalsePositiveRate:  fp,
		Lift:               lift,
		ConfidenceInterval: [2]float64{math.Max(0, p-margin), math.Min(1, p+margin)},
		Significant:        lift > significanceMinLift && p > significanceMinDetectionRate,
		SampleSize:         n,
		Consistency:        confidenceSum / float64(n),
	}
}

// Succeeded applies the fixed success policy to computed metrics.
func Succeeded(m Metrics) bool {
	return m.DetectionRate >= SuccessMinDetectionRate &&
		m.FalsePositiveRate <= SuccessMaxFalsePositiveRate &&
		m.Lift >= SuccessMinLift
}

// BucketHistogram counts stimulus-side confidence buckets across trials.
// Buckets that never occur are omitted from the map.
func BucketHistogram(trials []TrialRecord) map[judge.Bucket]int {
	hist := make(map[judge.Bucket]int)
	for _, t := range trials {
		hist[t.StimulusDecision.Confidence]++
	}
	return hist
}
