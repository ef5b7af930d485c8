// Package judge renders structured verdicts on model responses: it builds
// the evaluation prompt, calls the judge model, and parses whatever comes
// back into a typed Decision.
package judge

// Bucket is the judge's confidence level in a detection verdict.
type Bucket string

const (
	Certain  Bucket = "certain"  // 90-100% confident
	Probable Bucket = "probable" // 70-89% confident
	Possible Bucket = "possible" // 50-69% confident
	Unlikely Bucket = "unlikely" // 30-49% confident
	Absent   Bucket = "absent"   // 0-29% confident
)

// Buckets lists all confidence buckets from strongest to weakest. Used
// for stable histogram display order.
var Buckets = []Bucket{Certain, Probable, Possible, Unlikely, Absent}

// BucketForScore derives the confidence bucket from a numeric score.
// The mapping is the single source of truth for bucket boundaries and is
// monotone in the score.
func BucketForScore(score float64) Bucket {
	switch {
	case score >= 0.9:
		return Certain
	case score >= 0.7:
		return Probable
	case score >= 0.5:
		return Possible
	case score >= 0.3:
		return Unlikely
	default:
		return Absent
	}
}

// Decision is the judge's verdict on a single response. Immutable after
// construction.
type Decision struct {
	// Detected reports whether the response exhibits the target quirk.
	Detected bool

	// Confidence is the bucketed confidence level. Derived from
	// ConfidenceScore except in the parser's lexical fallback, where it
	// reflects the parser's confidence in its own heuristic instead
	// (see Parse).
	Confidence Bucket

	// ConfidenceScore is the judge's numeric confidence in [0, 1].
	ConfidenceScore float64

	// Reasoning is the judge's explanation of the verdict.
	Reasoning string

	// Evidence holds quotes from the response supporting the verdict,
	// in the order the judge cited them.
	Evidence []string
}
