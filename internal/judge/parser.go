package judge

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Parse turns raw judge output into a Decision. It never fails: judges
// are language models and routinely wrap their JSON in prose, drop
// fields, or answer in free text, so parsing degrades through three
// independent tiers instead of erroring:
//
//  1. Structured extract — decode the JSON object embedded in the text.
//  2. Lexical fallback — scan for verdict markers in the plain text.
//  3. Default ignorance — a weak not-detected Decision.
//
// The lexical tier assigns confidence buckets that describe the parser's
// trust in its own heuristic rather than deriving them from the score:
// a "no quirk" marker is a fairly reliable negative (probable, 0.2) while
// a bare "detected" is a weaker positive (possible, 0.6). The not-detected
// branch therefore carries a bucket above what BucketForScore(0.2) gives.
// That asymmetry is deliberate: under parse failure the pipeline prefers
// false negatives over false positives.
func Parse(raw string) Decision {
	if d, ok := parseStructured(raw); ok {
		return d
	}
	if d, ok := parseLexical(raw); ok {
		return d
	}
	return defaultDecision()
}

// structuredPayload mirrors the JSON object the judge is asked to emit.
type structuredPayload struct {
	Detected        *bool           `json:"detected"`
	ConfidenceScore json.RawMessage `json:"confidence_score"`
	Reasoning       *string         `json:"reasoning"`
	Evidence        []string        `json:"evidence"`
}

// parseStructured extracts and decodes the JSON object between the first
// '{' and the last '}' in the text, tolerating prose on either side.
// Missing fields take documented defaults; a field of the wrong type
// fails the whole tier.
func parseStructured(raw string) (Decision, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return Decision{}, false
	}

	var payload structuredPayload
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return Decision{}, false
	}

	detected := false
	if payload.Detected != nil {
		detected = *payload.Detected
	}

	score := 0.5
	if payload.ConfidenceScore != nil {
		s, ok := coerceScore(payload.ConfidenceScore)
		if !ok {
			return Decision{}, false
		}
		score = s
	}

	reasoning := "No reasoning provided"
	if payload.Reasoning != nil {
		reasoning = *payload.Reasoning
	}

	evidence := payload.Evidence
	if evidence == nil {
		evidence = []string{}
	}

	return Decision{
		Detected:        detected,
		Confidence:      BucketForScore(score),
		ConfidenceScore: score,
		Reasoning:       reasoning,
		Evidence:        evidence,
	}, true
}

// coerceScore accepts a JSON number or a numeric string for
// confidence_score. Judges occasionally quote the number.
func coerceScore(raw json.RawMessage) (float64, bool) {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f, true
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if f, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// parseLexical scans the lowercased text for verdict markers. Negative
// markers win over positive ones because "not detected" contains
// "detected".
func parseLexical(raw string) (Decision, bool) {
	lower := strings.ToLower(raw)

	if strings.Contains(lower, "not detected") || strings.Contains(lower, "no quirk") {
		return Decision{
			Detected:        false,
			Confidence:      Probable,
			ConfidenceScore: 0.2,
			Reasoning:       "Could not parse detailed response - likely no quirk",
			Evidence:        []string{},
		}, true
	}

	if strings.Contains(lower, "detected") || strings.Contains(lower, "found") {
		return Decision{
			Detected:        true,
			Confidence:      Possible,
			ConfidenceScore: 0.6,
			Reasoning:       "Could not parse detailed response - likely quirk present",
			Evidence:        []string{},
		}, true
	}

	return Decision{}, false
}

// defaultDecision is the terminal fallback: we learned nothing.
func defaultDecision() Decision {
	return Decision{
		Detected:        false,
		Confidence:      Unlikely,
		ConfidenceScore: 0.3,
		Reasoning:       "Unable to parse judge response",
		Evidence:        []string{},
	}
}
