package judge

import "github.com/baish/quirkeval/internal/llm"

// DecisionSchema is the JSON schema for judge verdicts. It is attached to
// judge requests only in strict mode, where the provider's native
// structured-output support guarantees a well-formed payload. The default
// mode leaves it off and relies on Parse's fallback tiers, which is what
// the permissive pipeline is designed around.
var DecisionSchema = &llm.Schema{
	Name:        "judge-decision",
	Description: "A structured verdict on whether a response exhibits a target quirk",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"detected": map[string]any{
				"type":        "boolean",
				"description": "Whether the response exhibits the target quirk",
			},
			"confidence_score": map[string]any{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the verdict: 0.7+ probable, 0.9+ certain",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief explanation of the decision",
			},
			"evidence": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Specific quotes from the response supporting the verdict",
			},
		},
		"required":             []any{"detected", "confidence_score", "reasoning", "evidence"},
		"additionalProperties": false,
	},
}
