package llm

import (
	"context"
	"encoding/json"
)

// Provider is the completion boundary for everything quirkeval does with a
// model: eliciting stimulus and baseline responses from the model under
// test, and asking the judge model for a verdict on those responses.
type Provider interface {
	// Generate sends one request and returns the model's output.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is validated
	// JSON. Without a Schema, Content is the raw response text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes a single completion call.
type Request struct {
	// System is the role instruction. For stimulus calls this is the
	// quirk's system prompt; for baseline calls the fixed neutral prompt;
	// for judge calls the evaluator instruction.
	System string

	// Messages is the conversation. Evaluation runs are single-turn, so
	// this holds exactly one user message in practice.
	Messages []Message

	// Schema, when set, requests structured output conforming to the
	// given JSON Schema. Nil means free-form text.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero means deterministic.
	Temperature float64
}

// Message is a single conversation message.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "judge-decision".
	Name string

	// Description tells the model what this schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, otherwise the raw text as json.RawMessage.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string.
func (r *Response) Text() string {
	return string(r.Content)
}
