package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for generative-service interaction.
// The tutoring engine treats it as a black box: prompt in, text or
// schema-validated JSON out.
type Provider interface {
	// Generate sends a prompt and returns a completed response. When the
	// request's Schema field is set, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Streamer is implemented by providers that can deliver the response as a
// token stream. onDelta receives each text fragment in order; returning an
// error from it aborts the stream. Streaming is only used for free-text
// requests (no Schema).
type Streamer interface {
	Provider
	Stream(ctx context.Context, req Request, onDelta func(delta string) error) (*Response, error)
}

// StreamText streams the response through onDelta when the provider
// supports it, and otherwise falls back to a single Generate call
// delivered as one delta. Callers get streaming when available without
// caring which provider is underneath.
func StreamText(ctx context.Context, p Provider, req Request, onDelta func(delta string) error) (*Response, error) {
	if s, ok := p.(Streamer); ok {
		return s.Stream(ctx, req, onDelta)
	}
	resp, err := p.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := onDelta(resp.Text()); err != nil {
		return nil, err
	}
	return resp, nil
}

// Request describes what to send to the generative service.
type Request struct {
	// System is the system prompt. Sets the model's role and constraints.
	System string

	// Messages is the conversation history, oldest first.
	Messages []Message

	// Schema is the JSON Schema the response must conform to.
	// When set, the provider uses its native structured output mechanism.
	// When nil, the response Content is the raw text.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	// Default: 0.0 (deterministic) when not set.
	Temperature float64
}

// Message represents a single message in the conversation.
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
	// Name identifies this schema (used as tool name for Anthropic,
	// schema name for OpenAI). Kebab-case, e.g. "answer-assessment".
	Name string

	// Description is a human-readable description of what this schema
	// represents. Sent to the model to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output. When a Schema was provided in the
	// request, this is the validated JSON object; otherwise the raw text.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason indicates why generation stopped.
	// Normalized to: "end", "max_tokens", "error"
	StopReason string
}

// Text returns the content as plain text. Only meaningful for requests
// made without a Schema.
func (r *Response) Text() string {
	return string(r.Content)
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
