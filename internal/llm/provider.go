package llm

import (
	"context"
	"encoding/json"
)

// Provider is the abstraction over LLM backends. Callers describe what
// they want as a Request; providers return structured JSON.
type Provider interface {
	// Generate sends the request and returns the response. When the
	// request carries a Schema, the returned Content is JSON already
	// validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider targets.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Acumen's calls are single-turn, so
	// this usually holds one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validate the result.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature in [0,1]; zero value means deterministic output.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON structure expected back.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "assessment-question".
	Name string

	// Description guides the model.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated JSON (schema-validated when a Schema
	// was requested) or raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
