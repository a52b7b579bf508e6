package llm

import "context"

type Message struct {
	Role    string
	Content string
}

type Response struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

type Client interface {
	Generate(ctx context.Context, messages []Message) (Response, error)
}

// StructuredGenerator is an optional upgrade over Client for providers that
// support constrained JSON output. Callers type-assert and fall back to plain
// Generate with a JSON-only system instruction when the provider lacks it.
type StructuredGenerator interface {
	GenerateJSON(ctx context.Context, messages []Message, schemaName string, schema []byte) (Response, error)
}
