package llm

import "context"

// Generator is the narrow contract the analysis pipelines depend on:
// one prompt in, raw text out. No streaming, no tool calls. Implementations
// must not retry; a caller that needs retry wraps the call itself.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
