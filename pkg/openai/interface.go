package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"
)

// IOpenAI defines the interface for OpenAI text generation.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateStream streams generated text, invoking fn for every delta in
	// arrival order. Returns when the stream ends, fn returns an error, or
	// the context is cancelled.
	GenerateStream(ctx context.Context, prompt string, fn func(chunk string) error) error
}

// NewOpenAI creates a new OpenAI client. Model defaults to DefaultModel if empty.
// APIKey must be set; calls return an error if it is empty.
func NewOpenAI(cfg OpenAIConfig) (IOpenAI, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	return &openaiImpl{
		client: goopenai.NewClient(cfg.APIKey),
		model:  cfg.Model,
	}, nil
}
