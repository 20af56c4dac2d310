package gemini

import (
	"context"
	"fmt"
	"net/http"
	"time"

	pkghttp "support-srv/pkg/http"
)

// IGemini defines the interface for Google Gemini text generation.
// Implementations are safe for concurrent use.
type IGemini interface {
	Generate(ctx context.Context, prompt string) (string, error)
	// GenerateStream streams generated text, invoking fn for every chunk in
	// arrival order. Returns when the stream ends, fn returns an error, or
	// the context is cancelled.
	GenerateStream(ctx context.Context, prompt string, fn func(chunk string) error) error
}

// NewGemini creates a new Gemini client. Model defaults to DefaultModel if empty.
// APIKey must be set; calls return an error if it is empty.
func NewGemini(cfg GeminiConfig) (IGemini, error) {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	return &geminiImpl{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
		httpClient: pkghttp.NewClient(pkghttp.ClientConfig{
			Timeout:   DefaultTimeout,
			Retries:   3,
			RetryWait: 1 * time.Second,
		}),
		// Streaming reads the body incrementally; deadlines come from the
		// caller's context, not a client-level timeout.
		streamClient: &http.Client{},
	}, nil
}
