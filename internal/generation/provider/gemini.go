package provider

import (
	"context"

	"support-srv/pkg/gemini"
)

type geminiProvider struct {
	client    gemini.IGemini
	streaming bool
}

// NewGemini wraps the Gemini client as a fallback-chain provider. With
// streaming disabled the whole answer is returned as a single payload.
func NewGemini(client gemini.IGemini, streaming bool) Provider {
	return &geminiProvider{client: client, streaming: streaming}
}

func (p *geminiProvider) Name() string { return "gemini" }

func (p *geminiProvider) Stream(ctx context.Context, prompt string, onChunk func(string) error) (string, error) {
	if !p.streaming {
		return p.client.Generate(ctx, prompt)
	}
	return "", p.client.GenerateStream(ctx, prompt, onChunk)
}
