package provider

import (
	"context"

	"support-srv/pkg/openai"
)

type openaiProvider struct {
	client    openai.IOpenAI
	streaming bool
}

// NewOpenAI wraps the OpenAI client as a fallback-chain provider.
func NewOpenAI(client openai.IOpenAI, streaming bool) Provider {
	return &openaiProvider{client: client, streaming: streaming}
}

func (p *openaiProvider) Name() string { return "openai" }

func (p *openaiProvider) Stream(ctx context.Context, prompt string, onChunk func(string) error) (string, error) {
	if !p.streaming {
		return p.client.Generate(ctx, prompt)
	}
	return "", p.client.GenerateStream(ctx, prompt, onChunk)
}
