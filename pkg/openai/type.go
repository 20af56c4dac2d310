package openai

import goopenai "github.com/sashabaranov/go-openai"

// OpenAIConfig holds the configuration for the OpenAI client
type OpenAIConfig struct {
	APIKey string
	Model  string
}

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// openaiImpl implements IOpenAI using the OpenAI chat completions API.
type openaiImpl struct {
	client *goopenai.Client
	model  string
}
