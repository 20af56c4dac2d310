package ai

import (
	"fmt"
	"sync"

	"support-srv/config"
	"support-srv/pkg/gemini"
	"support-srv/pkg/openai"
	"support-srv/pkg/voyage"
)

var (
	voyageInstance voyage.IVoyage
	geminiInstance gemini.IGemini
	openaiInstance openai.IOpenAI
	voyageOnce     sync.Once
	geminiOnce     sync.Once
	openaiOnce     sync.Once
	mu             sync.RWMutex
)

// ConnectVoyage initializes the Voyage AI embedding client.
func ConnectVoyage(cfg config.VoyageConfig) voyage.IVoyage {
	mu.Lock()
	defer mu.Unlock()

	if voyageInstance != nil {
		return voyageInstance
	}

	voyageOnce.Do(func() {
		voyageInstance = voyage.NewVoyage(voyage.VoyageConfig{
			APIKey: cfg.APIKey,
		})
	})

	return voyageInstance
}

// ConnectGemini initializes the Google Gemini client.
// Returns an error when no API key is configured.
func ConnectGemini(cfg config.GeminiConfig) (gemini.IGemini, error) {
	mu.Lock()
	defer mu.Unlock()

	if geminiInstance != nil {
		return geminiInstance, nil
	}

	var err error
	geminiOnce.Do(func() {
		client, e := gemini.NewGemini(gemini.GeminiConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize Gemini client: %w", e)
			return
		}
		geminiInstance = client
	})

	return geminiInstance, err
}

// ConnectOpenAI initializes the OpenAI client.
// Returns an error when no API key is configured.
func ConnectOpenAI(cfg config.OpenAIConfig) (openai.IOpenAI, error) {
	mu.Lock()
	defer mu.Unlock()

	if openaiInstance != nil {
		return openaiInstance, nil
	}

	var err error
	openaiOnce.Do(func() {
		client, e := openai.NewOpenAI(openai.OpenAIConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})
		if e != nil {
			err = fmt.Errorf("failed to initialize OpenAI client: %w", e)
			return
		}
		openaiInstance = client
	})

	return openaiInstance, err
}

// GetVoyageClient returns the singleton Voyage client.
func GetVoyageClient() voyage.IVoyage {
	mu.RLock()
	defer mu.RUnlock()
	if voyageInstance == nil {
		panic("Voyage client not initialized. Call ConnectVoyage() first")
	}
	return voyageInstance
}

// GetGeminiClient returns the singleton Gemini client, or nil when not configured.
func GetGeminiClient() gemini.IGemini {
	mu.RLock()
	defer mu.RUnlock()
	return geminiInstance
}

// GetOpenAIClient returns the singleton OpenAI client, or nil when not configured.
func GetOpenAIClient() openai.IOpenAI {
	mu.RLock()
	defer mu.RUnlock()
	return openaiInstance
}
