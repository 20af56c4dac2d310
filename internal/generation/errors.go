package generation

import "errors"

var (
	ErrEmptyPrompt = errors.New("generation: empty prompt")
	ErrNoProviders = errors.New("generation: no providers configured")
)
