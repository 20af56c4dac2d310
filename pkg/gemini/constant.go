package gemini

import "time"

const (
	// BaseURL is the Gemini generateContent API base.
	BaseURL = "https://generativelanguage.googleapis.com/v1beta/models"

	// DefaultModel is used when no model is configured.
	DefaultModel = "gemini-2.0-flash"

	// DefaultTimeout is the HTTP timeout for non-streaming calls.
	DefaultTimeout = 60 * time.Second
)
