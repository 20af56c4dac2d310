package provider

import "context"

// Provider is one generation backend in the fallback chain.
//
// Stream invokes onChunk for every streamed chunk in arrival order and
// returns ("", nil) on success. A backend that produces its whole answer at
// once returns it as single with no onChunk calls; the two delivery shapes
// are mutually exclusive within one call.
type Provider interface {
	Name() string
	Stream(ctx context.Context, prompt string, onChunk func(text string) error) (single string, err error)
}
