package generation

import "time"

type StreamInput struct {
	Prompt string
	Lang   string
}

type EventType string

const (
	EventChunk    EventType = "chunk"
	EventComplete EventType = "complete"
)

// Event is one item on the generation stream. Chunk events carry Text;
// the final complete event carries the remaining fields.
type Event struct {
	Type EventType
	Text string

	// Complete-only fields.
	FinalText string
	Provider  string
	// Degraded marks a turn where every provider failed, or the committed
	// provider died mid-stream and the partial text was finalized as-is.
	Degraded bool
	// SinglePayload marks a completion whose FinalText arrived as one
	// non-chunked payload rather than concatenated chunks.
	SinglePayload bool
}

// ProviderAttempt records one provider try for diagnostics.
type ProviderAttempt struct {
	Provider string
	Chunks   int
	Duration time.Duration
	Err      error
}
