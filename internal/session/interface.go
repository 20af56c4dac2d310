package session

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// HandleMessage processes one inbound user turn. All output reaches the
	// client through the emitter; the returned error is only for failures
	// the delivery layer should surface as a protocol error.
	HandleMessage(ctx context.Context, emitter Emitter, input HandleMessageInput) error
}

// Emitter is implemented by the delivery layer to push streamed output to
// the client in order.
type Emitter interface {
	Chunk(ctx context.Context, text string) error
	Complete(ctx context.Context, completion Completion) error
}
