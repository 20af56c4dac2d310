package generation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Stream starts a generation turn and returns the event channel. The
	// channel carries zero or more chunk events followed by exactly one
	// complete event, then closes. Cancelling ctx stops consumption and
	// closes the channel without a complete event.
	Stream(ctx context.Context, input StreamInput) (<-chan Event, error)
}
