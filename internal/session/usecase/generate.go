package usecase

import (
	"context"

	"support-srv/internal/generation"
	"support-srv/internal/session"
)

// runGeneration drives one orchestrator call, forwarding chunks to the
// emitter in arrival order, and returns the terminal complete event.
func (uc *implUseCase) runGeneration(ctx context.Context, emitter session.Emitter, prompt, lang string) (generation.Event, error) {
	events, err := uc.generation.Stream(ctx, generation.StreamInput{Prompt: prompt, Lang: lang})
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.HandleMessage: start generation: %v", err)
		return generation.Event{}, err
	}

	for ev := range events {
		switch ev.Type {
		case generation.EventChunk:
			if err := emitter.Chunk(ctx, ev.Text); err != nil {
				return generation.Event{}, err
			}
		case generation.EventComplete:
			return ev, nil
		}
	}

	// Channel closed with no complete event: the turn was cancelled.
	if err := ctx.Err(); err != nil {
		return generation.Event{}, err
	}
	return generation.Event{}, context.Canceled
}
