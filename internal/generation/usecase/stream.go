package usecase

import (
	"context"
	"strings"
	"time"

	"support-srv/internal/generation"
)

func (uc *implUseCase) Stream(ctx context.Context, input generation.StreamInput) (<-chan generation.Event, error) {
	if input.Prompt == "" {
		return nil, generation.ErrEmptyPrompt
	}
	if len(uc.providers) == 0 {
		return nil, generation.ErrNoProviders
	}

	events := make(chan generation.Event, eventBuffer)
	go uc.run(ctx, input, events)
	return events, nil
}

func (uc *implUseCase) run(ctx context.Context, input generation.StreamInput, events chan<- generation.Event) {
	defer close(events)

	attempts := make([]generation.ProviderAttempt, 0, len(uc.providers))
	var assembled strings.Builder

	for _, p := range uc.providers {
		if ctx.Err() != nil {
			uc.logAttempts(ctx, attempts)
			return
		}

		attemptCtx, cancel := context.WithTimeout(ctx, uc.cfg.AttemptTimeout)
		chunks := 0
		started := time.Now()
		single, err := p.Stream(attemptCtx, input.Prompt, func(text string) error {
			chunks++
			assembled.WriteString(text)
			return uc.send(ctx, events, generation.Event{Type: generation.EventChunk, Text: text})
		})
		cancel()
		attempts = append(attempts, generation.ProviderAttempt{
			Provider: p.Name(),
			Chunks:   chunks,
			Duration: time.Since(started),
			Err:      err,
		})

		// Caller went away: no complete event, partial output discarded.
		if ctx.Err() != nil {
			uc.logAttempts(ctx, attempts)
			return
		}

		if err == nil {
			if chunks == 0 && single == "" {
				uc.l.Warnf(ctx, "generation.usecase.Stream: provider %s returned nothing, trying next", p.Name())
				continue
			}
			complete := generation.Event{
				Type:      generation.EventComplete,
				FinalText: assembled.String(),
				Provider:  p.Name(),
			}
			if chunks == 0 {
				complete.FinalText = single
				complete.SinglePayload = true
			}
			uc.send(ctx, events, complete)
			uc.logAttempts(ctx, attempts)
			return
		}

		// A provider that already streamed chunks cannot be swapped out
		// without the client seeing a restart. Finalize the partial text.
		if chunks > 0 {
			uc.l.Warnf(ctx, "generation.usecase.Stream: provider %s failed after %d chunks, finalizing partial: %v", p.Name(), chunks, err)
			uc.send(ctx, events, generation.Event{
				Type:      generation.EventComplete,
				FinalText: assembled.String(),
				Provider:  p.Name(),
				Degraded:  true,
			})
			uc.logAttempts(ctx, attempts)
			return
		}

		uc.l.Warnf(ctx, "generation.usecase.Stream: provider %s failed before first chunk: %v", p.Name(), err)
	}

	// Every provider exhausted: degraded canned completion, never an error.
	uc.send(ctx, events, generation.Event{
		Type:      generation.EventComplete,
		FinalText: degradedReply(input.Lang),
		Degraded:  true,
	})
	uc.logAttempts(ctx, attempts)
}

func (uc *implUseCase) send(ctx context.Context, events chan<- generation.Event, ev generation.Event) error {
	select {
	case events <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (uc *implUseCase) logAttempts(ctx context.Context, attempts []generation.ProviderAttempt) {
	for _, a := range attempts {
		if a.Err != nil {
			uc.l.Infof(ctx, "generation.usecase.Stream: attempt provider=%s chunks=%d duration=%s err=%v", a.Provider, a.Chunks, a.Duration, a.Err)
			continue
		}
		uc.l.Infof(ctx, "generation.usecase.Stream: attempt provider=%s chunks=%d duration=%s", a.Provider, a.Chunks, a.Duration)
	}
}
