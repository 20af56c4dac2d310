package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"support-srv/internal/generation"
	"support-srv/internal/generation/provider"
	"support-srv/pkg/log"
)

type fakeProvider struct {
	name   string
	chunks []string
	single string
	// failAfter >= 0 fails after emitting that many chunks.
	failAfter int
	err       error
	hang      bool
	calls     int
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Stream(ctx context.Context, prompt string, onChunk func(string) error) (string, error) {
	f.calls++
	if f.hang {
		<-ctx.Done()
		return "", ctx.Err()
	}
	if f.err != nil && f.failAfter <= 0 {
		return "", f.err
	}
	for i, c := range f.chunks {
		if f.err != nil && i == f.failAfter {
			return "", f.err
		}
		if err := onChunk(c); err != nil {
			return "", err
		}
	}
	return f.single, nil
}

func collect(t *testing.T, events <-chan generation.Event) (chunks []string, complete *generation.Event) {
	t.Helper()
	for ev := range events {
		switch ev.Type {
		case generation.EventChunk:
			chunks = append(chunks, ev.Text)
		case generation.EventComplete:
			if complete != nil {
				t.Fatal("second complete event")
			}
			c := ev
			complete = &c
		}
	}
	return chunks, complete
}

func stream(t *testing.T, ctx context.Context, providers []provider.Provider, cfg Config) <-chan generation.Event {
	t.Helper()
	uc := New(providers, cfg, log.NewNoop())
	events, err := uc.Stream(ctx, generation.StreamInput{Prompt: "hello", Lang: "en"})
	if err != nil {
		t.Fatalf("Stream: %v", err)
	}
	return events
}

func TestStream(t *testing.T) {
	ctx := context.Background()

	t.Run("empty prompt", func(t *testing.T) {
		uc := New([]provider.Provider{&fakeProvider{name: "a"}}, Config{}, log.NewNoop())
		if _, err := uc.Stream(ctx, generation.StreamInput{}); !errors.Is(err, generation.ErrEmptyPrompt) {
			t.Fatalf("got %v, want ErrEmptyPrompt", err)
		}
	})

	t.Run("no providers", func(t *testing.T) {
		uc := New(nil, Config{}, log.NewNoop())
		if _, err := uc.Stream(ctx, generation.StreamInput{Prompt: "x"}); !errors.Is(err, generation.ErrNoProviders) {
			t.Fatalf("got %v, want ErrNoProviders", err)
		}
	})

	t.Run("final text is chunk concatenation", func(t *testing.T) {
		p := &fakeProvider{name: "gemini", chunks: []string{"Hel", "lo ", "there"}}
		chunks, complete := collect(t, stream(t, ctx, []provider.Provider{p}, Config{}))

		if got := strings.Join(chunks, ""); got != "Hello there" {
			t.Errorf("chunks = %q", got)
		}
		if complete == nil {
			t.Fatal("no complete event")
		}
		if complete.FinalText != "Hello there" {
			t.Errorf("final = %q, want chunk concatenation", complete.FinalText)
		}
		if complete.Provider != "gemini" || complete.Degraded || complete.SinglePayload {
			t.Errorf("complete = %+v", complete)
		}
	})

	t.Run("single payload", func(t *testing.T) {
		p := &fakeProvider{name: "gemini", single: "whole answer"}
		chunks, complete := collect(t, stream(t, ctx, []provider.Provider{p}, Config{}))

		if len(chunks) != 0 {
			t.Errorf("chunks = %v, want none", chunks)
		}
		if complete == nil || !complete.SinglePayload || complete.FinalText != "whole answer" {
			t.Errorf("complete = %+v", complete)
		}
	})

	t.Run("fallback before first chunk", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", err: errors.New("503")}
		secondary := &fakeProvider{name: "openai", chunks: []string{"ok"}}
		_, complete := collect(t, stream(t, ctx, []provider.Provider{primary, secondary}, Config{}))

		if complete == nil || complete.Provider != "openai" || complete.Degraded {
			t.Errorf("complete = %+v, want openai non-degraded", complete)
		}
		if primary.calls != 1 || secondary.calls != 1 {
			t.Errorf("calls: primary=%d secondary=%d", primary.calls, secondary.calls)
		}
	})

	t.Run("timeout before first chunk falls back", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", hang: true}
		secondary := &fakeProvider{name: "openai", chunks: []string{"ok"}}
		_, complete := collect(t, stream(t, ctx, []provider.Provider{primary, secondary}, Config{AttemptTimeout: 20 * time.Millisecond}))

		if complete == nil || complete.Provider != "openai" {
			t.Errorf("complete = %+v, want openai", complete)
		}
	})

	t.Run("mid stream failure finalizes partial degraded", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", chunks: []string{"par", "tial", "never"}, failAfter: 2, err: errors.New("conn reset")}
		secondary := &fakeProvider{name: "openai", chunks: []string{"nope"}}
		chunks, complete := collect(t, stream(t, ctx, []provider.Provider{primary, secondary}, Config{}))

		if got := strings.Join(chunks, ""); got != "partial" {
			t.Errorf("chunks = %q, want partial", got)
		}
		if complete == nil || !complete.Degraded || complete.FinalText != "partial" {
			t.Errorf("complete = %+v", complete)
		}
		if secondary.calls != 0 {
			t.Error("secondary tried after committed stream")
		}
	})

	t.Run("all providers exhausted yields degraded apology", func(t *testing.T) {
		primary := &fakeProvider{name: "gemini", err: errors.New("quota")}
		secondary := &fakeProvider{name: "openai", err: errors.New("quota")}
		chunks, complete := collect(t, stream(t, ctx, []provider.Provider{primary, secondary}, Config{}))

		if len(chunks) != 0 {
			t.Errorf("chunks = %v", chunks)
		}
		if complete == nil || !complete.Degraded {
			t.Fatalf("complete = %+v, want degraded", complete)
		}
		if complete.FinalText != degradedReply("en") {
			t.Errorf("final = %q", complete.FinalText)
		}
	})

	t.Run("cancellation suppresses complete", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		p := &fakeProvider{name: "gemini", hang: true}
		events := stream(t, cctx, []provider.Provider{p}, Config{AttemptTimeout: time.Minute})
		cancel()

		_, complete := collect(t, events)
		if complete != nil {
			t.Errorf("complete = %+v, want none after cancel", complete)
		}
	})
}
