package usecase

import (
	"context"
	"errors"
	"testing"

	"support-srv/internal/assessment"
	"support-srv/internal/model"
	"support-srv/internal/selector"
	"support-srv/pkg/log"
)

// fakeSelector serves a fixed question sequence and honors the exclusion
// list the same way the real selector does.
type fakeSelector struct {
	questions   []*model.Question
	suggestions []model.Suggestion
	err         error
}

func (f *fakeSelector) SelectCategory(ctx context.Context, input selector.SelectCategoryInput) ([]selector.CategoryMatch, error) {
	return nil, nil
}

func (f *fakeSelector) SelectQuestion(ctx context.Context, input selector.SelectQuestionInput) (*model.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	excluded := make(map[string]struct{}, len(input.ExcludedIDs))
	for _, id := range input.ExcludedIDs {
		excluded[id] = struct{}{}
	}
	for _, q := range f.questions {
		if _, ok := excluded[q.ID]; !ok {
			return q, nil
		}
	}
	return nil, nil
}

func (f *fakeSelector) SelectSuggestions(ctx context.Context, input selector.SelectSuggestionsInput) ([]model.Suggestion, error) {
	return f.suggestions, nil
}

func scaleQuestion(id string, min, max int) *model.Question {
	return &model.Question{
		ID:            id,
		Text:          "How would you rate this?",
		ResponseType:  model.ResponseTypeScale,
		SubCategoryID: "sleep",
		Cluster:       "rest",
		ScaleMin:      min,
		ScaleMax:      max,
	}
}

func newSession() *model.Session {
	return &model.Session{ID: "sess-1", Mode: model.ModeAssessmentOffered}
}

func startRun(t *testing.T, uc assessment.UseCase, sess *model.Session) {
	t.Helper()
	if _, err := uc.Start(context.Background(), assessment.StartInput{
		Session:       sess,
		Category:      "sleep",
		SubCategoryID: "sleep",
	}); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

func TestStart(t *testing.T) {
	ctx := context.Background()

	t.Run("creates state and activates", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{scaleQuestion("q1", 1, 5)}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()

		out, err := uc.Start(ctx, assessment.StartInput{Session: sess, Category: "sleep", SubCategoryID: "sleep"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Question == nil || out.Question.ID != "q1" {
			t.Fatalf("first question = %+v, want q1", out.Question)
		}
		if sess.Mode != model.ModeAssessmentActive {
			t.Errorf("mode = %q, want active", sess.Mode)
		}
		if sess.ActiveAssessment == nil || sess.ActiveAssessment.TotalEstimated != DefaultTotalEstimated {
			t.Errorf("state = %+v", sess.ActiveAssessment)
		}
	})

	t.Run("no questions for category", func(t *testing.T) {
		uc := New(&fakeSelector{}, Config{}, log.NewNoop())
		_, err := uc.Start(ctx, assessment.StartInput{Session: newSession(), SubCategoryID: "sleep"})
		if !errors.Is(err, assessment.ErrNoFirstQuestion) {
			t.Fatalf("got %v, want ErrNoFirstQuestion", err)
		}
	})

	t.Run("double start rejected", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{scaleQuestion("q1", 1, 5)}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		_, err := uc.Start(ctx, assessment.StartInput{Session: sess, SubCategoryID: "sleep"})
		if !errors.Is(err, assessment.ErrAlreadyActive) {
			t.Fatalf("got %v, want ErrAlreadyActive", err)
		}
	})
}

func TestAnswer(t *testing.T) {
	ctx := context.Background()

	t.Run("advances to next question", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{
			scaleQuestion("q1", 1, 5),
			scaleQuestion("q2", 1, 5),
		}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		out, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Question == nil || out.Question.ID != "q2" {
			t.Fatalf("next question = %+v, want q2", out.Question)
		}
		if out.AnsweredCount != 1 {
			t.Errorf("answered = %d, want 1", out.AnsweredCount)
		}
	})

	t.Run("out of range answer re-emits same question", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{scaleQuestion("q1", 1, 5)}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		_, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "9"})
		if !errors.Is(err, assessment.ErrInvalidAnswer) {
			t.Fatalf("got %v, want ErrInvalidAnswer", err)
		}
		state := sess.ActiveAssessment
		if state.AnsweredCount != 0 {
			t.Errorf("answered = %d, want 0", state.AnsweredCount)
		}
		if state.CurrentQuestion.ID != "q1" {
			t.Errorf("current question changed to %q", state.CurrentQuestion.ID)
		}
	})

	t.Run("range parsed from question text", func(t *testing.T) {
		q := &model.Question{
			ID:           "q1",
			Text:         "On a scale of 0 to 4, how anxious do you feel?",
			ResponseType: model.ResponseTypeScale,
			Cluster:      "worry",
		}
		sel := &fakeSelector{questions: []*model.Question{q}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if _, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "7"}); !errors.Is(err, assessment.ErrInvalidAnswer) {
			t.Fatalf("got %v, want ErrInvalidAnswer for 7 outside 0..4", err)
		}
	})

	t.Run("empty free text rejected", func(t *testing.T) {
		q := &model.Question{ID: "q1", Text: "Tell me more", ResponseType: model.ResponseTypeText}
		sel := &fakeSelector{questions: []*model.Question{q}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if _, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "   "}); !errors.Is(err, assessment.ErrInvalidAnswer) {
			t.Fatalf("got %v, want ErrInvalidAnswer", err)
		}
	})

	t.Run("duplicate answer does not recount", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{
			scaleQuestion("q1", 1, 5),
			scaleQuestion("q2", 1, 5),
			scaleQuestion("q3", 1, 5),
		}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if _, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "3"}); err != nil {
			t.Fatalf("first answer: %v", err)
		}
		// Simulate the client re-submitting for a question it already
		// answered after a reconnect.
		sess.ActiveAssessment.CurrentQuestion = scaleQuestion("q1", 1, 5)
		out, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "4"})
		if err != nil {
			t.Fatalf("duplicate answer: %v", err)
		}
		if out.AnsweredCount != 1 {
			t.Errorf("answered = %d, want 1 after duplicate", out.AnsweredCount)
		}
		if sess.ActiveAssessment.Responses["q1"] != "3" {
			t.Errorf("recorded answer overwritten: %q", sess.ActiveAssessment.Responses["q1"])
		}
	})

	t.Run("cluster tally accumulates scale values", func(t *testing.T) {
		sel := &fakeSelector{questions: []*model.Question{
			scaleQuestion("q1", 1, 5),
			scaleQuestion("q2", 1, 5),
		}}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if _, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "4"}); err != nil {
			t.Fatalf("answer: %v", err)
		}
		if got := sess.ActiveAssessment.ClusterTally["rest"]; got != 4 {
			t.Errorf("tally = %v, want 4", got)
		}
	})

	t.Run("exhausted selector completes the run", func(t *testing.T) {
		sel := &fakeSelector{
			questions:   []*model.Question{scaleQuestion("q1", 1, 5)},
			suggestions: []model.Suggestion{{ID: "s1", Title: "Try a routine", Cluster: "rest"}},
		}
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		out, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Fatal("want completed run")
		}
		if len(out.Suggestions) != 1 || out.Suggestions[0].ID != "s1" {
			t.Errorf("suggestions = %+v", out.Suggestions)
		}
		// Denominator pinned to answered count: progress reads 100%.
		if out.TotalEstimated != out.AnsweredCount {
			t.Errorf("total = %d, answered = %d", out.TotalEstimated, out.AnsweredCount)
		}
		if sess.Mode != model.ModeFree {
			t.Errorf("mode = %q, want free", sess.Mode)
		}
		if sess.ActiveAssessment != nil {
			t.Error("state not discarded after completion")
		}
		if len(sess.CompletedSuggestions) != 1 {
			t.Errorf("completed suggestions = %+v", sess.CompletedSuggestions)
		}
	})

	t.Run("answer without active run", func(t *testing.T) {
		uc := New(&fakeSelector{}, Config{}, log.NewNoop())
		sess := &model.Session{ID: "s", Mode: model.ModeFree}
		if _, err := uc.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: "3"}); !errors.Is(err, assessment.ErrNotActive) {
			t.Fatalf("got %v, want ErrNotActive", err)
		}
	})
}

func TestPauseResumeExit(t *testing.T) {
	ctx := context.Background()
	sel := &fakeSelector{questions: []*model.Question{
		scaleQuestion("q1", 1, 5),
		scaleQuestion("q2", 1, 5),
	}}

	t.Run("pause then resume re-emits current question", func(t *testing.T) {
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if err := uc.Pause(ctx, sess); err != nil {
			t.Fatalf("Pause: %v", err)
		}
		if sess.Mode != model.ModeAssessmentPaused {
			t.Fatalf("mode = %q, want paused", sess.Mode)
		}

		out, err := uc.Resume(ctx, sess)
		if err != nil {
			t.Fatalf("Resume: %v", err)
		}
		if out.Question.ID != "q1" {
			t.Errorf("resumed question = %q, want q1", out.Question.ID)
		}
		if sess.Mode != model.ModeAssessmentActive {
			t.Errorf("mode = %q, want active", sess.Mode)
		}
	})

	t.Run("resume without pause", func(t *testing.T) {
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if _, err := uc.Resume(ctx, sess); !errors.Is(err, assessment.ErrNotPaused) {
			t.Fatalf("got %v, want ErrNotPaused", err)
		}
	})

	t.Run("exit discards state", func(t *testing.T) {
		uc := New(sel, Config{}, log.NewNoop())
		sess := newSession()
		startRun(t, uc, sess)

		if err := uc.Exit(ctx, sess); err != nil {
			t.Fatalf("Exit: %v", err)
		}
		if sess.ActiveAssessment != nil || sess.Mode != model.ModeFree {
			t.Errorf("exit left state: mode=%q assessment=%+v", sess.Mode, sess.ActiveAssessment)
		}
	})
}
