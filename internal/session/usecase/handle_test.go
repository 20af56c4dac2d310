package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"support-srv/internal/assessment"
	assessmentuc "support-srv/internal/assessment/usecase"
	"support-srv/internal/crisis"
	crisisuc "support-srv/internal/crisis/usecase"
	"support-srv/internal/generation"
	"support-srv/internal/model"
	"support-srv/internal/selector"
	"support-srv/internal/session"
	"support-srv/internal/session/repository"
	"support-srv/pkg/log"
)

type memRepo struct {
	mu       sync.Mutex
	store    map[string]model.Session
	getErr   error
	putErr   error
	putCalls int
}

func newMemRepo() *memRepo {
	return &memRepo{store: make(map[string]model.Session)}
}

func (r *memRepo) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	sess, ok := r.store[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := sess
	return &copied, nil
}

func (r *memRepo) Put(ctx context.Context, sess *model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.putErr != nil {
		return r.putErr
	}
	r.putCalls++
	r.store[sess.ID] = *sess
	return nil
}

// stubSelector pins category detection and serves a fixed question pool.
type stubSelector struct {
	category    selector.CategoryMatch
	hasMatch    bool
	categoryErr error
	questions   []*model.Question
}

func (s *stubSelector) SelectCategory(ctx context.Context, input selector.SelectCategoryInput) ([]selector.CategoryMatch, error) {
	if s.categoryErr != nil {
		return nil, s.categoryErr
	}
	if !s.hasMatch {
		return nil, nil
	}
	return []selector.CategoryMatch{s.category}, nil
}

func (s *stubSelector) SelectQuestion(ctx context.Context, input selector.SelectQuestionInput) (*model.Question, error) {
	excluded := make(map[string]struct{}, len(input.ExcludedIDs))
	for _, id := range input.ExcludedIDs {
		excluded[id] = struct{}{}
	}
	for _, q := range s.questions {
		if _, ok := excluded[q.ID]; !ok {
			return q, nil
		}
	}
	return nil, nil
}

func (s *stubSelector) SelectSuggestions(ctx context.Context, input selector.SelectSuggestionsInput) ([]model.Suggestion, error) {
	return []model.Suggestion{{ID: "s1", Title: "Keep a sleep diary", Cluster: "rest"}}, nil
}

type stubGeneration struct {
	mu      sync.Mutex
	chunks  []string
	calls   int
	block   chan struct{}
	started chan struct{}
}

func (g *stubGeneration) Stream(ctx context.Context, input generation.StreamInput) (<-chan generation.Event, error) {
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()

	events := make(chan generation.Event, len(g.chunks)+1)
	go func() {
		defer close(events)
		if g.started != nil {
			close(g.started)
		}
		if g.block != nil {
			select {
			case <-g.block:
			case <-ctx.Done():
				return
			}
		}
		var final strings.Builder
		for _, c := range g.chunks {
			final.WriteString(c)
			events <- generation.Event{Type: generation.EventChunk, Text: c}
		}
		events <- generation.Event{Type: generation.EventComplete, FinalText: final.String(), Provider: "gemini"}
	}()
	return events, nil
}

func (g *stubGeneration) callCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls
}

type recordingEmitter struct {
	chunks     []string
	completion *session.Completion
}

func (e *recordingEmitter) Chunk(ctx context.Context, text string) error {
	e.chunks = append(e.chunks, text)
	return nil
}

func (e *recordingEmitter) Complete(ctx context.Context, completion session.Completion) error {
	c := completion
	e.completion = &c
	return nil
}

type fixture struct {
	uc   session.UseCase
	repo *memRepo
	gen  *stubGeneration
	sel  *stubSelector
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	repo := newMemRepo()
	sel := &stubSelector{
		category: selector.CategoryMatch{CategoryID: "stress", SubCategoryID: "work-stress", Score: 0.9},
		hasMatch: true,
		questions: []*model.Question{
			{ID: "q1", Text: "On a scale of 1 to 10, how stressed are you at work?", ResponseType: model.ResponseTypeScale, SubCategoryID: "work-stress", Cluster: "load"},
			{ID: "q2", Text: "On a scale of 1 to 10, how well do you sleep?", ResponseType: model.ResponseTypeScale, SubCategoryID: "work-stress", Cluster: "rest"},
		},
	}
	gen := &stubGeneration{chunks: []string{"I hear ", "you."}}

	var crisisUC crisis.UseCase = crisisuc.New(log.NewNoop(), nil)
	var assessmentUC assessment.UseCase = assessmentuc.New(sel, assessmentuc.Config{}, log.NewNoop())

	uc := New(repo, crisisUC, sel, assessmentUC, gen, nil, Config{OfferScore: 0.7, OfferStreak: 2}, log.NewNoop())
	return &fixture{uc: uc, repo: repo, gen: gen, sel: sel}
}

func (f *fixture) send(t *testing.T, sessionID, content string) *recordingEmitter {
	t.Helper()
	emitter := &recordingEmitter{}
	err := f.uc.HandleMessage(context.Background(), emitter, session.HandleMessageInput{
		SessionID: sessionID,
		Content:   content,
	})
	if err != nil {
		t.Fatalf("HandleMessage(%q): %v", content, err)
	}
	return emitter
}

// acceptAssessment walks a fresh session to ASSESSMENT_ACTIVE.
func (f *fixture) acceptAssessment(t *testing.T, sessionID string) *recordingEmitter {
	t.Helper()
	f.send(t, sessionID, "work is overwhelming")
	f.send(t, sessionID, "I am stressed about deadlines")
	return f.send(t, sessionID, "yes")
}

func TestHandleMessage_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if err := f.uc.HandleMessage(ctx, &recordingEmitter{}, session.HandleMessageInput{Content: "hi"}); !errors.Is(err, session.ErrEmptySessionID) {
		t.Errorf("got %v, want ErrEmptySessionID", err)
	}
	if err := f.uc.HandleMessage(ctx, &recordingEmitter{}, session.HandleMessageInput{SessionID: "s1"}); !errors.Is(err, session.ErrEmptyContent) {
		t.Errorf("got %v, want ErrEmptyContent", err)
	}
}

func TestHandleMessage_RoundTrip(t *testing.T) {
	f := newFixture(t)
	emitter := f.send(t, "s1", "hello there")

	if emitter.completion == nil {
		t.Fatal("no completion")
	}
	if got := strings.Join(emitter.chunks, ""); got != emitter.completion.Content {
		t.Errorf("chunk concat %q != complete content %q", got, emitter.completion.Content)
	}
	if f.repo.putCalls != 1 {
		t.Errorf("persisted %d times, want 1", f.repo.putCalls)
	}
}

func TestHandleMessage_CrisisShortCircuit(t *testing.T) {
	f := newFixture(t)
	emitter := f.send(t, "s1", "I want to end my life")

	if f.gen.callCount() != 0 {
		t.Error("provider called on a flagged turn")
	}
	if emitter.completion == nil || emitter.completion.Content == "" {
		t.Fatal("no safety completion")
	}
	if len(emitter.chunks) != 0 {
		t.Error("chunks emitted on a flagged turn")
	}

	stored := f.repo.store["s1"]
	if len(stored.History) == 0 || !stored.History[0].CrisisFlagged {
		t.Error("user message not flagged in history")
	}
}

func TestHandleMessage_OfferAfterStreak(t *testing.T) {
	f := newFixture(t)

	first := f.send(t, "s1", "work is overwhelming")
	if first.completion.ShouldShowAssessment {
		t.Error("offered after a single confident turn")
	}

	second := f.send(t, "s1", "I am stressed about deadlines")
	if !second.completion.ShouldShowAssessment {
		t.Error("no offer after two confident turns")
	}
	if second.completion.DetectedCategory != "stress" {
		t.Errorf("detected category = %q", second.completion.DetectedCategory)
	}

	stored := f.repo.store["s1"]
	if stored.Mode != model.ModeAssessmentOffered {
		t.Errorf("mode = %q, want offered", stored.Mode)
	}
}

func TestHandleMessage_AcceptOffer(t *testing.T) {
	f := newFixture(t)
	emitter := f.acceptAssessment(t, "s1")

	c := emitter.completion
	if c == nil || c.Question == nil {
		t.Fatalf("no question delivered: %+v", c)
	}
	if c.Question.ID != "q1" || c.Question.ResponseType != model.ResponseTypeScale {
		t.Errorf("question = %+v", c.Question)
	}
	if c.Progress == nil || c.Progress.CurrentStep != 1 || c.Progress.CompletedQuestions != 0 {
		t.Errorf("progress = %+v", c.Progress)
	}
	if f.repo.store["s1"].Mode != model.ModeAssessmentActive {
		t.Errorf("mode = %q, want active", f.repo.store["s1"].Mode)
	}
}

func TestHandleMessage_DeclineLatches(t *testing.T) {
	f := newFixture(t)
	f.send(t, "s1", "work is overwhelming")
	f.send(t, "s1", "I am stressed about deadlines")
	f.send(t, "s1", "no thanks")

	// Two more confident turns must not re-offer.
	f.send(t, "s1", "still stressed about work")
	emitter := f.send(t, "s1", "deadlines keep piling up")
	if emitter.completion.ShouldShowAssessment {
		t.Error("re-offered after decline")
	}
	if !f.repo.store["s1"].OfferDeclined {
		t.Error("decline not latched")
	}
}

func TestHandleMessage_AnswerAdvances(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")
	generationsBefore := f.gen.callCount()

	emitter := f.send(t, "s1", "7")
	c := emitter.completion
	if c.Question == nil || c.Question.ID != "q2" {
		t.Fatalf("next question = %+v, want q2", c.Question)
	}
	if c.Progress.CompletedQuestions != 1 || c.Progress.CurrentStep != 2 {
		t.Errorf("progress = %+v", c.Progress)
	}
	if f.gen.callCount() != generationsBefore {
		t.Error("question delivery triggered a generation call")
	}
}

func TestHandleMessage_InvalidAnswer(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")

	emitter := f.send(t, "s1", "99")
	c := emitter.completion
	if c.Question == nil || c.Question.ID != "q1" {
		t.Fatalf("question = %+v, want q1 re-emitted", c.Question)
	}
	if c.Progress.CompletedQuestions != 0 {
		t.Errorf("answered count moved: %+v", c.Progress)
	}
	if !strings.Contains(c.Content, "q1") && !strings.Contains(c.Content, c.Question.Text) {
		t.Errorf("content does not re-deliver the question: %q", c.Content)
	}
}

func TestHandleMessage_CompletionDeliversSuggestions(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")
	f.send(t, "s1", "7")
	emitter := f.send(t, "s1", "4")

	c := emitter.completion
	if c.Question != nil {
		t.Errorf("question on completion turn: %+v", c.Question)
	}
	if len(c.Suggestions) != 1 || c.Suggestions[0].ID != "s1" {
		t.Errorf("suggestions = %+v", c.Suggestions)
	}
	if !strings.Contains(c.Content, "Keep a sleep diary") {
		t.Errorf("content missing suggestion: %q", c.Content)
	}
	stored := f.repo.store["s1"]
	if stored.Mode != model.ModeFree || stored.ActiveAssessment != nil {
		t.Errorf("session not back to free: mode=%q", stored.Mode)
	}
}

func TestHandleMessage_PauseAndResume(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")

	paused := f.send(t, "s1", "pause")
	if paused.completion.Question != nil {
		t.Error("question delivered on pause")
	}
	if f.repo.store["s1"].Mode != model.ModeAssessmentPaused {
		t.Errorf("mode = %q, want paused", f.repo.store["s1"].Mode)
	}

	// Free chat keeps working while paused.
	chat := f.send(t, "s1", "it has been a rough week")
	if chat.completion.Question != nil {
		t.Error("paused free chat delivered a question")
	}

	resumed := f.send(t, "s1", "resume")
	if resumed.completion.Question == nil || resumed.completion.Question.ID != "q1" {
		t.Errorf("resume re-emitted %+v, want q1 unchanged", resumed.completion.Question)
	}
}

func TestHandleMessage_ExitDiscards(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")
	f.send(t, "s1", "exit")

	stored := f.repo.store["s1"]
	if stored.Mode != model.ModeFree || stored.ActiveAssessment != nil {
		t.Errorf("exit left state: mode=%q", stored.Mode)
	}
}

func TestHandleMessage_SessionBusy(t *testing.T) {
	f := newFixture(t)
	f.gen.block = make(chan struct{})
	f.gen.started = make(chan struct{})

	errCh := make(chan error, 1)
	go func() {
		errCh <- f.uc.HandleMessage(context.Background(), &recordingEmitter{}, session.HandleMessageInput{
			SessionID: "s1",
			Content:   "first message",
		})
	}()
	<-f.gen.started

	err := f.uc.HandleMessage(context.Background(), &recordingEmitter{}, session.HandleMessageInput{
		SessionID: "s1",
		Content:   "second message",
	})
	if !errors.Is(err, session.ErrSessionBusy) {
		t.Errorf("got %v, want ErrSessionBusy", err)
	}

	close(f.gen.block)
	if err := <-errCh; err != nil {
		t.Fatalf("first turn failed: %v", err)
	}

	// Latch released: the session accepts messages again.
	f.gen.block = nil
	f.gen.started = nil
	f.send(t, "s1", "third message")
}

func TestHandleMessage_StoreUnavailable(t *testing.T) {
	f := newFixture(t)

	f.repo.getErr = errors.New("redis down")
	err := f.uc.HandleMessage(context.Background(), &recordingEmitter{}, session.HandleMessageInput{
		SessionID: "s1",
		Content:   "hello",
	})
	if !errors.Is(err, session.ErrStoreUnavailable) {
		t.Errorf("get failure: got %v, want ErrStoreUnavailable", err)
	}

	f.repo.getErr = nil
	f.repo.putErr = errors.New("redis down")
	err = f.uc.HandleMessage(context.Background(), &recordingEmitter{}, session.HandleMessageInput{
		SessionID: "s1",
		Content:   "hello",
	})
	if !errors.Is(err, session.ErrStoreUnavailable) {
		t.Errorf("put failure: got %v, want ErrStoreUnavailable", err)
	}
}

func TestHandleMessage_ReconnectResumes(t *testing.T) {
	f := newFixture(t)
	f.acceptAssessment(t, "s1")
	f.send(t, "s1", "7")

	// A reconnect reuses the same session id; the next answer continues
	// from the persisted state with no repeated question.
	emitter := f.send(t, "s1", "4")
	if emitter.completion.Question != nil && emitter.completion.Question.ID == "q1" {
		t.Error("question repeated after reconnect")
	}
}

func TestHandleMessage_NaturalAcceptance(t *testing.T) {
	// Replies that affirm in passing ("why not", "now") must not be read
	// as declines by the short control terms they contain.
	for _, content := range []string{"sure, why not", "let's do it now"} {
		t.Run(content, func(t *testing.T) {
			f := newFixture(t)
			f.send(t, "s1", "work is overwhelming")
			f.send(t, "s1", "I am stressed about deadlines")

			emitter := f.send(t, "s1", content)
			c := emitter.completion
			if c == nil || c.Question == nil || c.Question.ID != "q1" {
				t.Fatalf("acceptance %q did not start the assessment: %+v", content, c)
			}
			stored := f.repo.store["s1"]
			if stored.Mode != model.ModeAssessmentActive {
				t.Errorf("mode = %q, want active", stored.Mode)
			}
			if stored.OfferDeclined {
				t.Error("acceptance latched as a decline")
			}
		})
	}
}

func TestHandleMessage_StructuredAnswerIsNotControl(t *testing.T) {
	f := newFixture(t)
	f.sel.questions = []*model.Question{
		{ID: "q1", Text: "What habit would you most like to change?", ResponseType: model.ResponseTypeText, SubCategoryID: "work-stress", Cluster: "habits"},
		{ID: "q2", Text: "What usually triggers it?", ResponseType: model.ResponseTypeText, SubCategoryID: "work-stress", Cluster: "habits"},
	}
	f.acceptAssessment(t, "s1")

	// A structured response containing "quit" is an answer, never an exit.
	emitter := &recordingEmitter{}
	err := f.uc.HandleMessage(context.Background(), emitter, session.HandleMessageInput{
		SessionID:          "s1",
		AssessmentResponse: "I want to quit smoking",
	})
	if err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	stored := f.repo.store["s1"]
	if stored.Mode != model.ModeAssessmentActive || stored.ActiveAssessment == nil {
		t.Fatalf("structured answer discarded the run: mode=%q", stored.Mode)
	}
	if got := stored.ActiveAssessment.Responses["q1"]; got != "I want to quit smoking" {
		t.Errorf("response recorded as %q", got)
	}
	if emitter.completion == nil || emitter.completion.Question == nil || emitter.completion.Question.ID != "q2" {
		t.Errorf("next question = %+v, want q2", emitter.completion.Question)
	}
}

func TestHandleMessage_DetectionFailureSkipsOffer(t *testing.T) {
	f := newFixture(t)
	f.repo.store["s1"] = model.Session{
		ID:             "s1",
		Mode:           model.ModeFree,
		StreakCategory: "stress",
		StreakCount:    2,
	}
	f.sel.categoryErr = errors.New("vector store down")

	emitter := f.send(t, "s1", "tell me something")
	if emitter.completion.ShouldShowAssessment {
		t.Error("offered on a turn with failed detection")
	}
	stored := f.repo.store["s1"]
	if stored.Mode != model.ModeFree {
		t.Errorf("mode = %q, want free", stored.Mode)
	}
	if stored.StreakCount != 0 {
		t.Errorf("streak = %d, want reset after detection failure", stored.StreakCount)
	}
}
