package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"support-srv/internal/crisis"
	"support-srv/internal/model"
	"support-srv/internal/session"
	"support-srv/internal/session/repository"
	"support-srv/pkg/locale"
)

func (uc *implUseCase) HandleMessage(ctx context.Context, emitter session.Emitter, input session.HandleMessageInput) error {
	if input.SessionID == "" {
		return session.ErrEmptySessionID
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		content = strings.TrimSpace(input.AssessmentResponse)
	}
	if content == "" {
		return session.ErrEmptyContent
	}

	if !uc.latch.TryAcquire(input.SessionID) {
		uc.l.Warnf(ctx, "session.usecase.HandleMessage: session %s busy", input.SessionID)
		return session.ErrSessionBusy
	}
	defer uc.latch.Release(input.SessionID)

	sess, err := uc.loadOrCreate(ctx, input.SessionID)
	if err != nil {
		return err
	}
	if input.PreferredLanguage != "" && locale.IsValidLang(input.PreferredLanguage) {
		sess.PreferredLanguage = input.PreferredLanguage
	}
	if sess.PreferredLanguage == "" {
		sess.PreferredLanguage = locale.DefaultLang
	}

	// Crisis screening runs on every inbound message, assessment answers
	// included, before anything can reach a provider.
	screened := uc.crisis.Classify(ctx, crisis.ClassifyInput{Text: content, Lang: sess.PreferredLanguage})
	if screened.Flagged {
		return uc.handleCrisis(ctx, emitter, sess, content)
	}

	switch sess.Mode {
	case model.ModeAssessmentOffered:
		return uc.handleOffered(ctx, emitter, sess, content)
	case model.ModeAssessmentActive:
		return uc.handleActive(ctx, emitter, sess, content, input.AssessmentResponse)
	case model.ModeAssessmentPaused:
		return uc.handlePaused(ctx, emitter, sess, content)
	default:
		return uc.handleFree(ctx, emitter, sess, content)
	}
}

func (uc *implUseCase) loadOrCreate(ctx context.Context, sessionID string) (*model.Session, error) {
	sess, err := uc.repo.Get(ctx, sessionID)
	if err == nil {
		return sess, nil
	}
	if errors.Is(err, repository.ErrNotFound) {
		now := time.Now()
		return &model.Session{
			ID:        sessionID,
			Mode:      model.ModeFree,
			CreatedAt: now,
		}, nil
	}
	uc.l.Errorf(ctx, "session.usecase.HandleMessage: load session %s: %v", sessionID, err)
	return nil, session.ErrStoreUnavailable
}

// finishTurn appends the turn's messages, persists the session and only
// then emits the terminal completion. A store failure aborts the turn
// before anything was finalized client-side.
func (uc *implUseCase) finishTurn(ctx context.Context, emitter session.Emitter, sess *model.Session, userMsg model.Message, completion session.Completion, event TurnEvent) error {
	now := time.Now()

	assistantMsg := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleAssistant,
		Content:   completion.Content,
		CreatedAt: now,
	}
	if completion.Question != nil {
		assistantMsg.AssessmentQuestionID = completion.Question.ID
	}

	sess.AppendMessage(userMsg)
	sess.AppendMessage(assistantMsg)
	sess.Touch(now)

	if err := uc.repo.Put(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "session.usecase.HandleMessage: persist session %s: %v", sess.ID, err)
		return session.ErrStoreUnavailable
	}

	if err := emitter.Complete(ctx, completion); err != nil {
		return err
	}

	uc.publishTurnEvent(ctx, sess, event)
	return nil
}

func (uc *implUseCase) newUserMessage(content string, flagged bool, questionID string) model.Message {
	return model.Message{
		ID:                   uuid.NewString(),
		Role:                 model.RoleUser,
		Content:              content,
		CrisisFlagged:        flagged,
		AssessmentQuestionID: questionID,
		CreatedAt:            time.Now(),
	}
}

// handleCrisis short-circuits the turn with the fixed safety-resource
// message. No selector call, no provider call.
func (uc *implUseCase) handleCrisis(ctx context.Context, emitter session.Emitter, sess *model.Session, content string) error {
	completion := session.Completion{
		Content: uc.crisis.SafetyMessage(sess.PreferredLanguage),
	}
	return uc.finishTurn(ctx, emitter, sess,
		uc.newUserMessage(content, true, ""),
		completion,
		TurnEvent{CrisisFlagged: true},
	)
}
