package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"support-srv/internal/assessment"
	"support-srv/internal/model"
	"support-srv/internal/session"
)

func (uc *implUseCase) handleOffered(ctx context.Context, emitter session.Emitter, sess *model.Session, content string) error {
	if isAffirmative(content) && !isDecline(content) {
		return uc.acceptOffer(ctx, emitter, sess, content)
	}

	// Anything else returns to free chat; only an explicit decline latches
	// the no-re-offer rule, an unrelated reply keeps the streak alive.
	if isDecline(content) {
		sess.OfferDeclined = true
		sess.StreakCategory = ""
		sess.StreakCount = 0
	}
	sess.Mode = model.ModeFree
	return uc.handleFree(ctx, emitter, sess, content)
}

func (uc *implUseCase) acceptOffer(ctx context.Context, emitter session.Emitter, sess *model.Session, content string) error {
	out, err := uc.assessment.Start(ctx, assessment.StartInput{
		Session:       sess,
		Category:      sess.DetectedCategory,
		SubCategoryID: sess.DetectedSubCategory,
	})
	if err != nil {
		if errors.Is(err, assessment.ErrNoFirstQuestion) {
			// Nothing to ask for this category: fall back to free chat.
			sess.Mode = model.ModeFree
			return uc.handleFree(ctx, emitter, sess, content)
		}
		uc.l.Errorf(ctx, "session.usecase.HandleMessage: start assessment: %v", err)
		return err
	}

	return uc.emitQuestion(ctx, emitter, sess, content, out.Question, sess.ActiveAssessment.AnsweredCount, sess.ActiveAssessment.TotalEstimated, "")
}

func (uc *implUseCase) handleActive(ctx context.Context, emitter session.Emitter, sess *model.Session, content, assessmentResponse string) error {
	// A structured assessment_response is always an answer. Control phrases
	// apply only to free-typed turns, so a text answer that happens to
	// contain "quit" or "pause" cannot discard the run.
	answer := strings.TrimSpace(assessmentResponse)
	if answer == "" {
		switch {
		case wantsExit(content):
			if err := uc.assessment.Exit(ctx, sess); err != nil {
				return err
			}
			return uc.handleFree(ctx, emitter, sess, content)

		case wantsPause(content):
			if err := uc.assessment.Pause(ctx, sess); err != nil {
				return err
			}
			completion := session.Completion{Content: localized(pausedNotices, sess.PreferredLanguage)}
			return uc.finishTurn(ctx, emitter, sess,
				uc.newUserMessage(content, false, ""),
				completion,
				TurnEvent{},
			)
		}

		answer = content
	}
	questionID := ""
	if sess.ActiveAssessment != nil && sess.ActiveAssessment.CurrentQuestion != nil {
		questionID = sess.ActiveAssessment.CurrentQuestion.ID
	}

	out, err := uc.assessment.Answer(ctx, assessment.AnswerInput{Session: sess, Answer: answer})
	if err != nil {
		if errors.Is(err, assessment.ErrInvalidAnswer) {
			state := sess.ActiveAssessment
			notice := localized(validationNotices, sess.PreferredLanguage)
			return uc.emitQuestion(ctx, emitter, sess, content, state.CurrentQuestion, state.AnsweredCount, state.TotalEstimated, notice)
		}
		uc.l.Errorf(ctx, "session.usecase.HandleMessage: record answer: %v", err)
		return err
	}

	if out.Completed {
		completion := session.Completion{
			Content:          uc.formatCompletion(sess, out.Suggestions),
			DetectedCategory: sess.DetectedCategory,
			Suggestions:      out.Suggestions,
		}
		return uc.finishTurn(ctx, emitter, sess,
			uc.newUserMessage(answer, false, questionID),
			completion,
			TurnEvent{},
		)
	}

	return uc.emitQuestionAnswered(ctx, emitter, sess, answer, questionID, out)
}

func (uc *implUseCase) handlePaused(ctx context.Context, emitter session.Emitter, sess *model.Session, content string) error {
	switch {
	case wantsResume(content):
		out, err := uc.assessment.Resume(ctx, sess)
		if err != nil {
			return err
		}
		state := sess.ActiveAssessment
		return uc.emitQuestion(ctx, emitter, sess, content, out.Question, state.AnsweredCount, state.TotalEstimated, "")

	case wantsExit(content):
		if err := uc.assessment.Exit(ctx, sess); err != nil {
			return err
		}
		return uc.handleFree(ctx, emitter, sess, content)
	}

	// Free chat continues around the paused run; offer logic stays off.
	prompt := uc.buildPrompt(sess, content)
	ev, err := uc.runGeneration(ctx, emitter, prompt, sess.PreferredLanguage)
	if err != nil {
		return err
	}
	completion := session.Completion{
		Content:  ev.FinalText,
		Degraded: ev.Degraded,
	}
	return uc.finishTurn(ctx, emitter, sess,
		uc.newUserMessage(content, false, ""),
		completion,
		TurnEvent{Provider: ev.Provider, Degraded: ev.Degraded},
	)
}

// emitQuestion delivers a question straight from the selector with no
// generation call. An optional notice prefixes the question text.
func (uc *implUseCase) emitQuestion(ctx context.Context, emitter session.Emitter, sess *model.Session, userContent string, question *model.Question, answered, total int, notice string) error {
	content := question.Text
	if notice != "" {
		content = fmt.Sprintf("%s\n%s", notice, question.Text)
	}
	completion := session.Completion{
		Content:  content,
		Question: question,
		Progress: &session.Progress{
			CurrentStep:        answered + 1,
			CompletedQuestions: answered,
			TotalEstimated:     total,
		},
		DetectedCategory: sess.DetectedCategory,
	}
	return uc.finishTurn(ctx, emitter, sess,
		uc.newUserMessage(userContent, false, ""),
		completion,
		TurnEvent{},
	)
}

func (uc *implUseCase) emitQuestionAnswered(ctx context.Context, emitter session.Emitter, sess *model.Session, answer, answeredQuestionID string, out assessment.AnswerOutput) error {
	completion := session.Completion{
		Content:  out.Question.Text,
		Question: out.Question,
		Progress: &session.Progress{
			CurrentStep:        out.AnsweredCount + 1,
			CompletedQuestions: out.AnsweredCount,
			TotalEstimated:     out.TotalEstimated,
		},
		DetectedCategory: sess.DetectedCategory,
	}
	return uc.finishTurn(ctx, emitter, sess,
		uc.newUserMessage(answer, false, answeredQuestionID),
		completion,
		TurnEvent{},
	)
}

func (uc *implUseCase) formatCompletion(sess *model.Session, suggestions []model.Suggestion) string {
	var b strings.Builder
	b.WriteString(localized(completionIntros, sess.PreferredLanguage))
	for i, s := range suggestions {
		fmt.Fprintf(&b, "\n%d. %s", i+1, s.Title)
		if s.Description != "" {
			fmt.Fprintf(&b, ": %s", s.Description)
		}
	}
	return b.String()
}
