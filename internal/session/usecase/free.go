package usecase

import (
	"context"

	"support-srv/internal/model"
	"support-srv/internal/selector"
	"support-srv/internal/session"
)

func (uc *implUseCase) handleFree(ctx context.Context, emitter session.Emitter, sess *model.Session, content string) error {
	// An explicit request overrides a previous decline.
	explicit := requestsAssessment(content)
	if explicit {
		sess.OfferDeclined = false
	}

	top := uc.detectCategory(ctx, sess, content)

	offered := false
	if sess.ActiveAssessment == nil && !sess.OfferDeclined {
		if sess.StreakCount >= uc.cfg.OfferStreak || (explicit && top != nil) {
			sess.Mode = model.ModeAssessmentOffered
			sess.DetectedCategory = sess.StreakCategory
			offered = true
		}
	}

	prompt := uc.buildPrompt(sess, content)
	ev, err := uc.runGeneration(ctx, emitter, prompt, sess.PreferredLanguage)
	if err != nil {
		return err
	}

	completion := session.Completion{
		Content:              ev.FinalText,
		DetectedCategory:     sess.DetectedCategory,
		ShouldShowAssessment: offered,
		Degraded:             ev.Degraded,
	}
	return uc.finishTurn(ctx, emitter, sess,
		uc.newUserMessage(content, false, ""),
		completion,
		TurnEvent{Provider: ev.Provider, Degraded: ev.Degraded},
	)
}

// detectCategory runs category detection on the turn text and maintains the
// consecutive-confidence streak used by the offer rule. Detection failures
// degrade to plain free chat.
func (uc *implUseCase) detectCategory(ctx context.Context, sess *model.Session, content string) *selector.CategoryMatch {
	matches, err := uc.selector.SelectCategory(ctx, selector.SelectCategoryInput{Text: content})
	if err != nil {
		// A failed detection is not a confident turn; a stale streak must
		// not trip the offer rule.
		uc.l.Warnf(ctx, "session.usecase.HandleMessage: category detection failed: %v", err)
		sess.StreakCategory = ""
		sess.StreakCount = 0
		return nil
	}
	if len(matches) == 0 || matches[0].Score < uc.cfg.OfferScore {
		sess.StreakCategory = ""
		sess.StreakCount = 0
		return nil
	}

	top := matches[0]
	if top.CategoryID == sess.StreakCategory {
		sess.StreakCount++
	} else {
		sess.StreakCategory = top.CategoryID
		sess.StreakCount = 1
	}
	sess.DetectedSubCategory = top.SubCategoryID
	return &top
}
