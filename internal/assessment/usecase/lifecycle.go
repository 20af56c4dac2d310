package usecase

import (
	"context"

	"support-srv/internal/assessment"
	"support-srv/internal/model"
)

func (uc *implUseCase) Pause(ctx context.Context, sess *model.Session) error {
	if sess.ActiveAssessment == nil || sess.Mode != model.ModeAssessmentActive {
		return assessment.ErrNotActive
	}
	sess.Mode = model.ModeAssessmentPaused
	uc.l.Infof(ctx, "assessment.usecase.Pause: session %s paused at %d answered", sess.ID, sess.ActiveAssessment.AnsweredCount)
	return nil
}

// Resume re-emits the current question unchanged; nothing advances.
func (uc *implUseCase) Resume(ctx context.Context, sess *model.Session) (assessment.ResumeOutput, error) {
	if sess.ActiveAssessment == nil || sess.Mode != model.ModeAssessmentPaused {
		return assessment.ResumeOutput{}, assessment.ErrNotPaused
	}
	sess.Mode = model.ModeAssessmentActive
	return assessment.ResumeOutput{Question: sess.ActiveAssessment.CurrentQuestion}, nil
}

func (uc *implUseCase) Exit(ctx context.Context, sess *model.Session) error {
	if sess.ActiveAssessment == nil {
		return assessment.ErrNotActive
	}
	sess.ActiveAssessment = nil
	sess.Mode = model.ModeFree
	uc.l.Infof(ctx, "assessment.usecase.Exit: session %s discarded its run", sess.ID)
	return nil
}
