package usecase

import (
	"context"

	"support-srv/internal/assessment"
	"support-srv/internal/model"
	"support-srv/internal/selector"
)

func (uc *implUseCase) Start(ctx context.Context, input assessment.StartInput) (assessment.StartOutput, error) {
	sess := input.Session
	if sess.ActiveAssessment != nil {
		uc.l.Warnf(ctx, "assessment.usecase.Start: session %s already has an active run", sess.ID)
		return assessment.StartOutput{}, assessment.ErrAlreadyActive
	}

	question, err := uc.selector.SelectQuestion(ctx, selector.SelectQuestionInput{
		SubCategoryID: input.SubCategoryID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.Start: select first question: %v", err)
		return assessment.StartOutput{}, err
	}
	if question == nil {
		uc.l.Warnf(ctx, "assessment.usecase.Start: no questions for sub category %s", input.SubCategoryID)
		return assessment.StartOutput{}, assessment.ErrNoFirstQuestion
	}

	sess.ActiveAssessment = &model.AssessmentState{
		Category:        input.Category,
		SubCategoryID:   input.SubCategoryID,
		BatchID:         question.BatchID,
		CurrentQuestion: question,
		TotalEstimated:  uc.cfg.TotalEstimated,
		Responses:       make(map[string]string),
		AskedIDs:        []string{question.ID},
		ClusterTally:    make(map[string]float64),
	}
	sess.Mode = model.ModeAssessmentActive
	sess.DetectedCategory = input.Category

	return assessment.StartOutput{Question: question}, nil
}
