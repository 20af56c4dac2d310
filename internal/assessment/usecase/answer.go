package usecase

import (
	"context"

	"support-srv/internal/assessment"
	"support-srv/internal/model"
	"support-srv/internal/selector"
)

func (uc *implUseCase) Answer(ctx context.Context, input assessment.AnswerInput) (assessment.AnswerOutput, error) {
	sess := input.Session
	state := sess.ActiveAssessment
	if state == nil || sess.Mode != model.ModeAssessmentActive {
		return assessment.AnswerOutput{}, assessment.ErrNotActive
	}
	question := state.CurrentQuestion
	if question == nil {
		return assessment.AnswerOutput{}, assessment.ErrNotActive
	}

	value, ok := validateAnswer(question, input.Answer)
	if !ok {
		uc.l.Warnf(ctx, "assessment.usecase.Answer: invalid answer for question %s", question.ID)
		return assessment.AnswerOutput{}, assessment.ErrInvalidAnswer
	}

	// Idempotent on question id: a duplicate submission for an already
	// answered question advances without recounting.
	if !state.HasAnswered(question.ID) {
		state.Responses[question.ID] = input.Answer
		state.AnsweredCount++
		if question.Cluster != "" {
			weight := value
			if question.ResponseType != model.ResponseTypeScale {
				weight = 1
			}
			state.ClusterTally[question.Cluster] += weight
		}
	}

	next, err := uc.selector.SelectQuestion(ctx, selector.SelectQuestionInput{
		SubCategoryID: state.SubCategoryID,
		BatchID:       state.BatchID,
		ExcludedIDs:   state.AskedIDs,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.Answer: select next question: %v", err)
		return assessment.AnswerOutput{}, err
	}

	if next == nil {
		return uc.complete(ctx, sess)
	}

	state.CurrentQuestion = next
	state.BatchID = next.BatchID
	state.AskedIDs = append(state.AskedIDs, next.ID)
	return assessment.AnswerOutput{
		Question:       next,
		AnsweredCount:  state.AnsweredCount,
		TotalEstimated: state.TotalEstimated,
	}, nil
}

// complete finishes the run: ranks suggestions from the cluster tally,
// pins the progress denominator to the answered count and returns the
// session to free conversation with results retained.
func (uc *implUseCase) complete(ctx context.Context, sess *model.Session) (assessment.AnswerOutput, error) {
	state := sess.ActiveAssessment

	suggestions, err := uc.selector.SelectSuggestions(ctx, selector.SelectSuggestionsInput{
		SubCategoryID: state.SubCategoryID,
		ClusterTally:  state.ClusterTally,
		TopK:          uc.cfg.SuggestionTopK,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assessment.usecase.Answer: select suggestions: %v", err)
		suggestions = nil
	}

	state.TotalEstimated = state.AnsweredCount
	state.CurrentQuestion = nil

	sess.Mode = model.ModeFree
	sess.CompletedSuggestions = suggestions
	sess.ActiveAssessment = nil

	return assessment.AnswerOutput{
		Completed:      true,
		Suggestions:    suggestions,
		AnsweredCount:  state.AnsweredCount,
		TotalEstimated: state.TotalEstimated,
	}, nil
}
