package assessment

import (
	"support-srv/internal/model"
)

type StartInput struct {
	Session       *model.Session
	Category      string
	SubCategoryID string
}

type StartOutput struct {
	Question *model.Question
}

type AnswerInput struct {
	Session *model.Session
	Answer  string
}

type AnswerOutput struct {
	// Question is the next question to deliver; nil when the run completed.
	Question    *model.Question
	Completed   bool
	Suggestions []model.Suggestion

	// Snapshot of the run counters after this answer. Kept on the output
	// because completion discards the assessment state from the session.
	AnsweredCount  int
	TotalEstimated int
}

type ResumeOutput struct {
	Question *model.Question
}
