package session

import (
	"support-srv/internal/model"
)

type HandleMessageInput struct {
	SessionID         string
	Content           string
	PreferredLanguage string
	// AssessmentResponse carries the structured answer field when the
	// client submits through the assessment widget; plain Content is the
	// fallback answer source.
	AssessmentResponse string
}

// Progress mirrors the wire progress block for assessment turns.
type Progress struct {
	CurrentStep        int
	CompletedQuestions int
	TotalEstimated     int
}

// Completion is the terminal payload of one turn. Question and Progress
// are set together on assessment question delivery; Suggestions are kept
// for callers even though the wire folds them into Content.
type Completion struct {
	Content              string
	Question             *model.Question
	Progress             *Progress
	DetectedCategory     string
	ShouldShowAssessment bool
	Suggestions          []model.Suggestion
	Degraded             bool
}
