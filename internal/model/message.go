package model

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single message in a session's history. Immutable once
// Streaming is false.
type Message struct {
	ID            string `json:"id"`
	Role          string `json:"role"` // "user" | "assistant"
	Content       string `json:"content"`
	Streaming     bool   `json:"streaming"`
	CrisisFlagged bool   `json:"crisis_flagged"`

	// AssessmentQuestionID links an assistant message that delivered an
	// assessment question to that question.
	AssessmentQuestionID string `json:"assessment_question_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}
