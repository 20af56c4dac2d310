package model

import "time"

// ConversationMode is the closed set of per-session dialogue modes.
// Transitions go through the assessment state machine only.
type ConversationMode string

const (
	ModeFree              ConversationMode = "FREE"
	ModeAssessmentOffered ConversationMode = "ASSESSMENT_OFFERED"
	ModeAssessmentActive  ConversationMode = "ASSESSMENT_ACTIVE"
	ModeAssessmentPaused  ConversationMode = "ASSESSMENT_PAUSED"
)

// Session is the durable unit of conversational state for one client,
// surviving reconnects. Persisted as a single key in the session store
// after every turn.
type Session struct {
	ID                string           `json:"id"`
	Mode              ConversationMode `json:"mode"`
	History           []Message        `json:"history"`
	ActiveAssessment  *AssessmentState `json:"active_assessment,omitempty"`
	DetectedCategory  string           `json:"detected_category,omitempty"`
	PreferredLanguage string           `json:"preferred_language"`

	// DetectedSubCategory narrows DetectedCategory to the question pool an
	// accepted offer draws from.
	DetectedSubCategory string `json:"detected_sub_category,omitempty"`

	// Offer streak tracking: StreakCategory holds the category currently
	// accumulating consecutive confident detections.
	StreakCategory string `json:"streak_category,omitempty"`
	StreakCount    int    `json:"streak_count"`

	// OfferDeclined latches after a declined offer; no automatic re-offer
	// within the same session.
	OfferDeclined bool `json:"offer_declined"`

	// Suggestions computed at the last assessment completion, retained for
	// delivery after the state itself is discarded.
	CompletedSuggestions []Suggestion `json:"completed_suggestions,omitempty"`

	LastActivityAt time.Time `json:"last_activity_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// Touch updates the last-activity timestamp.
func (s *Session) Touch(now time.Time) {
	s.LastActivityAt = now
}

// AppendMessage appends to the history. History is append-only; finalized
// messages are never mutated afterwards.
func (s *Session) AppendMessage(m Message) {
	s.History = append(s.History, m)
}

// RecentHistory returns up to n most recent messages in order.
func (s *Session) RecentHistory(n int) []Message {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}
