package model

// ResponseType distinguishes numeric-scale questions from free-text ones.
const (
	ResponseTypeScale = "scale"
	ResponseTypeText  = "text"
)

// Question is one assessment question served from the vector store payload.
type Question struct {
	ID            string  `json:"id"`
	Text          string  `json:"text"`
	ResponseType  string  `json:"response_type"` // "scale" | "text"
	SubCategoryID string  `json:"sub_category_id"`
	BatchID       int     `json:"batch_id"`
	Cluster       string  `json:"cluster"`
	ScaleMin      int     `json:"scale_min,omitempty"`
	ScaleMax      int     `json:"scale_max,omitempty"`
	Score         float64 `json:"-"`
}

// AssessmentState tracks one in-progress assessment run. Exists only while
// the session mode is ASSESSMENT_ACTIVE or ASSESSMENT_PAUSED; discarded on
// completion, cancellation or expiry.
type AssessmentState struct {
	Category        string    `json:"category"`
	SubCategoryID   string    `json:"sub_category_id"`
	BatchID         int       `json:"batch_id"`
	CurrentQuestion *Question `json:"current_question,omitempty"`

	// AnsweredCount is monotonically non-decreasing; duplicate submissions
	// for the same question id never increment it twice.
	AnsweredCount  int `json:"answered_count"`
	TotalEstimated int `json:"total_estimated"`

	// Responses maps question id to the raw answer value; AskedIDs keeps
	// delivery order and doubles as the selector exclusion list.
	Responses map[string]string `json:"responses"`
	AskedIDs  []string          `json:"asked_ids"`

	// ClusterTally accumulates weighted answers per cluster for suggestion
	// ranking at completion.
	ClusterTally map[string]float64 `json:"cluster_tally"`
}

// HasAnswered reports whether the question was already answered in this run.
func (a *AssessmentState) HasAnswered(questionID string) bool {
	_, ok := a.Responses[questionID]
	return ok
}

// Progress returns the completion percentage clamped to [0,100].
func (a *AssessmentState) Progress() float64 {
	if a.TotalEstimated <= 0 {
		return 0
	}
	p := float64(a.AnsweredCount) / float64(a.TotalEstimated) * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// Suggestion is one ranked follow-up recommendation produced at assessment
// completion.
type Suggestion struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Cluster     string  `json:"cluster"`
	Score       float64 `json:"score"`
}
