package ws

import (
	"encoding/json"
	"fmt"
	"strings"

	"support-srv/internal/session"
)

const (
	typeMessage  = "message"
	typeChunk    = "chunk"
	typeComplete = "complete"
	typeError    = "error"
)

type sessionData struct {
	SessionID         string `json:"sessionId"`
	PreferredLanguage string `json:"preferredLanguage"`
}

// inboundMessage is a client turn. assessment_response may arrive as a JSON
// string or number depending on the widget that produced it.
type inboundMessage struct {
	Type               string          `json:"type"`
	Content            string          `json:"content"`
	SessionData        sessionData     `json:"session_data"`
	AssessmentResponse json.RawMessage `json:"assessment_response,omitempty"`
}

func (m *inboundMessage) assessmentResponse() string {
	if len(m.AssessmentResponse) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(m.AssessmentResponse, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(m.AssessmentResponse, &n); err == nil {
		return n.String()
	}
	return strings.Trim(string(m.AssessmentResponse), `"`)
}

type chunkMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type wireQuestion struct {
	QuestionID    string `json:"question_id"`
	QuestionText  string `json:"question_text"`
	ResponseType  string `json:"response_type"`
	SubCategoryID string `json:"sub_category_id"`
}

type wireProgress struct {
	CurrentStep        int `json:"current_step"`
	CompletedQuestions int `json:"completed_questions"`
	TotalEstimated     int `json:"total_estimated"`
}

type assessmentData struct {
	Question wireQuestion `json:"question"`
	Progress wireProgress `json:"progress"`
}

type completeMessage struct {
	Type                    string          `json:"type"`
	Content                 string          `json:"content"`
	AssessmentData          *assessmentData `json:"assessment_data,omitempty"`
	DetectedProblemCategory string          `json:"detected_problem_category,omitempty"`
	ShouldShowAssessment    *bool           `json:"should_show_assessment,omitempty"`
}

type errorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func newChunkMessage(text string) chunkMessage {
	return chunkMessage{Type: typeChunk, Content: text}
}

func newCompleteMessage(c session.Completion) completeMessage {
	msg := completeMessage{
		Type:                    typeComplete,
		Content:                 c.Content,
		DetectedProblemCategory: c.DetectedCategory,
	}
	if c.ShouldShowAssessment {
		v := true
		msg.ShouldShowAssessment = &v
	}
	if c.Question != nil && c.Progress != nil {
		msg.AssessmentData = &assessmentData{
			Question: wireQuestion{
				QuestionID:    c.Question.ID,
				QuestionText:  c.Question.Text,
				ResponseType:  c.Question.ResponseType,
				SubCategoryID: c.Question.SubCategoryID,
			},
			Progress: wireProgress{
				CurrentStep:        c.Progress.CurrentStep,
				CompletedQuestions: c.Progress.CompletedQuestions,
				TotalEstimated:     c.Progress.TotalEstimated,
			},
		}
	}
	return msg
}

func newErrorMessage(format string, args ...interface{}) errorMessage {
	return errorMessage{Type: typeError, Message: fmt.Sprintf(format, args...)}
}
