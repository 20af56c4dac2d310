package ws

import (
	"encoding/json"
	"testing"

	"support-srv/internal/model"
	"support-srv/internal/session"
)

func TestInboundMessage(t *testing.T) {
	t.Run("full message", func(t *testing.T) {
		raw := `{"type":"message","content":"hello","session_data":{"sessionId":"abc","preferredLanguage":"vi"},"assessment_response":"7"}`
		var msg inboundMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != "message" || msg.Content != "hello" {
			t.Errorf("msg = %+v", msg)
		}
		if msg.SessionData.SessionID != "abc" || msg.SessionData.PreferredLanguage != "vi" {
			t.Errorf("session_data = %+v", msg.SessionData)
		}
		if got := msg.assessmentResponse(); got != "7" {
			t.Errorf("assessment response = %q", got)
		}
	})

	t.Run("numeric assessment response", func(t *testing.T) {
		raw := `{"type":"message","content":"","session_data":{"sessionId":"abc","preferredLanguage":"en"},"assessment_response":7}`
		var msg inboundMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got := msg.assessmentResponse(); got != "7" {
			t.Errorf("assessment response = %q, want 7", got)
		}
	})

	t.Run("absent assessment response", func(t *testing.T) {
		raw := `{"type":"message","content":"hi","session_data":{"sessionId":"abc","preferredLanguage":"en"}}`
		var msg inboundMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got := msg.assessmentResponse(); got != "" {
			t.Errorf("assessment response = %q, want empty", got)
		}
	})
}

func TestCompleteMessageWireFormat(t *testing.T) {
	t.Run("plain completion omits optional fields", func(t *testing.T) {
		data, err := json.Marshal(newCompleteMessage(session.Completion{Content: "hi there"}))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"type":"complete","content":"hi there"}`
		if string(data) != want {
			t.Errorf("wire = %s, want %s", data, want)
		}
	})

	t.Run("question completion", func(t *testing.T) {
		c := session.Completion{
			Content: "On a scale of 1 to 10, how stressed are you?",
			Question: &model.Question{
				ID:            "q1",
				Text:          "On a scale of 1 to 10, how stressed are you?",
				ResponseType:  "scale",
				SubCategoryID: "work-stress",
			},
			Progress:         &session.Progress{CurrentStep: 1, CompletedQuestions: 0, TotalEstimated: 10},
			DetectedCategory: "stress",
		}
		data, err := json.Marshal(newCompleteMessage(c))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"type":"complete","content":"On a scale of 1 to 10, how stressed are you?",` +
			`"assessment_data":{"question":{"question_id":"q1","question_text":"On a scale of 1 to 10, how stressed are you?",` +
			`"response_type":"scale","sub_category_id":"work-stress"},` +
			`"progress":{"current_step":1,"completed_questions":0,"total_estimated":10}},` +
			`"detected_problem_category":"stress"}`
		if string(data) != want {
			t.Errorf("wire = %s\nwant %s", data, want)
		}
	})

	t.Run("offer completion", func(t *testing.T) {
		c := session.Completion{
			Content:              "That sounds hard.",
			DetectedCategory:     "stress",
			ShouldShowAssessment: true,
		}
		data, err := json.Marshal(newCompleteMessage(c))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		want := `{"type":"complete","content":"That sounds hard.","detected_problem_category":"stress","should_show_assessment":true}`
		if string(data) != want {
			t.Errorf("wire = %s, want %s", data, want)
		}
	})
}

func TestChunkAndErrorWireFormat(t *testing.T) {
	data, err := json.Marshal(newChunkMessage("Hel"))
	if err != nil {
		t.Fatalf("marshal chunk: %v", err)
	}
	if string(data) != `{"type":"chunk","content":"Hel"}` {
		t.Errorf("chunk wire = %s", data)
	}

	data, err = json.Marshal(newErrorMessage("session busy"))
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(data) != `{"type":"error","message":"session busy"}` {
		t.Errorf("error wire = %s", data)
	}
}
