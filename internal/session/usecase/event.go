package usecase

import (
	"context"
	"encoding/json"
	"time"

	"support-srv/internal/model"
)

// TurnEvent is the analytics record published to Kafka after every handled
// turn. Publishing is fire-and-forget; a broker failure never affects the
// client response.
type TurnEvent struct {
	SessionID     string    `json:"session_id"`
	Mode          string    `json:"mode"`
	Lang          string    `json:"lang"`
	CrisisFlagged bool      `json:"crisis_flagged"`
	Provider      string    `json:"provider,omitempty"`
	Degraded      bool      `json:"degraded"`
	At            time.Time `json:"at"`
}

func (uc *implUseCase) publishTurnEvent(ctx context.Context, sess *model.Session, event TurnEvent) {
	if uc.producer == nil {
		return
	}
	event.SessionID = sess.ID
	event.Mode = string(sess.Mode)
	event.Lang = sess.PreferredLanguage
	event.At = time.Now()

	payload, err := json.Marshal(event)
	if err != nil {
		uc.l.Errorf(ctx, "session.usecase.publishTurnEvent: marshal: %v", err)
		return
	}
	if err := uc.producer.Publish([]byte(sess.ID), payload); err != nil {
		uc.l.Warnf(ctx, "session.usecase.publishTurnEvent: publish failed: %v", err)
	}
}
