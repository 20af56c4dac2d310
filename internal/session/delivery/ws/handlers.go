package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"support-srv/internal/session"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  4 * 1024,
	WriteBufferSize: 4 * 1024,
}

// wsEmitter serializes all writes for one turn onto the connection.
// Cancelling the turn context on write failure stops the generation the
// moment the client goes away.
type wsEmitter struct {
	conn   *websocket.Conn
	mu     *sync.Mutex
	cancel context.CancelFunc
}

func (e *wsEmitter) write(v interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.conn.WriteJSON(v); err != nil {
		e.cancel()
		return err
	}
	return nil
}

func (e *wsEmitter) Chunk(ctx context.Context, text string) error {
	return e.write(newChunkMessage(text))
}

func (e *wsEmitter) Complete(ctx context.Context, completion session.Completion) error {
	return e.write(newCompleteMessage(completion))
}

// Serve upgrades the request and runs the per-connection read loop. One
// turn is processed at a time; the single-writer latch in the usecase
// protects the session against a second connection racing this one.
func (h *handler) Serve(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.ws.Serve: upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	// Fallback identity for clients that never supply a session id; keeps
	// continuity for the lifetime of this connection.
	connSessionID := uuid.NewString()
	h.l.Infof(ctx, "session.delivery.ws.Serve: client connected, fallback session %s", connSessionID)

	var writeMu sync.Mutex
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			h.l.Infof(ctx, "session.delivery.ws.Serve: client disconnected: %v", err)
			return
		}

		var msg inboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			h.sendError(ctx, conn, &writeMu, "malformed message: %v", err)
			continue
		}
		if msg.Type != typeMessage {
			h.sendError(ctx, conn, &writeMu, "unsupported message type %q", msg.Type)
			continue
		}

		sessionID := msg.SessionData.SessionID
		if sessionID == "" {
			sessionID = connSessionID
		}

		turnCtx, cancel := context.WithCancel(ctx)
		emitter := &wsEmitter{conn: conn, mu: &writeMu, cancel: cancel}
		err = h.uc.HandleMessage(turnCtx, emitter, session.HandleMessageInput{
			SessionID:          sessionID,
			Content:            msg.Content,
			PreferredLanguage:  msg.SessionData.PreferredLanguage,
			AssessmentResponse: msg.assessmentResponse(),
		})
		cancel()

		if err != nil {
			h.l.Warnf(ctx, "session.delivery.ws.Serve: turn failed for session %s: %v", sessionID, err)
			h.sendError(ctx, conn, &writeMu, "%s", errorText(err))
		}
	}
}

func (h *handler) sendError(ctx context.Context, conn *websocket.Conn, mu *sync.Mutex, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if err := conn.WriteJSON(newErrorMessage(format, args...)); err != nil {
		h.l.Warnf(ctx, "session.delivery.ws.Serve: write error message: %v", err)
	}
}
