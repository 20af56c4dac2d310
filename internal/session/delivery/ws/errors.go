package ws

import (
	"errors"

	"support-srv/internal/session"
)

// errorText maps usecase errors to client-facing protocol error text. The
// connection always survives; the client decides whether to retry.
func errorText(err error) string {
	switch {
	case errors.Is(err, session.ErrSessionBusy):
		return "a response is still in progress for this session, please wait for it to finish"
	case errors.Is(err, session.ErrStoreUnavailable):
		return "temporary storage failure, please resend your message"
	case errors.Is(err, session.ErrEmptyContent):
		return "message content is empty"
	case errors.Is(err, session.ErrEmptySessionID):
		return "session id is missing"
	default:
		return "something went wrong handling your message, please try again"
	}
}
