package session

import "errors"

var (
	ErrEmptySessionID   = errors.New("session: empty session id")
	ErrEmptyContent     = errors.New("session: empty content")
	ErrSessionBusy      = errors.New("session: session busy")
	ErrStoreUnavailable = errors.New("session: store unavailable")
)
