package assessment

import "errors"

var (
	ErrNotActive       = errors.New("assessment: no active assessment")
	ErrAlreadyActive   = errors.New("assessment: assessment already active")
	ErrNotPaused       = errors.New("assessment: assessment not paused")
	ErrInvalidAnswer   = errors.New("assessment: invalid answer")
	ErrNoFirstQuestion = errors.New("assessment: no question available for category")
)
