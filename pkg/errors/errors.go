package errors

import "fmt"

// HTTPError carries an HTTP status plus a stable application error code.
type HTTPError struct {
	Status  int    `json:"-"`
	Code    int    `json:"error_code"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// New creates an HTTPError.
func New(status, code int, message string) *HTTPError {
	return &HTTPError{Status: status, Code: code, Message: message}
}
