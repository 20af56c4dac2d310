package embedding

import "errors"

var (
	ErrEmptyText        = errors.New("embedding: empty text")
	ErrNoVectorReturned = errors.New("embedding: no vector returned")
)
