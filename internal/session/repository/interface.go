package repository

import (
	"context"
	"errors"

	"support-srv/internal/model"
)

var ErrNotFound = errors.New("session repository: not found")

//go:generate mockery --name Repository
type Repository interface {
	Get(ctx context.Context, sessionID string) (*model.Session, error)
	// Put upserts the whole session as one key; atomic per key.
	Put(ctx context.Context, sess *model.Session) error
}
