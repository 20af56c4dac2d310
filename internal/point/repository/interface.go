package repository

import (
	"context"

	"support-srv/internal/point"
)

//go:generate mockery --name QdrantRepository
type QdrantRepository interface {
	Search(ctx context.Context, opt SearchOptions) ([]point.SearchOutput, error)
}
