package repository

import (
	"github.com/qdrant/go-client/qdrant"
)

type SearchOptions struct {
	Collection     string
	Vector         []float32
	Filter         *qdrant.Filter
	Limit          uint64
	ScoreThreshold float32
}
