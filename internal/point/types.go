package point

import (
	"github.com/qdrant/go-client/qdrant"
)

type Filter = qdrant.Filter

type SearchInput struct {
	Collection     string
	Vector         []float32
	Filter         *Filter
	Limit          uint64
	ScoreThreshold float32
}

type SearchOutput struct {
	ID      string
	Score   float32
	Payload map[string]interface{}
}
