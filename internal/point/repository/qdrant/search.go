package qdrant

import (
	"context"

	"support-srv/internal/point"
	"support-srv/internal/point/repository"
	pkgQdrant "support-srv/pkg/qdrant"
)

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]point.SearchOutput, error) {
	hits, err := r.client.Search(ctx, pkgQdrant.SearchParams{
		Collection:     opt.Collection,
		Vector:         opt.Vector,
		Filter:         opt.Filter,
		Limit:          opt.Limit,
		ScoreThreshold: opt.ScoreThreshold,
	})
	if err != nil {
		r.l.Errorf(ctx, "point.repository.qdrant.Search: %v", err)
		return nil, err
	}

	results := make([]point.SearchOutput, len(hits))
	for i, h := range hits {
		results[i] = point.SearchOutput{
			ID:      h.ID,
			Score:   h.Score,
			Payload: h.Payload,
		}
	}
	return results, nil
}
