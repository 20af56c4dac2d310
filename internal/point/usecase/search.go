package usecase

import (
	"context"

	"support-srv/internal/point"
	"support-srv/internal/point/repository"
)

func (uc *implUseCase) Search(ctx context.Context, input point.SearchInput) ([]point.SearchOutput, error) {
	results, err := uc.repo.Search(ctx, repository.SearchOptions{
		Collection:     input.Collection,
		Vector:         input.Vector,
		Filter:         input.Filter,
		Limit:          input.Limit,
		ScoreThreshold: input.ScoreThreshold,
	})
	if err != nil {
		uc.l.Errorf(ctx, "point.usecase.Search: %v", err)
		return nil, err
	}
	return results, nil
}
