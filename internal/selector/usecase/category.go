package usecase

import (
	"context"
	"sort"

	"support-srv/internal/embedding"
	"support-srv/internal/point"
	"support-srv/internal/selector"
)

func (uc *implUseCase) SelectCategory(ctx context.Context, input selector.SelectCategoryInput) ([]selector.CategoryMatch, error) {
	if input.Text == "" {
		return nil, selector.ErrEmptyText
	}

	emb, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: input.Text})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectCategory: embed failed: %v", err)
		return nil, err
	}

	hits, err := uc.point.Search(ctx, point.SearchInput{
		Collection:     CollectionCategories,
		Vector:         emb.Vector,
		Limit:          candidateLimit,
		ScoreThreshold: uc.cfg.MinScore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectCategory: %v", err)
		return nil, err
	}

	matches := make([]selector.CategoryMatch, 0, len(hits))
	for _, h := range hits {
		matches = append(matches, selector.CategoryMatch{
			CategoryID:    payloadString(h.Payload, "category_id", h.ID),
			SubCategoryID: payloadString(h.Payload, "sub_category_id", ""),
			Score:         h.Score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Score != matches[j].Score {
			return matches[i].Score > matches[j].Score
		}
		return matches[i].CategoryID < matches[j].CategoryID
	})
	return matches, nil
}
