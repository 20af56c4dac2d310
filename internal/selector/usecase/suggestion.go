package usecase

import (
	"context"
	"sort"

	"support-srv/internal/embedding"
	"support-srv/internal/model"
	"support-srv/internal/point"
	"support-srv/internal/selector"
)

// SelectSuggestions ranks suggestions for a completed assessment. The
// cluster tally collected during the run outweighs raw vector similarity:
// a suggestion's final rank is its cluster weight first, similarity second.
func (uc *implUseCase) SelectSuggestions(ctx context.Context, input selector.SelectSuggestionsInput) ([]model.Suggestion, error) {
	if input.SubCategoryID == "" {
		return nil, selector.ErrEmptySubCategory
	}
	topK := input.TopK
	if topK <= 0 {
		topK = DefaultSuggestionTopK
	}

	emb, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: input.SubCategoryID})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectSuggestions: embed failed: %v", err)
		return nil, err
	}

	hits, err := uc.point.Search(ctx, point.SearchInput{
		Collection:     CollectionSuggestions,
		Vector:         emb.Vector,
		Filter:         subCategoryFilter(input.SubCategoryID),
		Limit:          candidateLimit,
		ScoreThreshold: uc.cfg.MinScore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectSuggestions: %v", err)
		return nil, err
	}

	suggestions := make([]model.Suggestion, 0, len(hits))
	for _, h := range hits {
		suggestions = append(suggestions, suggestionFromPayload(h.ID, h.Payload, h.Score))
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		wi := input.ClusterTally[suggestions[i].Cluster]
		wj := input.ClusterTally[suggestions[j].Cluster]
		if wi != wj {
			return wi > wj
		}
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].ID < suggestions[j].ID
	})

	if len(suggestions) > topK {
		suggestions = suggestions[:topK]
	}
	return suggestions, nil
}
