package usecase

import (
	"context"
	"sort"

	"support-srv/internal/embedding"
	"support-srv/internal/model"
	"support-srv/internal/point"
	"support-srv/internal/selector"

	pb "github.com/qdrant/go-client/qdrant"
)

// SelectQuestion returns the highest-scored unasked question for the sub
// category, or nil when nothing unexhausted clears the score threshold.
// Ties break on lower batch_id, then lexicographically smaller question id,
// so the ordering is deterministic.
func (uc *implUseCase) SelectQuestion(ctx context.Context, input selector.SelectQuestionInput) (*model.Question, error) {
	if input.SubCategoryID == "" {
		return nil, selector.ErrEmptySubCategory
	}

	emb, err := uc.embedding.Generate(ctx, embedding.GenerateInput{Text: input.SubCategoryID})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectQuestion: embed failed: %v", err)
		return nil, err
	}

	hits, err := uc.point.Search(ctx, point.SearchInput{
		Collection:     CollectionQuestions,
		Vector:         emb.Vector,
		Filter:         subCategoryFilter(input.SubCategoryID),
		Limit:          candidateLimit,
		ScoreThreshold: uc.cfg.MinScore,
	})
	if err != nil {
		uc.l.Errorf(ctx, "selector.usecase.SelectQuestion: %v", err)
		return nil, err
	}

	excluded := make(map[string]struct{}, len(input.ExcludedIDs))
	for _, id := range input.ExcludedIDs {
		excluded[id] = struct{}{}
	}

	candidates := make([]*model.Question, 0, len(hits))
	for _, h := range hits {
		if _, ok := excluded[h.ID]; ok {
			continue
		}
		candidates = append(candidates, questionFromPayload(h.ID, h.Payload, h.Score))
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		if candidates[i].BatchID != candidates[j].BatchID {
			return candidates[i].BatchID < candidates[j].BatchID
		}
		return candidates[i].ID < candidates[j].ID
	})
	return candidates[0], nil
}

func subCategoryFilter(subCategoryID string) *pb.Filter {
	return &pb.Filter{
		Must: []*pb.Condition{
			{
				ConditionOneOf: &pb.Condition_Field{
					Field: &pb.FieldCondition{
						Key: "sub_category_id",
						Match: &pb.Match{
							MatchValue: &pb.Match_Keyword{Keyword: subCategoryID},
						},
					},
				},
			},
		},
	}
}
