package selector

import (
	"context"

	"support-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SelectCategory(ctx context.Context, input SelectCategoryInput) ([]CategoryMatch, error)
	SelectQuestion(ctx context.Context, input SelectQuestionInput) (*model.Question, error)
	SelectSuggestions(ctx context.Context, input SelectSuggestionsInput) ([]model.Suggestion, error)
}
