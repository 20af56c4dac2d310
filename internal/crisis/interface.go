package crisis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Classify(ctx context.Context, input ClassifyInput) ClassifyOutput

	// SafetyMessage returns the fixed, locale-appropriate safety-resource
	// text emitted instead of generated content on a flagged turn.
	SafetyMessage(lang string) string
}
