package usecase

import (
	"support-srv/internal/assessment"
	"support-srv/internal/selector"
	"support-srv/pkg/log"
)

type Config struct {
	// TotalEstimated seeds the progress denominator for a new run. It may
	// be revised downward as the selector exhausts candidates but never
	// below the answered count.
	TotalEstimated int
	SuggestionTopK int
}

type implUseCase struct {
	selector selector.UseCase
	cfg      Config
	l        log.Logger
}

func New(selectorUC selector.UseCase, cfg Config, l log.Logger) assessment.UseCase {
	if cfg.TotalEstimated <= 0 {
		cfg.TotalEstimated = DefaultTotalEstimated
	}
	if cfg.SuggestionTopK <= 0 {
		cfg.SuggestionTopK = DefaultSuggestionTopK
	}
	return &implUseCase{
		selector: selectorUC,
		cfg:      cfg,
		l:        l,
	}
}
