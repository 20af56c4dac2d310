package usecase

import (
	"support-srv/internal/assessment"
	"support-srv/internal/crisis"
	"support-srv/internal/generation"
	"support-srv/internal/selector"
	"support-srv/internal/session"
	"support-srv/internal/session/repository"
	"support-srv/pkg/kafka"
	"support-srv/pkg/log"
)

type Config struct {
	// OfferScore is the minimum category confidence counting toward the
	// offer streak; OfferStreak is how many consecutive confident turns
	// trigger an assessment offer.
	OfferScore  float32
	OfferStreak int

	// HistoryWindow bounds how many recent messages feed the prompt.
	HistoryWindow int
}

type implUseCase struct {
	repo       repository.Repository
	crisis     crisis.UseCase
	selector   selector.UseCase
	assessment assessment.UseCase
	generation generation.UseCase
	producer   kafka.IProducer
	latch      *sessionLatch
	cfg        Config
	l          log.Logger
}

func New(
	repo repository.Repository,
	crisisUC crisis.UseCase,
	selectorUC selector.UseCase,
	assessmentUC assessment.UseCase,
	generationUC generation.UseCase,
	producer kafka.IProducer,
	cfg Config,
	l log.Logger,
) session.UseCase {
	if cfg.OfferScore <= 0 {
		cfg.OfferScore = DefaultOfferScore
	}
	if cfg.OfferStreak <= 0 {
		cfg.OfferStreak = DefaultOfferStreak
	}
	if cfg.HistoryWindow <= 0 {
		cfg.HistoryWindow = DefaultHistoryWindow
	}
	return &implUseCase{
		repo:       repo,
		crisis:     crisisUC,
		selector:   selectorUC,
		assessment: assessmentUC,
		generation: generationUC,
		producer:   producer,
		latch:      newSessionLatch(),
		cfg:        cfg,
		l:          l,
	}
}
