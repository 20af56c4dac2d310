package usecase

import (
	"support-srv/internal/embedding"
	"support-srv/internal/point"
	"support-srv/internal/selector"
	"support-srv/pkg/log"
)

type Config struct {
	MinScore float32
}

type implUseCase struct {
	embedding embedding.UseCase
	point     point.UseCase
	cfg       Config
	l         log.Logger
}

func New(embeddingUC embedding.UseCase, pointUC point.UseCase, cfg Config, l log.Logger) selector.UseCase {
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	return &implUseCase{
		embedding: embeddingUC,
		point:     pointUC,
		cfg:       cfg,
		l:         l,
	}
}
