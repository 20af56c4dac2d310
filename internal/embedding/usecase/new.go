package usecase

import (
	"support-srv/internal/embedding"
	"support-srv/internal/embedding/repository"
	"support-srv/pkg/log"
	"support-srv/pkg/voyage"
)

type implUseCase struct {
	repo   repository.Repository
	voyage voyage.IVoyage
	l      log.Logger
}

func New(repo repository.Repository, voyage voyage.IVoyage, l log.Logger) embedding.UseCase {
	return &implUseCase{
		repo:   repo,
		voyage: voyage,
		l:      l,
	}
}
