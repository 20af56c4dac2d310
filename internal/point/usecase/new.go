package usecase

import (
	"support-srv/internal/point"
	"support-srv/internal/point/repository"
	"support-srv/pkg/log"
)

type implUseCase struct {
	repo repository.QdrantRepository
	l    log.Logger
}

func New(repo repository.QdrantRepository, l log.Logger) point.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
