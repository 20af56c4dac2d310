package qdrant

import (
	"support-srv/internal/point/repository"
	"support-srv/pkg/log"
	pkgQdrant "support-srv/pkg/qdrant"
)

type implRepository struct {
	client pkgQdrant.IQdrant
	l      log.Logger
}

func New(client pkgQdrant.IQdrant, l log.Logger) repository.QdrantRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}
