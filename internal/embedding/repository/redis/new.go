package redis

import (
	"support-srv/internal/embedding/repository"
	"support-srv/pkg/log"
	pkgRedis "support-srv/pkg/redis"
)

type implRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
}

func New(redis pkgRedis.IRedis, l log.Logger) repository.Repository {
	return &implRepository{
		redis: redis,
		l:     l,
	}
}
