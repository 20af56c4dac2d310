package redis

import (
	"time"

	"support-srv/internal/session/repository"
	"support-srv/pkg/log"
	pkgRedis "support-srv/pkg/redis"
)

const DefaultTTL = 24 * time.Hour

type implRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.Repository {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &implRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
