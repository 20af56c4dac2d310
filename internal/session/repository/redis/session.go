package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"support-srv/internal/model"
	"support-srv/internal/session/repository"
)

const Prefix = "session:"

func (r *implRepository) Get(ctx context.Context, sessionID string) (*model.Session, error) {
	key := fmt.Sprintf("%s%s", Prefix, sessionID)
	data, err := r.redis.GetClient().Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "session.repository.redis.Get: %v", err)
		return nil, err
	}

	var sess model.Session
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Get: unmarshal error: %v", err)
		return nil, err
	}
	return &sess, nil
}

func (r *implRepository) Put(ctx context.Context, sess *model.Session) error {
	key := fmt.Sprintf("%s%s", Prefix, sess.ID)
	data, err := json.Marshal(sess)
	if err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Put: %v", err)
		return err
	}

	if err := r.redis.GetClient().Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.l.Errorf(ctx, "session.repository.redis.Put: %v", err)
		return err
	}
	return nil
}
