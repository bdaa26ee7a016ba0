package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"hr-admin/internal/shared/principal"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	keyPrefix = "session:"

	// TTL keeps abandoned sessions from accumulating; within it a session
	// stays valid until an explicit logout.
	TTL = 7 * 24 * time.Hour
)

type RedisStore struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, logger ...*zap.Logger) *RedisStore {
	l := zap.L().Named("session.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("session.store")
	}
	return &RedisStore{rdb: rdb, logger: l}
}

func (s *RedisStore) Create(ctx context.Context, p principal.Principal) (string, error) {
	token := uuid.NewString()

	payload, err := json.Marshal(p)
	if err != nil {
		return "", err
	}

	if err := s.rdb.Set(ctx, keyPrefix+token, payload, TTL).Err(); err != nil {
		s.logger.Error("session create failed",
			zap.String("user_id", p.UserID.String()),
			zap.Error(err),
		)
		return "", err
	}

	return token, nil
}

func (s *RedisStore) Get(ctx context.Context, token string) (principal.Principal, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return principal.Principal{}, ErrSessionNotFound
		}
		s.logger.Error("session lookup failed", zap.Error(err))
		return principal.Principal{}, err
	}

	var p principal.Principal
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		s.logger.Error("session payload corrupt", zap.Error(err))
		return principal.Principal{}, ErrSessionNotFound
	}

	return p, nil
}

func (s *RedisStore) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
