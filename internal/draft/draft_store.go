package draft

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "onboarding:draft:"

// DefaultSessionTTL is how long an untouched session survives before Redis
// expires it (the "abandoned form" exit path of the draft lifecycle).
const DefaultSessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("draft session not found")

func SessionKey(id string) string {
	return sessionKeyPrefix + id
}

//go:generate mockgen -source=draft_store.go -destination=mock/draft_store_mock.go -package=mock
type Store interface {
	Save(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration, logger ...*zap.Logger) Store {
	l := zap.L().Named("draft.store")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("draft.store")
	}
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &redisStore{rdb: rdb, ttl: ttl, logger: l}
}

func (s *redisStore) Save(ctx context.Context, sess *Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := s.rdb.Set(ctx, SessionKey(sess.ID), raw, s.ttl).Err(); err != nil {
		s.logger.Error("save draft session failed",
			zap.String("draft_id", sess.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *redisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.rdb.Get(ctx, SessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("get draft session failed",
			zap.String("draft_id", id),
			zap.Error(err),
		)
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	if err := s.rdb.Del(ctx, SessionKey(id)).Err(); err != nil {
		s.logger.Error("delete draft session failed",
			zap.String("draft_id", id),
			zap.Error(err),
		)
		return err
	}
	return nil
}
