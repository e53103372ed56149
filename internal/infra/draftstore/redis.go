package draftstore

import (
	"context"
	"encoding/json"
	"time"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "kala:draft:"

// RedisStore keeps drafts as JSON strings whose TTL matches the draft expiry.
type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

// NewRedisClient connects to the configured Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is not configured")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()

		return nil, errors.Wrap(err, "redis ping failed")
	}

	return rdb, nil
}

// NewRedisStore wraps a connected client.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

func draftKey(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (s *RedisStore) Save(ctx context.Context, draft *entity.ApplicationDraft) error {
	ttl := draft.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return s.Delete(ctx, draft.ID)
	}

	data, err := json.Marshal(draft)
	if err != nil {
		return errors.Wrap(err, "encode draft")
	}

	if err := s.client.Set(ctx, draftKey(draft.ID), data, ttl).Err(); err != nil {
		return errors.Wrapf(err, "save draft %s", draft.ID)
	}

	return nil
}

func (s *RedisStore) Get(ctx context.Context, id uuid.UUID) (*entity.ApplicationDraft, error) {
	data, err := s.client.Get(ctx, draftKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrDraftNotFound
	}
	if err != nil {
		return nil, errors.Wrapf(err, "load draft %s", id)
	}

	var draft entity.ApplicationDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return nil, errors.Wrap(err, "decode draft")
	}

	return &draft, nil
}

func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.client.Del(ctx, draftKey(id)).Err(); err != nil {
		return errors.Wrapf(err, "delete draft %s", id)
	}

	return nil
}

// PurgeExpired is a no-op: Redis expires keys itself.
func (s *RedisStore) PurgeExpired(context.Context) (int, error) {
	return 0, nil
}
