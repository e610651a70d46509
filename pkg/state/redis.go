package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.connectwisedev.com/coffee-service/models"
)

// RedisRepository stores each record as a plain string key without expiry.
type RedisRepository struct {
	client *redis.Client
}

var _ Repository = (*RedisRepository)(nil)

func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func (r *RedisRepository) Load(ctx context.Context, key string) (*models.PersistedState, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoState
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get state %s from Redis: %w", key, err)
	}
	return Decode(b)
}

func (r *RedisRepository) Save(ctx context.Context, key string, state models.PersistedState) error {
	b, err := Encode(state)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, key, b, 0).Err(); err != nil {
		return fmt.Errorf("failed to set state %s in Redis: %w", key, err)
	}
	return nil
}
