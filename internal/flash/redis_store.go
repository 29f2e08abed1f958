package flash

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

const keyPrefix = "portfolio:flash:" // portfolio:flash:{id}

// RedisStore handles Redis operations for flash messages
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a new RedisStore
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

func (s *RedisStore) Put(ctx context.Context, f domain.Flash) (string, error) {
	id := uuid.New().String()
	data, err := json.Marshal(f)
	if err != nil {
		return "", fmt.Errorf("failed to marshal flash: %w", err)
	}
	if err := s.client.Set(ctx, keyPrefix+id, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store flash: %w", err)
	}
	return id, nil
}

func (s *RedisStore) Pop(ctx context.Context, id string) (domain.Flash, error) {
	if id == "" {
		return domain.Flash{}, ErrNotFound
	}
	data, err := s.client.GetDel(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return domain.Flash{}, ErrNotFound
	}
	if err != nil {
		return domain.Flash{}, fmt.Errorf("failed to get flash: %w", err)
	}

	var f domain.Flash
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return domain.Flash{}, fmt.Errorf("failed to unmarshal flash: %w", err)
	}
	return f, nil
}
