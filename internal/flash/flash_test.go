package flash

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})
	return mr, client
}

func TestRedisStore_PutPopOnce(t *testing.T) {
	_, client := setupTestRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	want := domain.Flash{Level: domain.FlashSuccess, Message: "Thank you for your message! I will get back to you soon."}
	id, err := store.Put(ctx, want)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Pop(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = store.Pop(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Expires(t *testing.T) {
	mr, client := setupTestRedis(t)
	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	id, err := store.Put(ctx, domain.Flash{Level: domain.FlashError, Message: "x"})
	require.NoError(t, err)
	assert.True(t, mr.Exists(keyPrefix+id))

	mr.FastForward(2 * time.Minute)

	_, err = store.Pop(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_EmptyID(t *testing.T) {
	_, client := setupTestRedis(t)
	_, err := NewRedisStore(client, 0).Pop(context.Background(), "")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	id, err := store.Put(ctx, domain.Flash{Level: domain.FlashSuccess, Message: "ok"})
	require.NoError(t, err)

	got, err := store.Pop(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "ok", got.Message)

	_, err = store.Pop(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	id, err = store.Put(ctx, domain.Flash{Message: "late"})
	require.NoError(t, err)
	now = now.Add(2 * time.Minute)
	_, err = store.Pop(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
