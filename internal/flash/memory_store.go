package flash

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/portfolio/domain"
)

// MemoryStore is the single-process fallback used when REDIS_URL is unset.
type MemoryStore struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]memoryItem
}

type memoryItem struct {
	flash   domain.Flash
	expires time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &MemoryStore{ttl: ttl, now: time.Now, items: make(map[string]memoryItem)}
}

func (s *MemoryStore) Put(_ context.Context, f domain.Flash) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, it := range s.items {
		if now.After(it.expires) {
			delete(s.items, id)
		}
	}

	id := uuid.New().String()
	s.items[id] = memoryItem{flash: f, expires: now.Add(s.ttl)}
	return id, nil
}

func (s *MemoryStore) Pop(_ context.Context, id string) (domain.Flash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[id]
	if !ok {
		return domain.Flash{}, ErrNotFound
	}
	delete(s.items, id)
	if s.now().After(it.expires) {
		return domain.Flash{}, ErrNotFound
	}
	return it.flash, nil
}
