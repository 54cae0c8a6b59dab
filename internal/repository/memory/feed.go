package memory

import (
	"context"
	"sync"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

type FeedStorage struct {
	mu    sync.RWMutex
	items []models.FeedItem
}

// NewFeedStorage seeds the registry with the given items in the given order.
func NewFeedStorage(seed []models.FeedItem) *FeedStorage {
	items := make([]models.FeedItem, len(seed))
	copy(items, seed)

	return &FeedStorage{items: items}
}

// ListFeedItems returns the entries most-recent-first.
func (s *FeedStorage) ListFeedItems(_ context.Context) ([]models.FeedItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.FeedItem, len(s.items))
	copy(out, s.items)

	return out, nil
}

// AddFeedItem prepends; prior items keep their relative order.
func (s *FeedStorage) AddFeedItem(_ context.Context, item models.FeedItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append([]models.FeedItem{item}, s.items...)

	return nil
}
