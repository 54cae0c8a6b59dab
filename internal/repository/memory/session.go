// Package memory provides in-process implementations of the session store and
// the feed registry, used when the demo runs without external storage and in
// tests.
package memory

import (
	"context"
	"sync"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

type SessionStorage struct {
	mu     sync.RWMutex
	user   *models.User
	tokens map[string]string
}

func NewSessionStorage() *SessionStorage {
	return &SessionStorage{tokens: make(map[string]string)}
}

func (s *SessionStorage) Restore(_ context.Context) (models.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false, nil
	}

	return *s.user, true, nil
}

func (s *SessionStorage) Save(_ context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := user
	s.user = &stored

	return nil
}

func (s *SessionStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil

	return nil
}

func (s *SessionStorage) StoreRefreshToken(_ context.Context, userID, refreshToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tokens[refreshToken] = userID

	return nil
}
