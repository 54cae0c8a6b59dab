// Package redis persists the single user session record under a fixed key,
// mirroring the durable local storage of the reference client.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

// sessionKey is the single storage slot; at most one user record is ever
// persisted.
const sessionKey = "fttf:session:user"

type Storage struct {
	db         *redis.Client
	log        *slog.Logger
	refreshTTL time.Duration
}

func InitRedis(log *slog.Logger, connStr, redisPassword, redisDBNumber string, refreshTTL time.Duration) (*Storage, error) {
	dbNumber, err := strconv.Atoi(redisDBNumber)
	if err != nil {
		return nil, err
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     connStr,
		Password: redisPassword,
		DB:       dbNumber,
	})

	return &Storage{db: redisClient, log: log, refreshTTL: refreshTTL}, nil
}

// Restore reads the stored session record. An absent or malformed record is
// reported as not found, never as an error: a corrupt session degrades to
// logged-out.
func (s *Storage) Restore(ctx context.Context) (models.User, bool, error) {
	const op = "repository.Redis.Restore"

	raw, err := s.db.Get(ctx, sessionKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("%s: %w", op, err)
	}

	user, ok := s.decodeSession(raw)

	return user, ok, nil
}

// decodeSession parses a stored record. Malformed bytes are reported as
// absent, not as an error: a corrupt session degrades to logged-out and the
// next login overwrites the slot.
func (s *Storage) decodeSession(raw []byte) (models.User, bool) {
	const op = "repository.Redis.decodeSession"

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn("discarding malformed session record", slog.String("op", op), slog.String("error", err.Error()))
		return models.User{}, false
	}

	return user, true
}

// Save serializes and overwrites the stored record.
func (s *Storage) Save(ctx context.Context, user models.User) error {
	const op = "repository.Redis.Save"

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.db.Set(ctx, sessionKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Clear removes the stored record (logout).
func (s *Storage) Clear(ctx context.Context) error {
	const op = "repository.Redis.Clear"

	if err := s.db.Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) StoreRefreshToken(ctx context.Context, userID, refreshToken string) error {
	const op = "repository.Redis.StoreRefreshToken"

	if err := s.db.Set(ctx, refreshToken, userID, s.refreshTTL).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
