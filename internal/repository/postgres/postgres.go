// Package postgres backs the feed registry with a durable table, for deploys
// where the archive library should survive restarts. Ordering relies on an
// insertion sequence so "most recent first" holds even for same-day items.
package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/repository"
)

type Storage struct {
	db *pgxpool.Pool
}

func NewPostgres(ctx context.Context, conn string) (*Storage, error) {
	const op = "repository.Postgres.New"

	db, err := pgxpool.New(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) ListFeedItems(ctx context.Context) ([]models.FeedItem, error) {
	const op = "repository.Postgres.ListFeedItems"

	sql, args, err := squirrel.Select("id", "type", "title", "content", "thumbnail", "playback_id", "published_on", "series").
		From("feed_items").
		OrderBy("seq DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", op, repository.ErrFeedUnavailable, err)
	}
	defer rows.Close()

	var items []models.FeedItem
	for rows.Next() {
		var item models.FeedItem
		if err := rows.Scan(&item.ID, &item.Type, &item.Title, &item.Content, &item.Thumbnail, &item.PlaybackID, &item.Date, &item.Series); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func (s *Storage) AddFeedItem(ctx context.Context, item models.FeedItem) error {
	const op = "repository.Postgres.AddFeedItem"

	sql, args, err := squirrel.Insert("feed_items").
		Columns("id", "type", "title", "content", "thumbnail", "playback_id", "published_on", "series").
		Values(item.ID, item.Type, item.Title, item.Content, item.Thumbnail, item.PlaybackID, item.Date, item.Series).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := s.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%s: %w: %w", op, repository.ErrFeedUnavailable, err)
	}

	return nil
}

func (s *Storage) Close() error {
	s.db.Close()
	return nil
}
