package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/catalog"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/playback"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/metrics"
)

// FeedRepository is the ordered store of published content entries.
type FeedRepository interface {
	ListFeedItems(ctx context.Context) ([]models.FeedItem, error)
	AddFeedItem(ctx context.Context, item models.FeedItem) error
}

const defaultSeries = "Series 4"

// FeedService owns the archive library. Items are only ever created through
// the administrative add operation; there is no edit or delete path.
type FeedService struct {
	log  *slog.Logger
	repo FeedRepository
	ids  idgen.Generator
	now  func() time.Time
}

func NewFeedService(log *slog.Logger, repo FeedRepository, ids idgen.Generator, now func() time.Time) *FeedService {
	if now == nil {
		now = time.Now
	}

	return &FeedService{
		log:  log,
		repo: repo,
		ids:  ids,
		now:  now,
	}
}

// List returns the library most-recent-first.
func (s *FeedService) List(ctx context.Context) ([]models.FeedItem, error) {
	const op = "services.FeedService.List"

	items, err := s.repo.ListFeedItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// Add publishes a new entry at the head of the library. A playback id wins
// over a text body when both are supplied, matching the admin form.
func (s *FeedService) Add(ctx context.Context, req dto.FeedItemRequest) (models.FeedItem, error) {
	const op = "services.FeedService.Add"

	log := s.log.With(
		slog.String("op", op),
		slog.String("title", req.Title),
	)

	content := req.Body
	if req.PlaybackID != "" {
		content = playback.Resolve(req.PlaybackID)
	}

	series := req.Series
	if series == "" {
		series = defaultSeries
	}

	item := models.FeedItem{
		ID:         s.ids.NewID(),
		Type:       models.FeedType(req.Type),
		Title:      req.Title,
		Content:    content,
		Thumbnail:  catalog.PlaceholderThumbnail,
		PlaybackID: req.PlaybackID,
		Date:       s.now().Format("2006-01-02"),
		Series:     series,
	}

	if err := s.repo.AddFeedItem(ctx, item); err != nil {
		return models.FeedItem{}, fmt.Errorf("%s: %w", op, err)
	}

	metrics.RecordFeedItem()
	log.Info("feed item published", slog.String("id", item.ID), slog.String("type", req.Type))

	return item, nil
}
