package unit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/dto"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/tests/mocks"
)

func fixedNow() time.Time {
	return time.Date(2025, 11, 14, 22, 0, 0, 0, time.UTC)
}

func TestFeedService_Add_ResolvesPlaybackID(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.FeedRepositoryMock)
	service := services.NewFeedService(slog.Default(), repo, idgen.NewSequence("f"), fixedNow)

	var added models.FeedItem
	repo.On("AddFeedItem", ctx, mock.AnythingOfType("models.FeedItem")).
		Run(func(args mock.Arguments) { added = args.Get(1).(models.FeedItem) }).
		Return(nil).Once()

	// Act
	item, err := service.Add(ctx, dto.FeedItemRequest{
		Type:       "video",
		Title:      "Series 4: The Return",
		PlaybackID: "8b3bdq",
		Body:       "ignored when a playback id is present",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://livepeercdn.studio/hls/8b3bdq/index.m3u8", item.Content)
	assert.Equal(t, "2025-11-14", item.Date)
	assert.Equal(t, "Series 4", item.Series, "default series applied")
	assert.Equal(t, added, item)
	repo.AssertExpectations(t)
}

func TestFeedService_Add_TextBody(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.FeedRepositoryMock)
	service := services.NewFeedService(slog.Default(), repo, idgen.NewSequence("f"), fixedNow)

	repo.On("AddFeedItem", ctx, mock.AnythingOfType("models.FeedItem")).
		Return(nil).Once()

	// Act
	item, err := service.Add(ctx, dto.FeedItemRequest{
		Type:   "text",
		Title:  "Studio notes",
		Body:   "Rolling basslines all week.",
		Series: "Series 5",
	})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Rolling basslines all week.", item.Content)
	assert.Equal(t, "Series 5", item.Series)
}

func TestFeedService_List_PassesThrough(t *testing.T) {
	// Arrange
	ctx := context.Background()
	repo := new(mocks.FeedRepositoryMock)
	service := services.NewFeedService(slog.Default(), repo, idgen.NewSequence("f"), fixedNow)

	stored := []models.FeedItem{{ID: "f2"}, {ID: "f1"}}
	repo.On("ListFeedItems", ctx).Return(stored, nil).Once()

	// Act
	items, err := service.List(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, stored, items)
}
