package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

func TestSessionStorage_Lifecycle(t *testing.T) {
	ctx := context.Background()
	storage := NewSessionStorage()

	_, found, err := storage.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, found, "empty store restores nothing")

	require.NoError(t, storage.Save(ctx, models.User{ID: "u1", Username: "RootDown"}))

	user, found, err := storage.Restore(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "RootDown", user.Username)

	// A second save overwrites; there is only ever one record.
	require.NoError(t, storage.Save(ctx, models.User{ID: "u2", Username: "Flora"}))

	user, _, err = storage.Restore(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Flora", user.Username)

	require.NoError(t, storage.Clear(ctx))

	_, found, err = storage.Restore(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestFeedStorage_PrependsNewItems(t *testing.T) {
	ctx := context.Background()
	storage := NewFeedStorage([]models.FeedItem{{ID: "f1"}, {ID: "f2"}})

	require.NoError(t, storage.AddFeedItem(ctx, models.FeedItem{ID: "f3"}))

	items, err := storage.ListFeedItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "f3", items[0].ID, "newest entry first")
	assert.Equal(t, "f1", items[1].ID)
}

func TestFeedStorage_ListReturnsCopy(t *testing.T) {
	ctx := context.Background()
	storage := NewFeedStorage([]models.FeedItem{{ID: "f1", Title: "original"}})

	items, err := storage.ListFeedItems(ctx)
	require.NoError(t, err)

	items[0].Title = "mutated"

	again, err := storage.ListFeedItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, "original", again[0].Title)
}
