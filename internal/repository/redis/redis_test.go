package redis

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

func TestDecodeSession_MalformedRecordDegradesToLoggedOut(t *testing.T) {
	storage := &Storage{log: slog.Default()}

	for _, raw := range [][]byte{
		[]byte("not json at all"),
		[]byte("{truncated"),
		[]byte(`[]`),
		{0xff, 0xfe},
	} {
		user, ok := storage.decodeSession(raw)

		assert.False(t, ok, "malformed record %q must read as absent", raw)
		assert.Equal(t, models.User{}, user)
	}
}

func TestDecodeSession_RoundTripsStoredRecord(t *testing.T) {
	storage := &Storage{log: slog.Default()}

	stored := models.User{
		ID:       "u1",
		Username: "RootDown",
		Points:   150,
		Assets:   []models.Asset{{ID: "e1", Name: "Fire", Type: models.AssetEmoji, Quantity: 5}},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	user, ok := storage.decodeSession(raw)

	require.True(t, ok)
	assert.Equal(t, stored, user)
}
