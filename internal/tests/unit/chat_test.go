package unit

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/lib/idgen"
	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
)

func TestChatService_SeededRoom(t *testing.T) {
	service := services.NewChatService(slog.Default(), idgen.NewSequence("m"), nil)

	messages, err := service.List(context.Background())

	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.True(t, messages[0].IsSystem)
	assert.Equal(t, "Welcome to the stream.", messages[0].Text)
}

func TestChatService_PostAppends(t *testing.T) {
	ctx := context.Background()
	service := services.NewChatService(slog.Default(), idgen.NewSequence("m"), nil)

	msg, err := service.Post(ctx, "RootDown", "wheel it up")
	require.NoError(t, err)
	assert.Equal(t, "RootDown", msg.Username)

	messages, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, msg.ID, messages[len(messages)-1].ID)
}

func TestChatService_Delete_OwnMessageOnly(t *testing.T) {
	ctx := context.Background()
	service := services.NewChatService(slog.Default(), idgen.NewSequence("m"), nil)

	msg, err := service.Post(ctx, "RootDown", "wheel it up")
	require.NoError(t, err)

	err = service.Delete(ctx, msg.ID, models.User{Username: "Flora"})
	assert.ErrorIs(t, err, services.ErrMessageForbidden)

	err = service.Delete(ctx, msg.ID, models.User{Username: "RootDown"})
	assert.NoError(t, err)
}

func TestChatService_Delete_AdminDeletesAnything(t *testing.T) {
	ctx := context.Background()
	service := services.NewChatService(slog.Default(), idgen.NewSequence("m"), nil)

	msg, err := service.Post(ctx, "RootDown", "wheel it up")
	require.NoError(t, err)

	err = service.Delete(ctx, msg.ID, models.User{Username: "Core Team", IsAdmin: true})
	assert.NoError(t, err)

	err = service.Delete(ctx, msg.ID, models.User{IsAdmin: true})
	assert.ErrorIs(t, err, services.ErrMessageNotFound)
}
