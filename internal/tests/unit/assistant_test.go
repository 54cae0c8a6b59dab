package unit

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/services"
)

func TestAssistantService_Ask_KeywordMatch(t *testing.T) {
	service := services.NewAssistantService(slog.Default(), time.Millisecond)

	reply, err := service.Ask(context.Background(), "RootDown", "How do POINTS work?")

	require.NoError(t, err)
	assert.Contains(t, reply, "PTS")
}

func TestAssistantService_Ask_FallbackReply(t *testing.T) {
	service := services.NewAssistantService(slog.Default(), time.Millisecond)

	reply, err := service.Ask(context.Background(), "RootDown", "what is the meaning of life")

	require.NoError(t, err)
	assert.Contains(t, reply, "I'm not sure about that one")
}

func TestAssistantService_Ask_WaitsForDelay(t *testing.T) {
	delay := 50 * time.Millisecond
	service := services.NewAssistantService(slog.Default(), delay)

	start := time.Now()
	_, err := service.Ask(context.Background(), "RootDown", "shop")

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), delay, "reply is never delivered early")
}

func TestAssistantService_Ask_CancelledContext(t *testing.T) {
	service := services.NewAssistantService(slog.Default(), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := service.Ask(ctx, "RootDown", "shop")

	assert.ErrorIs(t, err, context.Canceled)
}

func TestAssistantService_Greeting(t *testing.T) {
	service := services.NewAssistantService(slog.Default(), time.Millisecond)

	assert.Contains(t, service.Greeting("RootDown"), "RootDown")
}
