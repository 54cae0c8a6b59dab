package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

type FeedRepositoryMock struct {
	mock.Mock
}

func (m *FeedRepositoryMock) ListFeedItems(ctx context.Context) ([]models.FeedItem, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.FeedItem), args.Error(1)
}

func (m *FeedRepositoryMock) AddFeedItem(ctx context.Context, item models.FeedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
