package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/domain/models"
)

type SessionStoreMock struct {
	mock.Mock
}

func (m *SessionStoreMock) Restore(ctx context.Context) (models.User, bool, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.User), args.Bool(1), args.Error(2)
}

func (m *SessionStoreMock) Save(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *SessionStoreMock) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type TokenStoreMock struct {
	mock.Mock
}

func (m *TokenStoreMock) StoreRefreshToken(ctx context.Context, userID, refreshToken string) error {
	args := m.Called(ctx, userID, refreshToken)
	return args.Error(0)
}
