package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/monsieurbulb/Four-To-The-Floor/internal/identity"
)

type ProviderMock struct {
	mock.Mock
}

func (m *ProviderMock) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *ProviderMock) UserInfo(ctx context.Context) (identity.Claims, error) {
	args := m.Called(ctx)
	return args.Get(0).(identity.Claims), args.Error(1)
}

func (m *ProviderMock) AccountAddress(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
