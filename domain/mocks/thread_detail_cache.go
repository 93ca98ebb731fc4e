package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ThreadDetailCache struct {
	mock.Mock
}

func (m *ThreadDetailCache) Get(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.ThreadDetail), args.Error(1)
}

func (m *ThreadDetailCache) Set(ctx context.Context, detail domain.ThreadDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *ThreadDetailCache) Delete(ctx context.Context, threadID string) error {
	args := m.Called(ctx, threadID)
	return args.Error(0)
}

var _ domain.ThreadDetailCache = (*ThreadDetailCache)(nil)
