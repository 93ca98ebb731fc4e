package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ThreadRepository struct {
	mock.Mock
}

func (m *ThreadRepository) AddThread(ctx context.Context, thread domain.AddThread, owner string) (domain.AddedThread, error) {
	args := m.Called(ctx, thread, owner)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadRepository) GetThreadByID(ctx context.Context, id string) (domain.ThreadDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ThreadDetail), args.Error(1)
}

func (m *ThreadRepository) FetchIDs(ctx context.Context, cursor string, limit int) ([]string, error) {
	args := m.Called(ctx, cursor, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

var _ domain.ThreadRepository = (*ThreadRepository)(nil)
