package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type CommentRepository struct {
	mock.Mock
}

func (m *CommentRepository) AddComment(ctx context.Context, comment domain.AddComment, threadID, owner string) (domain.AddedComment, error) {
	args := m.Called(ctx, comment, threadID, owner)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.CommentRow, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentRow), args.Error(1)
}

func (m *CommentRepository) RemoveCommentByID(ctx context.Context, threadID, commentID, userID string) error {
	args := m.Called(ctx, threadID, commentID, userID)
	return args.Error(0)
}

func (m *CommentRepository) GetCommentLikesCountByCommentID(ctx context.Context, commentID string) (int, error) {
	args := m.Called(ctx, commentID)
	return args.Int(0), args.Error(1)
}

func (m *CommentRepository) AddCommentLike(ctx context.Context, threadID, commentID, userID string) error {
	args := m.Called(ctx, threadID, commentID, userID)
	return args.Error(0)
}

func (m *CommentRepository) RemoveCommentLike(ctx context.Context, threadID, commentID, userID string) error {
	args := m.Called(ctx, threadID, commentID, userID)
	return args.Error(0)
}

var _ domain.CommentRepository = (*CommentRepository)(nil)
