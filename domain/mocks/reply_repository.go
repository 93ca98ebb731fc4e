package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ReplyRepository struct {
	mock.Mock
}

func (m *ReplyRepository) AddReply(ctx context.Context, reply domain.AddReply, threadID, commentID, owner string) (domain.AddedReply, error) {
	args := m.Called(ctx, reply, threadID, commentID, owner)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReplyRow, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReplyRow), args.Error(1)
}

func (m *ReplyRepository) RemoveReplyByID(ctx context.Context, threadID, commentID, replyID, userID string) error {
	args := m.Called(ctx, threadID, commentID, replyID, userID)
	return args.Error(0)
}

var _ domain.ReplyRepository = (*ReplyRepository)(nil)
