package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Guyuepp/forum-api/domain"
)

type ThreadUsecase struct {
	mock.Mock
}

func (m *ThreadUsecase) AddThread(ctx context.Context, thread domain.AddThread, owner string) (domain.AddedThread, error) {
	args := m.Called(ctx, thread, owner)
	return args.Get(0).(domain.AddedThread), args.Error(1)
}

func (m *ThreadUsecase) GetThreadDetail(ctx context.Context, threadID string) (domain.ThreadDetail, error) {
	args := m.Called(ctx, threadID)
	return args.Get(0).(domain.ThreadDetail), args.Error(1)
}

func (m *ThreadUsecase) InitBloomFilter(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type CommentUsecase struct {
	mock.Mock
}

func (m *CommentUsecase) AddComment(ctx context.Context, comment domain.AddComment, threadID, owner string) (domain.AddedComment, error) {
	args := m.Called(ctx, comment, threadID, owner)
	return args.Get(0).(domain.AddedComment), args.Error(1)
}

func (m *CommentUsecase) RemoveComment(ctx context.Context, threadID, commentID, userID string) error {
	args := m.Called(ctx, threadID, commentID, userID)
	return args.Error(0)
}

func (m *CommentUsecase) LikeUnlikeComment(ctx context.Context, threadID, commentID, userID string) (string, error) {
	args := m.Called(ctx, threadID, commentID, userID)
	return args.String(0), args.Error(1)
}

type ReplyUsecase struct {
	mock.Mock
}

func (m *ReplyUsecase) AddReply(ctx context.Context, reply domain.AddReply, threadID, commentID, owner string) (domain.AddedReply, error) {
	args := m.Called(ctx, reply, threadID, commentID, owner)
	return args.Get(0).(domain.AddedReply), args.Error(1)
}

func (m *ReplyUsecase) RemoveReply(ctx context.Context, threadID, commentID, replyID, userID string) error {
	args := m.Called(ctx, threadID, commentID, replyID, userID)
	return args.Error(0)
}

var (
	_ domain.ThreadUsecase  = (*ThreadUsecase)(nil)
	_ domain.CommentUsecase = (*CommentUsecase)(nil)
	_ domain.ReplyUsecase   = (*ReplyUsecase)(nil)
)
