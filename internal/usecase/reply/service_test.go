package reply_test

import (
	"context"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
	"github.com/Guyuepp/forum-api/internal/usecase/reply"
)

func TestAddReply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.ReplyRepository)
		cache := new(mocks.ThreadDetailCache)
		svc := reply.NewService(repo, cache)

		payload := domain.AddReply{Content: faker.Sentence()}
		added := domain.AddedReply{ID: "reply-123", Content: payload.Content, Owner: "user-123"}
		repo.On("AddReply", mock.Anything, payload, "thread-123", "comment-123", "user-123").Return(added, nil).Once()
		cache.On("Delete", mock.Anything, "thread-123").Return(nil).Once()

		got, err := svc.AddReply(context.Background(), payload, "thread-123", "comment-123", "user-123")
		require.NoError(t, err)
		assert.Equal(t, added, got)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("unknown comment", func(t *testing.T) {
		repo := new(mocks.ReplyRepository)
		svc := reply.NewService(repo, nil)

		repo.On("AddReply", mock.Anything, mock.Anything, "thread-123", "comment-xxx", "user-123").
			Return(domain.AddedReply{}, domain.NewNotFoundError(domain.MsgReplyParentInvalid))

		_, err := svc.AddReply(context.Background(), domain.AddReply{Content: "x"}, "thread-123", "comment-xxx", "user-123")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "komentar atau thread invalid")
	})
}

func TestRemoveReply(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo := new(mocks.ReplyRepository)
		cache := new(mocks.ThreadDetailCache)
		svc := reply.NewService(repo, cache)

		repo.On("RemoveReplyByID", mock.Anything, "thread-123", "comment-123", "reply-123", "user-123").Return(nil)
		cache.On("Delete", mock.Anything, "thread-123").Return(nil).Once()

		require.NoError(t, svc.RemoveReply(context.Background(), "thread-123", "comment-123", "reply-123", "user-123"))
		cache.AssertExpectations(t)
	})

	t.Run("forbidden", func(t *testing.T) {
		repo := new(mocks.ReplyRepository)
		cache := new(mocks.ThreadDetailCache)
		svc := reply.NewService(repo, cache)

		repo.On("RemoveReplyByID", mock.Anything, "thread-123", "comment-123", "reply-123", "user-456").
			Return(domain.NewAuthorizationError(domain.MsgReplyNotOwned))

		err := svc.RemoveReply(context.Background(), "thread-123", "comment-123", "reply-123", "user-456")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
