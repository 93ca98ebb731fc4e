package redis

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

func sampleDetail() domain.ThreadDetail {
	return domain.ThreadDetail{
		ID:       "thread-123",
		Title:    "a thread",
		Body:     "a body",
		Date:     "2021-08-08T07:19:09.775Z",
		Username: "dicoding",
		Comments: []domain.CommentDetail{
			{
				ID:        "comment-123",
				Username:  "johndoe",
				Date:      "2021-08-08T07:22:33.555Z",
				Content:   domain.DeletedCommentContent,
				Replies:   []domain.ReplyDetail{},
				LikeCount: 0,
			},
		},
	}
}

func TestThreadDetailCacheGet(t *testing.T) {
	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewThreadDetailCache(client, time.Minute)

		data, err := json.Marshal(sampleDetail())
		require.NoError(t, err)
		mock.ExpectGet("thread:detail:thread-123").SetVal(string(data))

		got, err := cache.Get(context.Background(), "thread-123")
		require.NoError(t, err)
		assert.Equal(t, sampleDetail(), got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewThreadDetailCache(client, time.Minute)

		mock.ExpectGet("thread:detail:thread-123").RedisNil()

		_, err := cache.Get(context.Background(), "thread-123")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("redis down", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		cache := NewThreadDetailCache(client, time.Minute)

		mock.ExpectGet("thread:detail:thread-123").SetErr(errors.New("connection refused"))

		_, err := cache.Get(context.Background(), "thread-123")
		assert.EqualError(t, err, "connection refused")
		assert.NotErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestThreadDetailCacheSet(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewThreadDetailCache(client, time.Minute)

	detail := sampleDetail()
	data, err := json.Marshal(detail)
	require.NoError(t, err)
	mock.ExpectSet("thread:detail:thread-123", data, time.Minute).SetVal("OK")

	require.NoError(t, cache.Set(context.Background(), detail))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadDetailCacheDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	cache := NewThreadDetailCache(client, time.Minute)

	mock.ExpectDel("thread:detail:thread-123").SetVal(1)

	require.NoError(t, cache.Delete(context.Background(), "thread-123"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
