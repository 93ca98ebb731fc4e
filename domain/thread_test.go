package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
)

func TestNewAddThread(t *testing.T) {
	t.Run("missing body", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{"title": "abc"})
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrBadParamInput)
		assert.EqualError(t, err, "ADD_THREAD.NOT_CONTAIN_NEEDED_PROPERTY")
	})

	t.Run("empty title counts as missing", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{"title": "", "body": "abc"})
		assert.True(t, domain.IsValidationKind(err, domain.MissingRequiredField))
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := domain.NewAddThread(domain.Payload{"title": 123, "body": true})
		assert.EqualError(t, err, "ADD_THREAD.NOT_MEET_DATA_TYPE_SPECIFICATION")
	})

	t.Run("success", func(t *testing.T) {
		thread, err := domain.NewAddThread(domain.Payload{"title": "a thread", "body": "a body"})
		require.NoError(t, err)
		assert.Equal(t, domain.AddThread{Title: "a thread", Body: "a body"}, thread)
	})
}

func TestNewAddedThread(t *testing.T) {
	_, err := domain.NewAddedThread(domain.Payload{"id": "thread-123", "title": "abc"})
	assert.True(t, domain.IsValidationKind(err, domain.MissingRequiredField))

	_, err = domain.NewAddedThread(domain.Payload{"id": 123, "title": "abc", "owner": "user-123"})
	assert.True(t, domain.IsValidationKind(err, domain.WrongType))

	added, err := domain.NewAddedThread(domain.Payload{"id": "thread-123", "title": "abc", "owner": "user-123"})
	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{ID: "thread-123", Title: "abc", Owner: "user-123"}, added)
}

func TestNewThreadDetail(t *testing.T) {
	base := func() domain.Payload {
		return domain.Payload{
			"id":       "thread-123",
			"title":    "a thread",
			"body":     "a body",
			"date":     "2021-08-08T07:19:09.775Z",
			"username": "dicoding",
		}
	}

	t.Run("missing field wins over wrong type", func(t *testing.T) {
		p := base()
		delete(p, "username")
		p["title"] = 123
		_, err := domain.NewThreadDetail(p)
		assert.True(t, domain.IsValidationKind(err, domain.MissingRequiredField))
	})

	t.Run("comments default to empty", func(t *testing.T) {
		detail, err := domain.NewThreadDetail(base())
		require.NoError(t, err)
		assert.NotNil(t, detail.Comments)
		assert.Empty(t, detail.Comments)
	})

	t.Run("comments must be a sequence of comment details", func(t *testing.T) {
		p := base()
		p["comments"] = "not a list"
		_, err := domain.NewThreadDetail(p)
		assert.True(t, domain.IsValidationKind(err, domain.WrongType))
	})

	t.Run("keeps provided comments", func(t *testing.T) {
		p := base()
		comments := []domain.CommentDetail{{ID: "comment-123", LikeCount: 2, Replies: []domain.ReplyDetail{}}}
		p["comments"] = comments
		detail, err := domain.NewThreadDetail(p)
		require.NoError(t, err)
		assert.Equal(t, comments, detail.Comments)
		assert.Equal(t, "dicoding", detail.Username)
	})
}
