package mysql

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sqlmock "gopkg.in/DATA-DOG/go-sqlmock.v1"

	"github.com/Guyuepp/forum-api/domain"
)

func TestThreadRepositoryAddThread(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewThreadRepository(db, fixedID, fixedClock)

	mock.ExpectExec("INSERT INTO `threads`").
		WillReturnResult(sqlmock.NewResult(0, 1))

	added, err := repo.AddThread(context.Background(), domain.AddThread{Title: "a thread", Body: "a body"}, "user-123")
	require.NoError(t, err)
	assert.Equal(t, domain.AddedThread{ID: "thread-123", Title: "a thread", Owner: "user-123"}, added)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestThreadRepositoryGetThreadByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewThreadRepository(db, fixedID, fixedClock)

		rows := sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}).
			AddRow("thread-123", "a thread", "a body", "2021-08-08T07:19:09.775Z", "dicoding")
		mock.ExpectQuery("SELECT threads.id, threads.title, threads.body, threads.date, users.username FROM `threads`").
			WillReturnRows(rows)

		detail, err := repo.GetThreadByID(context.Background(), "thread-123")
		require.NoError(t, err)
		assert.Equal(t, "thread-123", detail.ID)
		assert.Equal(t, "dicoding", detail.Username)
		assert.Empty(t, detail.Comments)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT threads.id").
			WillReturnRows(sqlmock.NewRows([]string{"id", "title", "body", "date", "username"}))

		_, err := repo.GetThreadByID(context.Background(), "thread-xxx")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("storage failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewThreadRepository(db, fixedID, fixedClock)

		mock.ExpectQuery("SELECT threads.id").WillReturnError(errors.New("boom"))

		_, err := repo.GetThreadByID(context.Background(), "thread-123")
		assert.EqualError(t, err, "boom")
	})
}

func TestThreadRepositoryFetchIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewThreadRepository(db, fixedID, fixedClock)

	mock.ExpectQuery("SELECT `id` FROM `threads`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("thread-1").AddRow("thread-2"))

	ids, err := repo.FetchIDs(context.Background(), "", 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"thread-1", "thread-2"}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}
