package rest_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/domain/mocks"
	"github.com/Guyuepp/forum-api/internal/rest"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/request"
)

const secret = "test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type handlerSuite struct {
	threads  *mocks.ThreadUsecase
	comments *mocks.CommentUsecase
	replies  *mocks.ReplyUsecase
	engine   *gin.Engine
}

func newHandlerSuite() *handlerSuite {
	s := &handlerSuite{
		threads:  new(mocks.ThreadUsecase),
		comments: new(mocks.CommentUsecase),
		replies:  new(mocks.ReplyUsecase),
		engine:   gin.New(),
	}
	rest.RegisterRoutes(s.engine, middleware.AuthMiddleware(secret),
		rest.NewThreadHandler(s.threads), rest.NewCommentHandler(s.comments), rest.NewReplyHandler(s.replies))
	return s
}

func bearer(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &middleware.Claims{ID: userID}).SignedString([]byte(secret))
	require.NoError(t, err)
	return "Bearer " + token
}

func (s *handlerSuite) do(t *testing.T, method, path, body, userID string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", bearer(t, userID))
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	return rec, decoded
}

func TestAddThreadHandler(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		s := newHandlerSuite()
		added := domain.AddedThread{ID: "thread-123", Title: "a thread", Owner: "user-123"}
		s.threads.On("AddThread", mock.Anything, domain.AddThread{Title: "a thread", Body: "a body"}, "user-123").Return(added, nil)

		rec, body := s.do(t, http.MethodPost, "/threads", `{"title":"a thread","body":"a body"}`, "user-123")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "success", body["status"])
		data := body["data"].(map[string]any)["addedThread"].(map[string]any)
		assert.Equal(t, "thread-123", data["id"])
		assert.Equal(t, "user-123", data["owner"])
	})

	t.Run("missing property", func(t *testing.T) {
		s := newHandlerSuite()
		rec, body := s.do(t, http.MethodPost, "/threads", `{"title":"a thread"}`, "user-123")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "fail", body["status"])
		assert.Equal(t, "tidak dapat membuat thread baru karena properti yang dibutuhkan tidak ada", body["message"])
	})

	t.Run("empty body", func(t *testing.T) {
		s := newHandlerSuite()
		rec, _ := s.do(t, http.MethodPost, "/threads", "", "user-123")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("wrong type", func(t *testing.T) {
		s := newHandlerSuite()
		rec, body := s.do(t, http.MethodPost, "/threads", `{"title":123,"body":"a body"}`, "user-123")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "tidak dapat membuat thread baru karena tipe data tidak sesuai", body["message"])
	})

	t.Run("no token", func(t *testing.T) {
		s := newHandlerSuite()
		rec, body := s.do(t, http.MethodPost, "/threads", `{"title":"a","body":"b"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Missing authentication", body["message"])
		s.threads.AssertNotCalled(t, "AddThread", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("server failure hides the cause", func(t *testing.T) {
		s := newHandlerSuite()
		s.threads.On("AddThread", mock.Anything, mock.Anything, mock.Anything).
			Return(domain.AddedThread{}, errors.New("dial tcp: connection refused"))

		rec, body := s.do(t, http.MethodPost, "/threads", `{"title":"a","body":"b"}`, "user-123")
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "error", body["status"])
		assert.Equal(t, "terjadi kegagalan pada server kami", body["message"])
	})
}

func TestGetThreadDetailHandler(t *testing.T) {
	t.Run("ok without auth", func(t *testing.T) {
		s := newHandlerSuite()
		s.threads.On("GetThreadDetail", mock.Anything, "thread-123").Return(domain.ThreadDetail{
			ID: "thread-123", Title: "t", Body: "b", Date: "2021-08-08T07:19:09.775Z", Username: "dicoding",
			Comments: []domain.CommentDetail{},
		}, nil)

		rec, body := s.do(t, http.MethodGet, "/threads/thread-123", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		thread := body["data"].(map[string]any)["thread"].(map[string]any)
		assert.Equal(t, "dicoding", thread["username"])
		assert.Equal(t, []any{}, thread["comments"])
	})

	t.Run("not found", func(t *testing.T) {
		s := newHandlerSuite()
		s.threads.On("GetThreadDetail", mock.Anything, "thread-xxx").
			Return(domain.ThreadDetail{}, domain.NewNotFoundError(domain.MsgThreadNotFound))

		rec, body := s.do(t, http.MethodGet, "/threads/thread-xxx", "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "fail", body["status"])
		assert.Equal(t, domain.MsgThreadNotFound, body["message"])
	})
}

func TestCommentHandlers(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		s := newHandlerSuite()
		s.comments.On("AddComment", mock.Anything, domain.AddComment{Content: "a comment"}, "thread-123", "user-123").
			Return(domain.AddedComment{ID: "comment-123", Content: "a comment", Owner: "user-123"}, nil)

		rec, body := s.do(t, http.MethodPost, "/threads/thread-123/comments", `{"content":"a comment"}`, "user-123")
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, body["data"].(map[string]any), "addedComment")
	})

	t.Run("remove forbidden", func(t *testing.T) {
		s := newHandlerSuite()
		s.comments.On("RemoveComment", mock.Anything, "thread-123", "comment-123", "user-456").
			Return(domain.NewAuthorizationError(domain.MsgCommentNotOwned))

		rec, body := s.do(t, http.MethodDelete, "/threads/thread-123/comments/comment-123", "", "user-456")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Anda bukan pemilik komentar tersebut", body["message"])
	})

	t.Run("remove", func(t *testing.T) {
		s := newHandlerSuite()
		s.comments.On("RemoveComment", mock.Anything, "thread-123", "comment-123", "user-123").Return(nil)

		rec, body := s.do(t, http.MethodDelete, "/threads/thread-123/comments/comment-123", "", "user-123")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "success", body["status"])
		assert.Equal(t, "komentar berhasil dihapus", body["message"])
	})

	t.Run("like", func(t *testing.T) {
		s := newHandlerSuite()
		s.comments.On("LikeUnlikeComment", mock.Anything, "thread-123", "comment-123", "user-123").
			Return(domain.MsgCommentLiked, nil)

		rec, body := s.do(t, http.MethodPut, "/threads/thread-123/comments/comment-123/likes", "", "user-123")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "berhasil menyukai komentar", body["message"])
	})
}

func TestReplyHandlers(t *testing.T) {
	t.Run("add to unknown comment", func(t *testing.T) {
		s := newHandlerSuite()
		s.replies.On("AddReply", mock.Anything, domain.AddReply{Content: "r"}, "thread-123", "comment-xxx", "user-123").
			Return(domain.AddedReply{}, domain.NewNotFoundError(domain.MsgReplyParentInvalid))

		rec, body := s.do(t, http.MethodPost, "/threads/thread-123/comments/comment-xxx/replies", `{"content":"r"}`, "user-123")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "komentar atau thread invalid", body["message"])
	})

	t.Run("remove", func(t *testing.T) {
		s := newHandlerSuite()
		s.replies.On("RemoveReply", mock.Anything, "thread-123", "comment-123", "reply-123", "user-123").Return(nil)

		rec, body := s.do(t, http.MethodDelete, "/threads/thread-123/comments/comment-123/replies/reply-123", "", "user-123")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "balasan berhasil dihapus", body["message"])
	})
}

func TestMalformedBodyGetsFixedMessage(t *testing.T) {
	paths := []string{
		"/threads",
		"/threads/thread-123/comments",
		"/threads/thread-123/comments/comment-123/replies",
	}
	bodies := []string{`{"title":`, `[1,2,3]`, `"just a string"`}

	for _, path := range paths {
		for _, raw := range bodies {
			t.Run(path+" "+raw, func(t *testing.T) {
				s := newHandlerSuite()
				rec, body := s.do(t, http.MethodPost, path, raw, "user-123")
				assert.Equal(t, http.StatusBadRequest, rec.Code)
				assert.Equal(t, "fail", body["status"])
				assert.Equal(t, request.MsgMalformedPayload, body["message"])
			})
		}
	}
}
