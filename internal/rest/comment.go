package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

// AddComment handles POST /threads/:threadId/comments
func (h *commentHandler) AddComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	payload, err := request.Payload(c)
	if err != nil {
		respondError(c, err)
		return
	}
	comment, err := domain.NewAddComment(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), comment, c.Param("threadId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"addedComment": added}))
}

// RemoveComment handles DELETE /threads/:threadId/comments/:commentId
func (h *commentHandler) RemoveComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	err := h.Service.RemoveComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(domain.MsgCommentRemoved))
}

// LikeUnlikeComment handles PUT /threads/:threadId/comments/:commentId/likes
func (h *commentHandler) LikeUnlikeComment(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	msg, err := h.Service.LikeUnlikeComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(msg))
}
