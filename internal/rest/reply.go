package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

// AddReply handles POST /threads/:threadId/comments/:commentId/replies
func (h *replyHandler) AddReply(c *gin.Context) {
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
	reply, err := domain.NewAddReply(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddReply(c.Request.Context(), reply, c.Param("threadId"), c.Param("commentId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"addedReply": added}))
}

// RemoveReply handles DELETE /threads/:threadId/comments/:commentId/replies/:replyId
func (h *replyHandler) RemoveReply(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		abortUnauthenticated(c)
		return
	}

	err := h.Service.RemoveReply(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), c.Param("replyId"), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(domain.MsgReplyRemoved))
}
