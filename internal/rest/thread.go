package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for threads
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// AddThread handles POST /threads
func (h *ThreadHandler) AddThread(c *gin.Context) {
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
	thread, err := domain.NewAddThread(payload)
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), thread, uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(gin.H{"addedThread": added}))
}

// GetThreadDetail handles GET /threads/:threadId
func (h *ThreadHandler) GetThreadDetail(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(gin.H{"thread": detail}))
}
