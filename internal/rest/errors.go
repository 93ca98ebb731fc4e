package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// respondError writes err as a fail envelope, or as the generic error envelope
// when it is not a known client fault.
func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		c.JSON(code, response.Error())
		return
	}

	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(code, response.Fail(vErr.Message()))
		return
	}
	c.JSON(code, response.Fail(err.Error()))
}

// getStatusCode will get the code of the error from the domain usecases
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrBadParamInput):
		logrus.Debug(err)
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		logrus.Debug(err)
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		logrus.Debug(err)
		return http.StatusForbidden
	case errors.Is(err, domain.ErrConflict):
		logrus.Warn(err)
		return http.StatusConflict
	default:
		logrus.Error(err)
		return http.StatusInternalServerError
	}
}

// userID returns the id set by middleware.AuthMiddleware.
func userID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
}
