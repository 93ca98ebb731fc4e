package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// UserIDKey is the gin context key holding the authenticated user id.
const UserIDKey = "user_id"

// Claims is the access token payload. ID is the user id; older tokens may
// carry it in the subject instead.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) userID() string {
	if c.ID != "" {
		return c.ID
	}
	return c.Subject
}

// AuthMiddleware verifies the HS256 bearer token and stores the user id under UserIDKey.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		authz := strings.TrimSpace(c.GetHeader("Authorization"))
		if authz == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
			return
		}
		parts := strings.SplitN(authz, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Missing authentication"))
			return
		}

		claims, err := parseToken(strings.TrimSpace(parts[1]), key)
		if err != nil || claims.userID() == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail("Invalid token"))
			return
		}

		c.Set(UserIDKey, claims.userID())
		c.Next()
	}
}

func parseToken(tokenString string, key []byte) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return key, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
