package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"media-catalog-api/internal/auth"
	"media-catalog-api/internal/response"
)

const (
	userIDKey   = "user_id"
	userNameKey = "login"
)

// TokenParser validates access tokens, implemented by auth.TokenService
type TokenParser interface {
	Parse(tokenString string) (*auth.Claims, error)
}

// Auth requires a valid bearer token and stores the user id and login in the context
func Auth(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Authorization header is required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], auth.TokenType) {
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			_ = c.Error(err)
			response.AbortWithError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userNameKey, claims.Login)
		c.Next()
	}
}

// GetUserID returns the authenticated user id set by Auth
func GetUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
