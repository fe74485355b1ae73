package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/clubcaddy/backend/services"
)

const (
	userIDKey    = "user_id"
	userEmailKey = "user_email"
)

// RequireAuth rejects requests without a valid bearer token and stashes the
// authenticated user in the gin context.
func RequireAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortUnauthorized(c, "Missing or malformed Authorization header")
			return
		}

		claims, err := tokens.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			abortUnauthorized(c, "Invalid token claims")
			return
		}
		c.Set(userIDKey, sub)
		if email, ok := claims["email"].(string); ok {
			c.Set(userEmailKey, email)
		}
		c.Next()
	}
}

// GetUserID returns the authenticated user's id set by RequireAuth.
func GetUserID(c *gin.Context) (string, error) {
	id := c.GetString(userIDKey)
	if id == "" {
		return "", fmt.Errorf("no authenticated user in context")
	}
	return id, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success":    false,
		"status":     "failure",
		"message":    message,
		"data":       nil,
		"statusCode": http.StatusUnauthorized,
	})
}
