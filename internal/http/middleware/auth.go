package middleware

import (
	"net/http"
	"strings"

	"carrental/internal/domain"
	"carrental/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	userIDKey   = "userID"
	userRoleKey = "userRole"
)

// RequireAuth verifies the bearer token, resolves it to a stored user, and
// attaches the identity to the request context. Any failure (missing header,
// bad signature, expired token, deleted user) aborts the request before the
// handler runs.
func RequireAuth(secret []byte, users repositories.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			abortUnauthorized(c, "not authorized")
			return
		}
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

		token, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			abortUnauthorized(c, "not authorized")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortUnauthorized(c, "not authorized")
			return
		}
		userID := claimInt64(claims, "user_id")
		if userID <= 0 {
			abortUnauthorized(c, "not authorized")
			return
		}

		// The token may outlive the account; a deleted user must not pass.
		user, err := users.GetByID(userID)
		if err != nil {
			if domain.IsNotFound(err) {
				abortUnauthorized(c, "user not found")
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"error": "failed to resolve user",
				"code":  "internal_error",
			})
			return
		}

		c.Set(userIDKey, user.ID)
		c.Set(userRoleKey, user.Role)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": msg,
		"code":  "unauthorized",
	})
}

func claimInt64(claims jwt.MapClaims, key string) int64 {
	switch v := claims[key].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	}
	return 0
}

// GetUserID extracts the authenticated user id from gin context.
func GetUserID(c *gin.Context) int64 {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			return id
		}
	}
	return 0
}

// GetUserRole extracts the authenticated user role from gin context.
func GetUserRole(c *gin.Context) string {
	return c.GetString(userRoleKey)
}
