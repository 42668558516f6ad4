package handlers

import (
	"net/http"

	intconfig "carrental/internal/config"
	"carrental/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

var appEnv intconfig.Env

func init() {
	// Sensible zero-config defaults for tests; main overrides via Configure.
	appEnv = intconfig.Env{
		JWTSecret:     "super-secret-key-change-me",
		Currency:      "Rs.",
		DriverDayRate: 500,
	}
}

// Configure injects runtime settings the handlers need (token secret,
// currency symbol, driver rate). Called once from the router.
func Configure(env intconfig.Env) {
	appEnv = env
}

func jwtSecret() []byte {
	return []byte(appEnv.JWTSecret)
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	reqID := middleware.GetRequestID(c)
	payload := gin.H{
		"message":    message,
		"request_id": reqID,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}
