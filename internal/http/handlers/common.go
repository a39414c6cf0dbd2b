package handlers

import (
	"net/http"

	"backend/internal/http/middleware"
	"backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// NoStore marks dashboard read responses as uncacheable; widgets must never
// be served stale by an intermediary.
func NoStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
}

// RespondError sends standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"message":    message,
		"request_id": middleware.GetRequestID(c),
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

// logEndpointError records a swallowed store failure with the endpoint name
// before the handler falls back to its shape-preserving payload.
func logEndpointError(c *gin.Context, endpoint string, err error) {
	utils.LogEvent(middleware.GetRequestID(c), "http", endpoint, err.Error())
}
