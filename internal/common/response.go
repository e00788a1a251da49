package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Success bodies are the bare resource (or array), error bodies are
// {"error": message}. No envelope in either direction.

// ErrorBody is the shape of every error response
type ErrorBody struct {
	Error string `json:"error"`
}

// Success returns the resource as-is
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error returns an error JSON response
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// Unauthorized returns a 401 error response
func Unauthorized(c *gin.Context) {
	Error(c, http.StatusUnauthorized, "인증이 필요합니다")
}

// NotFound returns a 404 error response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "리소스를 찾을 수 없습니다"
	}
	Error(c, http.StatusNotFound, message)
}

// ServerError returns a 500 error response. Internal details are logged by
// the caller, never exposed in the body.
func ServerError(c *gin.Context, message string) {
	if message == "" {
		message = "서버 오류가 발생했습니다"
	}
	Error(c, http.StatusInternalServerError, message)
}
