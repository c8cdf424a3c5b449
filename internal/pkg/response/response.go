package response

import "github.com/gin-gonic/gin"

// Common error codes surfaced to clients.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeConflict      = "CONFLICT"
	CodeInvalidAction = "INVALID_ACTION"
	CodeInternalError = "INTERNAL_ERROR"
)

func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string, code string) {
	c.JSON(statusCode, gin.H{
		"error": message,
		"code":  code,
	})
}
