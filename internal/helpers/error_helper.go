package helpers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func HTTPStatusText(code int) string {
	return http.StatusText(code)
}

func RespondWithError(c *gin.Context, statusCode int, customMessage string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   HTTPStatusText(statusCode),
		Message: customMessage,
	})
}

// RespondWithFieldErrors reports per-field validation failures alongside the
// values as submitted, so the caller can re-render the form.
func RespondWithFieldErrors(c *gin.Context, statusCode int, fieldErrors map[string][]string, submitted interface{}) {
	c.JSON(statusCode, gin.H{
		"error":     HTTPStatusText(statusCode),
		"errors":    fieldErrors,
		"submitted": submitted,
	})
}
