package errors

import (
	"net/http"

	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For REST handlers:
//   - Use errors.InternalError(), errors.ValidationError(), etc.
//     They write the response and, for 5xx, log the cause.
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error.
//
// For procedures/repositories/worker code:
//   - Return sentinel errors or wrap with fmt.Errorf("context: %w", err).
//   - Let the handler decide how to log and respond.

// returns a 404 not found error, message is "<resource> not found"
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = classifyError(err).sanitized
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 for input that failed validation, details are returned unsanitized
func ValidationError(c *gin.Context, err error) {
	response := ErrorResponse{
		Error:   CodeValidationError,
		Message: "validation failed",
	}

	if err != nil {
		response.Details = err.Error()
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 500 and logs the cause with request context
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	info := classifyError(err)

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"category", info.category,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: info.sanitized,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}
