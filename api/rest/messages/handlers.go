package messages

import (
	"net/http"

	"github.com/Prakul111/vibe-code-project/internal/errors"
	"github.com/Prakul111/vibe-code-project/internal/validation"
	"github.com/gin-gonic/gin"
)

// ListMessagesHandler godoc
// @Summary List the messages of a project
// @Description Messages with their fragment, oldest update first
// @Tags messages
// @Produce json
// @Param id path string false "Project ID"
// @Param projectId query string false "Project ID"
// @Success 200 {array} messages.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/projects/{id}/messages [get]
// @Router /api/v1/messages [get]
func ListMessagesHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		projectID := c.Param("id")
		if projectID == "" {
			projectID = c.Query("projectId")
		}

		msgs, err := svc.GetMany(c.Request.Context(), projectID)
		if err != nil {
			respondError(c, "failed to list messages", err)
			return
		}

		c.JSON(http.StatusOK, msgs)
	}
}

// CreateMessageHandler godoc
// @Summary Send a message
// @Description Appends a user message and starts the code agent
// @Tags messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message"
// @Success 201 {object} messages.Message
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/messages [post]
func CreateMessageHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		msg, err := svc.Create(c.Request.Context(), req.Value, req.ProjectID)
		if err != nil {
			respondError(c, "failed to create message", err)
			return
		}

		c.JSON(http.StatusCreated, msg)
	}
}

func respondError(c *gin.Context, message string, err error) {
	if validation.IsValidationError(err) {
		errors.ValidationError(c, err)
		return
	}

	errors.InternalError(c, message, err)
}
