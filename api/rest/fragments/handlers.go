package fragments

import (
	"bytes"
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/Prakul111/vibe-code-project/internal/errors"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/gin-gonic/gin"
)

// GetFragmentHandler godoc
// @Summary Get a fragment
// @Tags fragments
// @Produce json
// @Param id path string true "Fragment ID"
// @Success 200 {object} messages.Fragment
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/fragments/{id} [get]
func GetFragmentHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fragment, err := svc.GetFragment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, fragment)
	}
}

// PreviewHandler godoc
// @Summary Preview a fragment
// @Description HTML page embedding the sandbox in an isolated iframe
// @Tags fragments
// @Produce html
// @Param id path string true "Fragment ID"
// @Param key query int false "Render key, bumped by refresh"
// @Success 200 {string} string
// @Failure 404 {object} errors.ErrorResponse
// @Router /api/v1/fragments/{id}/preview [get]
func PreviewHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		fragment, err := svc.GetFragment(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}

		key, _ := strconv.Atoi(c.Query("key")) //nolint:errcheck // missing or invalid key renders as 0

		var buf bytes.Buffer
		err = previewTemplate.Execute(&buf, previewData{
			Title:      fragment.Title,
			SandboxURL: fragment.SandboxURL,
			Key:        key,
			NextKey:    key + 1,
		})
		if err != nil {
			errors.InternalError(c, "failed to render preview", err)
			return
		}

		c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
	}
}

func respondError(c *gin.Context, err error) {
	if stderrors.Is(err, messages.ErrFragmentNotFound) {
		errors.NotFound(c, "Fragment")
		return
	}

	errors.InternalError(c, "failed to get fragment", err)
}
