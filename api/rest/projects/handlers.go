package projects

import (
	stderrors "errors"
	"net/http"

	"github.com/Prakul111/vibe-code-project/internal/errors"
	"github.com/Prakul111/vibe-code-project/internal/validation"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	"github.com/gin-gonic/gin"
)

// ListProjectsHandler godoc
// @Summary List projects
// @Description All projects, most recently updated first
// @Tags projects
// @Produce json
// @Success 200 {array} projects.Project
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/projects [get]
func ListProjectsHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.GetMany(c.Request.Context())
		if err != nil {
			errors.InternalError(c, "failed to list projects", err)
			return
		}

		c.JSON(http.StatusOK, list)
	}
}

// GetProjectHandler godoc
// @Summary Get a project
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} projects.Project
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/projects/{id} [get]
func GetProjectHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := svc.GetOne(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, "failed to get project", err)
			return
		}

		c.JSON(http.StatusOK, project)
	}
}

// CreateProjectHandler godoc
// @Summary Create a project
// @Description Creates a project seeded with the prompt and starts the code agent
// @Tags projects
// @Accept json
// @Produce json
// @Param request body CreateProjectRequest true "Prompt"
// @Success 201 {object} projects.Project
// @Failure 400 {object} errors.ErrorResponse
// @Failure 429 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/v1/projects [post]
func CreateProjectHandler(svc Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		project, err := svc.Create(c.Request.Context(), req.Value)
		if err != nil {
			respondError(c, "failed to create project", err)
			return
		}

		c.JSON(http.StatusCreated, project)
	}
}

func respondError(c *gin.Context, message string, err error) {
	switch {
	case validation.IsValidationError(err):
		errors.ValidationError(c, err)
	case stderrors.Is(err, projects.ErrProjectNotFound):
		errors.NotFound(c, "Project")
	default:
		errors.InternalError(c, message, err)
	}
}
