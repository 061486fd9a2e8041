package projects

import (
	"github.com/gin-gonic/gin"
)

// create is rate limited when a limiter is given
func RegisterRoutes(router *gin.RouterGroup, svc Service, limit gin.HandlerFunc) {
	create := []gin.HandlerFunc{CreateProjectHandler(svc)}
	if limit != nil {
		create = append([]gin.HandlerFunc{limit}, create...)
	}

	projectsGroup := router.Group("/projects")
	{
		projectsGroup.GET("", ListProjectsHandler(svc))
		projectsGroup.GET("/:id", GetProjectHandler(svc))
		projectsGroup.POST("", create...)
	}
}
