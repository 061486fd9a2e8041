package fragments

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.RouterGroup, svc Service) {
	fragmentsGroup := router.Group("/fragments")
	{
		fragmentsGroup.GET("/:id", GetFragmentHandler(svc))
		fragmentsGroup.GET("/:id/preview", PreviewHandler(svc))
	}
}
