package messages

import (
	"github.com/gin-gonic/gin"
)

// create is rate limited when a limiter is given
func RegisterRoutes(router *gin.RouterGroup, svc Service, limit gin.HandlerFunc) {
	create := []gin.HandlerFunc{CreateMessageHandler(svc)}
	if limit != nil {
		create = append([]gin.HandlerFunc{limit}, create...)
	}

	router.GET("/projects/:id/messages", ListMessagesHandler(svc))

	messagesGroup := router.Group("/messages")
	{
		messagesGroup.GET("", ListMessagesHandler(svc))
		messagesGroup.POST("", create...)
	}
}
