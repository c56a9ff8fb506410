package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sarwanazhar/chatstore/controlers"
	"github.com/sarwanazhar/chatstore/libs"
)

// InitRoutes registers every endpoint on the router. When jwtSecret is
// non-empty the chat routes require a bearer token; otherwise they trust
// the caller-supplied user id.
func InitRoutes(router *gin.Engine, h *controlers.ChatHandler, jwtSecret string) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	chats := router.Group("/chats")
	if jwtSecret != "" {
		chats.Use(libs.JWTMiddleware(jwtSecret))
	}
	{
		chats.GET("/:userId", h.GetChats)
		chats.POST("", h.SaveChat)
		chats.DELETE("/:userId/:chatId", h.DeleteChat)
		chats.PUT("/:userId/:chatId/messages/:messageIndex", h.EditMessage)
	}
}
