package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
)

func RegisterChatRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.GET("/chat-messages", auth, h.ListChatMessages)
	r.POST("/chat", auth, middleware.ChatRateLimit(), h.SendChatMessage)
}
