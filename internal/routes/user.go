package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
)

func RegisterUserRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.GET("/user", auth, h.GetCurrentUser)
	r.GET("/dashboard", auth, h.GetDashboard)
	r.GET("/achievements", auth, h.ListAchievements)
}
