package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
)

func RegisterAuthRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/guest", h.GuestLogin)
	r.POST("/logout", auth, h.Logout)
}
