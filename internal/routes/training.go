package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
)

func RegisterTrainingRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.GET("/training-modules", auth, h.ListTrainingModules)
	r.GET("/training-modules/:id", auth, h.GetTrainingModule)
	r.POST("/user-progress", auth, h.SubmitProgress)
}
