package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/handlers"
)

func RegisterContentRoutes(r gin.IRouter, h *handlers.Handler, auth gin.HandlerFunc) {
	r.GET("/threat-scenarios", auth, h.ListThreatScenarios)
	r.GET("/threat-scenarios/:id", auth, h.GetThreatScenario)
	r.GET("/organization-policies", auth, h.ListOrganizationPolicies)
	r.GET("/organization-policies/:id", auth, h.GetOrganizationPolicy)
}
