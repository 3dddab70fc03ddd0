package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListThreatScenarios(c *gin.Context) {
	scenarios, err := h.store.ListThreatScenarios(parseLimitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenarios)
}

func (h *Handler) GetThreatScenario(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	scenario, err := h.store.GetThreatScenario(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, scenario)
}

func (h *Handler) ListOrganizationPolicies(c *gin.Context) {
	policies, err := h.store.ListOrganizationPolicies(parseLimitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, policies)
}

func (h *Handler) GetOrganizationPolicy(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	policy, err := h.store.GetOrganizationPolicy(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, policy)
}
