package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestListThreatScenarios_LimitQuery(t *testing.T) {
	h := newTestHandler(t)
	seedDashboardContent(t, h)

	c, w := jsonContext(t, "GET", "/api/threat-scenarios?limit=1", nil)
	h.ListThreatScenarios(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var scenarios []models.ThreatScenario
	decodeBody(t, w, &scenarios)
	assert.Len(t, scenarios, 1)
}

func TestGetThreatScenario_NotFound(t *testing.T) {
	h := newTestHandler(t)

	c, w := jsonContext(t, "GET", "/api/threat-scenarios/55", nil)
	c.Params = gin.Params{{Key: "id", Value: "55"}}
	h.GetThreatScenario(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListOrganizationPolicies_Alphabetical(t *testing.T) {
	h := newTestHandler(t)
	seedDashboardContent(t, h)

	c, w := jsonContext(t, "GET", "/api/organization-policies", nil)
	h.ListOrganizationPolicies(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var policies []models.OrganizationPolicy
	decodeBody(t, w, &policies)
	assert.Len(t, policies, 2)
	assert.Equal(t, "Email Policy", policies[0].Title)
	assert.Equal(t, "Password Policy", policies[1].Title)
}

func TestGetOrganizationPolicy(t *testing.T) {
	h := newTestHandler(t)
	seedDashboardContent(t, h)

	c, w := jsonContext(t, "GET", "/api/organization-policies/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	h.GetOrganizationPolicy(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var policy models.OrganizationPolicy
	decodeBody(t, w, &policy)
	assert.Equal(t, "Password Policy", policy.Title)
}
