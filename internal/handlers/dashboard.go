package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
)

const (
	dashboardThreatLimit = 2
	dashboardPolicyLimit = 3
	dashboardCacheTTL    = time.Minute
)

type DashboardResponse struct {
	UserProgress       storage.DashboardStats      `json:"userProgress"`
	RecommendedModules []models.TrainingModule     `json:"recommendedModules"`
	LatestThreats      []models.ThreatScenario     `json:"latestThreats"`
	Policies           []models.OrganizationPolicy `json:"policies"`
	Achievements       []models.Achievement        `json:"achievements"`
}

func dashboardCacheKey(userID uint) string {
	return fmt.Sprintf("dashboard:%d", userID)
}

// GetDashboard assembles the landing-page payload: progress stats, the next
// recommended modules, latest threats, policies and earned achievements.
// Cached per user for a minute; progress writes invalidate the entry.
func (h *Handler) GetDashboard(c *gin.Context) {
	userID := middleware.UserID(c)

	var cached DashboardResponse
	if database.CacheGet(dashboardCacheKey(userID), &cached) {
		c.JSON(http.StatusOK, cached)
		return
	}

	stats, err := h.store.DashboardStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	recommended, err := h.store.NextRecommendedModules(userID, storage.DefaultRecommendationLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	threats, err := h.store.ListThreatScenarios(dashboardThreatLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	policies, err := h.store.ListOrganizationPolicies(dashboardPolicyLimit)
	if err != nil {
		respondError(c, err)
		return
	}

	earned, err := h.store.ListUserAchievements(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	earnedSet := make(map[uint]bool, len(earned))
	for _, ua := range earned {
		earnedSet[ua.AchievementID] = true
	}

	catalog, err := h.store.ListAchievements()
	if err != nil {
		respondError(c, err)
		return
	}
	achievements := make([]models.Achievement, 0, len(earned))
	for _, a := range catalog {
		if earnedSet[a.ID] {
			achievements = append(achievements, a)
		}
	}

	resp := DashboardResponse{
		UserProgress:       *stats,
		RecommendedModules: recommended,
		LatestThreats:      threats,
		Policies:           policies,
		Achievements:       achievements,
	}

	database.CacheSet(dashboardCacheKey(userID), resp, dashboardCacheTTL)

	c.JSON(http.StatusOK, resp)
}
