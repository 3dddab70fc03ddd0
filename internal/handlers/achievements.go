package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
)

type AchievementStatus struct {
	models.Achievement
	Earned   bool       `json:"earned"`
	EarnedAt *time.Time `json:"earnedAt,omitempty"`
}

// ListAchievements returns the full catalog annotated with what the
// authenticated user has earned.
func (h *Handler) ListAchievements(c *gin.Context) {
	userID := middleware.UserID(c)

	catalog, err := h.store.ListAchievements()
	if err != nil {
		respondError(c, err)
		return
	}

	earned, err := h.store.ListUserAchievements(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	earnedAt := make(map[uint]time.Time, len(earned))
	for _, ua := range earned {
		earnedAt[ua.AchievementID] = ua.EarnedAt
	}

	statuses := make([]AchievementStatus, 0, len(catalog))
	for _, a := range catalog {
		status := AchievementStatus{Achievement: a}
		if at, ok := earnedAt[a.ID]; ok {
			status.Earned = true
			t := at
			status.EarnedAt = &t
		}
		statuses = append(statuses, status)
	}

	c.JSON(http.StatusOK, statuses)
}
