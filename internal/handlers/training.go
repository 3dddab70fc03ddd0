package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/database"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/services"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/logger"
)

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return uint(id), true
}

func parseLimitQuery(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func (h *Handler) ListTrainingModules(c *gin.Context) {
	modules, err := h.store.ListTrainingModules()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, modules)
}

func (h *Handler) GetTrainingModule(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	module, err := h.store.GetTrainingModule(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

type ProgressInput struct {
	ModuleID  uint `json:"moduleId" binding:"required"`
	Completed bool `json:"completed"`
	Score     *int `json:"score" binding:"omitempty,min=0,max=100"`
}

// SubmitProgress records a module completion for the authenticated user and
// runs the achievement check afterwards.
func (h *Handler) SubmitProgress(c *gin.Context) {
	var input ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	userID := middleware.UserID(c)

	record, err := h.store.RecordCompletion(userID, input.ModuleID, input.Completed, input.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	if input.Completed {
		if _, err := services.CheckAchievements(h.store, userID); err != nil {
			logger.Error().Err(err).Uint("user_id", userID).Msg("Achievement check failed")
		}
	}

	database.CacheInvalidate(dashboardCacheKey(userID))

	c.JSON(http.StatusCreated, record)
}
