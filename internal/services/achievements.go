package services

import (
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/logger"
)

// CheckAchievements awards every catalog achievement whose XP threshold the
// user has reached and does not hold yet. Called after each XP-changing
// event. Returns the newly earned achievements.
func CheckAchievements(store *storage.Storage, userID uint) ([]models.Achievement, error) {
	user, err := store.GetUser(userID)
	if err != nil {
		return nil, err
	}

	earned, err := store.ListUserAchievements(userID)
	if err != nil {
		return nil, err
	}
	earnedSet := make(map[uint]bool, len(earned))
	for _, ua := range earned {
		earnedSet[ua.AchievementID] = true
	}

	catalog, err := store.ListAchievements()
	if err != nil {
		return nil, err
	}

	var newAchievements []models.Achievement
	for _, achievement := range catalog {
		if earnedSet[achievement.ID] {
			continue
		}
		if user.XPPoints < achievement.RequiredXP {
			continue
		}

		if _, err := store.GrantAchievement(userID, achievement.ID); err != nil {
			// A concurrent grant can trip the unique index; skip, don't fail.
			logger.Warn().Err(err).Uint("user_id", userID).Uint("achievement_id", achievement.ID).Msg("Achievement grant skipped")
			continue
		}
		newAchievements = append(newAchievements, achievement)
	}

	return newAchievements, nil
}
