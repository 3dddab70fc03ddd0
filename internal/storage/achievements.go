package storage

import (
	"errors"

	apperrors "github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

func (s *Storage) ListAchievements() ([]models.Achievement, error) {
	var achievements []models.Achievement
	if err := s.db.Order("required_xp ASC, id ASC").Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

func (s *Storage) GetAchievement(id uint) (*models.Achievement, error) {
	var achievement models.Achievement
	if err := s.db.First(&achievement, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Achievement not found")
		}
		return nil, err
	}
	return &achievement, nil
}

func (s *Storage) ListUserAchievements(userID uint) ([]models.UserAchievement, error) {
	var earned []models.UserAchievement
	if err := s.db.Where("user_id = ?", userID).Order("earned_at ASC").Find(&earned).Error; err != nil {
		return nil, err
	}
	return earned, nil
}

// GrantAchievement awards one achievement to a user. The unique index makes
// a duplicate grant a no-op error surfaced to the caller.
func (s *Storage) GrantAchievement(userID, achievementID uint) (*models.UserAchievement, error) {
	grant := models.UserAchievement{UserID: userID, AchievementID: achievementID}
	if err := s.db.Create(&grant).Error; err != nil {
		return nil, err
	}
	return &grant, nil
}
