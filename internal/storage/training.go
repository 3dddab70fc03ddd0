package storage

import (
	"errors"

	apperrors "github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

// DefaultRecommendationLimit is how many upcoming modules the dashboard shows.
const DefaultRecommendationLimit = 2

// ListTrainingModules returns the full catalog in curriculum order.
func (s *Storage) ListTrainingModules() ([]models.TrainingModule, error) {
	var modules []models.TrainingModule
	if err := s.db.Order("sort_order ASC, id ASC").Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *Storage) GetTrainingModule(id uint) (*models.TrainingModule, error) {
	var module models.TrainingModule
	if err := s.db.First(&module, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Training module not found")
		}
		return nil, err
	}
	return &module, nil
}

// NextRecommendedModules returns the first `limit` modules the user has not
// completed yet, in curriculum order with insertion order as tie-break.
// Pure set difference + sort + truncate; no randomness or adaptation.
func (s *Storage) NextRecommendedModules(userID uint, limit int) ([]models.TrainingModule, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}

	var completedIDs []uint
	if err := s.db.Model(&models.UserProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("module_id", &completedIDs).Error; err != nil {
		return nil, err
	}

	q := s.db.Order("sort_order ASC, id ASC").Limit(limit)
	if len(completedIDs) > 0 {
		q = q.Where("id NOT IN ?", completedIDs)
	}

	var modules []models.TrainingModule
	if err := q.Find(&modules).Error; err != nil {
		return nil, err
	}
	return modules, nil
}

func (s *Storage) CountTrainingModules() (int64, error) {
	var count int64
	err := s.db.Model(&models.TrainingModule{}).Count(&count).Error
	return count, err
}
