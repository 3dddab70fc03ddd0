package storage

import (
	"errors"
	"math"
	"time"

	apperrors "github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

// DashboardStats is the aggregate progress block on the dashboard.
type DashboardStats struct {
	CompletedModules   int          `json:"completedModules"`
	TotalModules       int          `json:"totalModules"`
	ProgressPercentage int          `json:"progressPercentage"`
	CurrentLevel       models.Level `json:"currentLevel"`
	XPPoints           int          `json:"xpPoints"`
	XPToNextLevel      int          `json:"xpToNextLevel"`
	XPProgress         int          `json:"xpProgress"`
}

func (s *Storage) ListUserProgress(userID uint) ([]models.UserProgress, error) {
	var records []models.UserProgress
	if err := s.db.Where("user_id = ?", userID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// RecordCompletion writes a progress record for (user, module). The first
// completed submission grants the module's XP reward, bumps the completed
// counter and recomputes the level tier. Completion is idempotent per
// module: a resubmission updates the score and completed flag but never
// grants XP twice. Unknown user or module ids fail with NotFound instead of
// silently dropping the side effect.
func (s *Storage) RecordCompletion(userID, moduleID uint, completed bool, score *int) (*models.UserProgress, error) {
	var record models.UserProgress

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("User not found")
			}
			return err
		}

		var module models.TrainingModule
		if err := tx.First(&module, moduleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("Training module not found")
			}
			return err
		}

		var existing models.UserProgress
		err := tx.Where("user_id = ? AND module_id = ?", userID, moduleID).First(&existing).Error
		switch {
		case err == nil:
			alreadyRewarded := existing.Completed
			existing.Score = score
			if completed && !existing.Completed {
				now := time.Now()
				existing.Completed = true
				existing.CompletedAt = &now
			}
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
			record = existing
			if completed && !alreadyRewarded {
				return grantReward(tx, &user, &module)
			}
			return nil

		case errors.Is(err, gorm.ErrRecordNotFound):
			record = models.UserProgress{
				UserID:   userID,
				ModuleID: moduleID,
				Completed: completed,
				Score:    score,
			}
			if completed {
				now := time.Now()
				record.CompletedAt = &now
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			if completed {
				return grantReward(tx, &user, &module)
			}
			return nil

		default:
			return err
		}
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// grantReward applies a module completion to the user: +1 completed module,
// +xpReward, level recomputed from the new total. XP only ever increases,
// so the level never downgrades.
func grantReward(tx *gorm.DB, user *models.User, module *models.TrainingModule) error {
	user.CompletedModules++
	user.XPPoints += module.XPReward
	user.Level = models.LevelForXP(user.XPPoints)
	return tx.Save(user).Error
}

// DashboardStats computes the aggregate progress block for one user.
func (s *Storage) DashboardStats(userID uint) (*DashboardStats, error) {
	user, err := s.GetUser(userID)
	if err != nil {
		return nil, err
	}

	var completed int64
	if err := s.db.Model(&models.UserProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	total, err := s.CountTrainingModules()
	if err != nil {
		return nil, err
	}

	progressPct := 0
	if total > 0 {
		progressPct = int(math.Round(float64(completed) / float64(total) * 100))
	}

	nextLevelXP := models.NextLevelXP(user.Level)
	xpToNext := nextLevelXP - user.XPPoints
	xpProgress := int(math.Round(float64(nextLevelXP-xpToNext) / float64(nextLevelXP) * 100))

	return &DashboardStats{
		CompletedModules:   int(completed),
		TotalModules:       int(total),
		ProgressPercentage: progressPct,
		CurrentLevel:       user.Level,
		XPPoints:           user.XPPoints,
		XPToNextLevel:      xpToNext,
		XPProgress:         xpProgress,
	}, nil
}
