package storage

import (
	"errors"

	apperrors "github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

// ListThreatScenarios returns scenarios ordered new first, then trending,
// then most recent. limit <= 0 means no limit.
func (s *Storage) ListThreatScenarios(limit int) ([]models.ThreatScenario, error) {
	q := s.db.Order("is_new DESC, is_trending DESC, created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var scenarios []models.ThreatScenario
	if err := q.Find(&scenarios).Error; err != nil {
		return nil, err
	}
	return scenarios, nil
}

func (s *Storage) GetThreatScenario(id uint) (*models.ThreatScenario, error) {
	var scenario models.ThreatScenario
	if err := s.db.First(&scenario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Threat scenario not found")
		}
		return nil, err
	}
	return &scenario, nil
}

// ListOrganizationPolicies returns policies sorted by title. limit <= 0
// means no limit.
func (s *Storage) ListOrganizationPolicies(limit int) ([]models.OrganizationPolicy, error) {
	q := s.db.Order("title ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var policies []models.OrganizationPolicy
	if err := q.Find(&policies).Error; err != nil {
		return nil, err
	}
	return policies, nil
}

func (s *Storage) GetOrganizationPolicy(id uint) (*models.OrganizationPolicy, error) {
	var policy models.OrganizationPolicy
	if err := s.db.First(&policy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Organization policy not found")
		}
		return nil, err
	}
	return &policy, nil
}
