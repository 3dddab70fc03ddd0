package seeds

import (
	"log"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

// Run seeds every content table that is still empty. Safe to call on every
// server start; existing content is never touched.
func Run(db *gorm.DB) error {
	type table struct {
		model interface{}
		seed  func(*gorm.DB) error
		name  string
	}

	tables := []table{
		{&models.TrainingModule{}, SeedTrainingModules, "training modules"},
		{&models.ThreatScenario{}, SeedThreatScenarios, "threat scenarios"},
		{&models.OrganizationPolicy{}, SeedOrganizationPolicies, "organization policies"},
		{&models.Achievement{}, SeedAchievements, "achievements"},
	}

	for _, t := range tables {
		var count int64
		if err := db.Model(t.model).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			log.Printf("Seed: %s already present (%d rows), skipping", t.name, count)
			continue
		}
		if err := t.seed(db); err != nil {
			return err
		}
	}
	return nil
}
