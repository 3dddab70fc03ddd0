// Package storage is the entity store: every table is owned here and
// reached through an explicit Storage handle so tests can construct
// isolated instances instead of sharing ambient state.
package storage

import (
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"gorm.io/gorm"
)

type Storage struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Storage {
	return &Storage{db: db}
}

// DB exposes the underlying handle for health checks.
func (s *Storage) DB() *gorm.DB {
	return s.db
}

// Migrate creates or updates the schema for every entity kind.
func (s *Storage) Migrate() error {
	return s.db.AutoMigrate(
		&models.User{},
		&models.TrainingModule{},
		&models.UserProgress{},
		&models.ThreatScenario{},
		&models.OrganizationPolicy{},
		&models.ChatMessage{},
		&models.Achievement{},
		&models.UserAchievement{},
	)
}
