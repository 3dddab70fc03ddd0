package models

import "time"

type ModuleType string

const (
	ModuleTypeQuiz     ModuleType = "quiz"
	ModuleTypeVideo    ModuleType = "video"
	ModuleTypeScenario ModuleType = "scenario"
)

// TrainingModule is curriculum content. Modules are seeded once and treated
// as immutable afterwards; content authoring lives outside this service.
type TrainingModule struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `gorm:"not null" json:"description"`
	Content     string     `gorm:"type:text;not null" json:"content"` // markdown, may embed a quiz section
	Type        ModuleType `gorm:"type:text;not null" json:"type"`
	Difficulty  string     `gorm:"not null" json:"difficulty"`
	XPReward    int        `gorm:"column:xp_reward;default:10;not null" json:"xpReward"`
	Order       int        `gorm:"column:sort_order;not null" json:"order"` // curriculum position
	CreatedAt   time.Time  `gorm:"column:created_at" json:"createdAt"`
}

// UserProgress records a user's interaction with one module. The unique
// index on (user, module) makes completion idempotent: resubmitting the same
// module updates the score without granting XP again.
type UserProgress struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"index;uniqueIndex:idx_user_module;not null" json:"userId"`
	ModuleID    uint       `gorm:"uniqueIndex:idx_user_module;not null" json:"moduleId"`
	Completed   bool       `gorm:"default:false;not null" json:"completed"`
	Score       *int       `json:"score"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt"`
}
