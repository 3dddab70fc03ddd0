package models

import "time"

type Level string

const (
	LevelBeginner     Level = "BEGINNER"
	LevelIntermediate Level = "INTERMEDIATE"
	LevelAdvanced     Level = "ADVANCED"
)

// XP thresholds for level tiers. The ADVANCED ceiling only feeds the
// dashboard progress bar, it is not a real tier boundary.
const (
	IntermediateXP = 200
	AdvancedXP     = 500
	AdvancedCeilXP = 1000
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	FirstName string    `gorm:"column:first_name;not null" json:"firstName"`
	LastName  string    `gorm:"column:last_name;not null" json:"lastName"`
	Level     Level     `gorm:"type:text;default:'BEGINNER';not null" json:"level"`
	XPPoints  int       `gorm:"column:xp_points;default:0;not null" json:"xpPoints"`
	CompletedModules int `gorm:"column:completed_modules;default:0;not null" json:"completedModules"`
	CreatedAt time.Time `gorm:"column:created_at" json:"createdAt"`
}

// LevelForXP maps cumulative XP to a level tier. XP never decreases, so
// level transitions are monotonic.
func LevelForXP(xp int) Level {
	switch {
	case xp >= AdvancedXP:
		return LevelAdvanced
	case xp >= IntermediateXP:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// NextLevelXP returns the XP target shown for the given tier.
func NextLevelXP(level Level) int {
	switch level {
	case LevelBeginner:
		return IntermediateXP
	case LevelIntermediate:
		return AdvancedXP
	default:
		return AdvancedCeilXP
	}
}
