package models

import "time"

// Achievement is a catalog entry. RequiredXP is the cumulative XP at which
// the achievement is awarded automatically.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Icon        string `gorm:"not null" json:"icon"`
	RequiredXP  int    `gorm:"column:required_xp;not null" json:"requiredXp"`
}

type UserAchievement struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;uniqueIndex:idx_user_achievement;not null" json:"userId"`
	AchievementID uint      `gorm:"uniqueIndex:idx_user_achievement;not null" json:"achievementId"`
	EarnedAt      time.Time `gorm:"column:earned_at;autoCreateTime" json:"earnedAt"`
}
