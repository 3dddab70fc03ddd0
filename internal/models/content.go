package models

import "time"

// ThreatScenario is read-only reference content describing a real-world
// social engineering attack pattern.
type ThreatScenario struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Difficulty  string    `gorm:"not null" json:"difficulty"`
	IsNew       bool      `gorm:"column:is_new;default:true;not null" json:"isNew"`
	IsTrending  bool      `gorm:"column:is_trending;default:false;not null" json:"isTrending"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}

// OrganizationPolicy is read-only reference content for company security
// policies surfaced on the dashboard.
type OrganizationPolicy struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"not null" json:"description"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Category    string    `gorm:"not null" json:"category"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"createdAt"`
}
