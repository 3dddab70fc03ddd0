package models

import "time"

// ChatMessage is one turn in a user's conversation with the awareness bot.
// User and bot messages share the table, distinguished by IsBot.
type ChatMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	IsBot     bool      `gorm:"column:is_bot;not null" json:"isBot"`
	Timestamp time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}
