package storage

import "github.com/kalyan0128/Humanlike-awarebot/internal/models"

// DefaultChatHistoryLimit bounds how much conversation history is returned.
const DefaultChatHistoryLimit = 50

// ListChatMessages returns the most recent `limit` messages of the user's
// conversation in chronological order.
func (s *Storage) ListChatMessages(userID uint, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = DefaultChatHistoryLimit
	}

	var messages []models.ChatMessage
	if err := s.db.Where("user_id = ?", userID).
		Order("timestamp DESC, id DESC").
		Limit(limit).
		Find(&messages).Error; err != nil {
		return nil, err
	}

	// Fetched newest-first for the tail limit; flip back to oldest-first.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (s *Storage) CreateChatMessage(message *models.ChatMessage) error {
	return s.db.Create(message).Error
}
