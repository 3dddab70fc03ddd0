package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/middleware"
	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
)

type ChatInput struct {
	Message string `json:"message" binding:"required"`
}

// SendChatMessage stores the user's message, generates the bot reply and
// returns the stored bot message.
func (h *Handler) SendChatMessage(c *gin.Context) {
	var input ChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message cannot be empty"})
		return
	}

	userID := middleware.UserID(c)

	userMessage := models.ChatMessage{
		UserID:  userID,
		Content: input.Message,
		IsBot:   false,
	}
	if err := h.store.CreateChatMessage(&userMessage); err != nil {
		respondError(c, err)
		return
	}

	botMessage := models.ChatMessage{
		UserID:  userID,
		Content: h.bot.Respond(input.Message),
		IsBot:   true,
	}
	if err := h.store.CreateChatMessage(&botMessage); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, botMessage)
}

func (h *Handler) ListChatMessages(c *gin.Context) {
	messages, err := h.store.ListChatMessages(middleware.UserID(c), parseLimitQuery(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, messages)
}
