package handlers

import (
	"net/http"
	"testing"

	"github.com/kalyan0128/Humanlike-awarebot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSendChatMessage_BotReply(t *testing.T) {
	h := newTestHandler(t)
	user := dashboardTestUser(t, h, "alice")

	c, w := jsonContext(t, "POST", "/api/chat", ChatInput{Message: "What is phishing?"})
	c.Set("userId", user.ID)
	h.SendChatMessage(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var reply models.ChatMessage
	decodeBody(t, w, &reply)
	assert.True(t, reply.IsBot)
	assert.Contains(t, reply.Content, "Phishing is a type of social engineering attack")

	// Both sides of the exchange are persisted.
	messages, err := h.Store().ListChatMessages(user.ID, 0)
	assert.NoError(t, err)
	assert.Len(t, messages, 2)
	assert.False(t, messages[0].IsBot)
	assert.Equal(t, "What is phishing?", messages[0].Content)
	assert.True(t, messages[1].IsBot)
}

func TestSendChatMessage_EmptyMessage(t *testing.T) {
	h := newTestHandler(t)
	user := dashboardTestUser(t, h, "bob")

	c, w := jsonContext(t, "POST", "/api/chat", ChatInput{Message: ""})
	c.Set("userId", user.ID)
	h.SendChatMessage(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Message cannot be empty")

	messages, err := h.Store().ListChatMessages(user.ID, 0)
	assert.NoError(t, err)
	assert.Empty(t, messages)
}

func TestListChatMessages_History(t *testing.T) {
	h := newTestHandler(t)
	user := dashboardTestUser(t, h, "carol")

	for _, msg := range []string{"hello", "what is baiting", "nonsense input"} {
		c, w := jsonContext(t, "POST", "/api/chat", ChatInput{Message: msg})
		c.Set("userId", user.ID)
		h.SendChatMessage(c)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	c, w := jsonContext(t, "GET", "/api/chat-messages", nil)
	c.Set("userId", user.ID)
	h.ListChatMessages(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var history []models.ChatMessage
	decodeBody(t, w, &history)
	assert.Len(t, history, 6)
	assert.Equal(t, "hello", history[0].Content)
	// User and bot turns alternate in chronological order.
	for i, msg := range history {
		assert.Equal(t, i%2 == 1, msg.IsBot, "position %d", i)
	}
}
