package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/kalyan0128/Humanlike-awarebot/internal/services"
	"github.com/kalyan0128/Humanlike-awarebot/internal/storage"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/errors"
	"github.com/kalyan0128/Humanlike-awarebot/pkg/logger"
	"net/http"
)

// Handler carries the injected storage handle and the chatbot. Handlers are
// methods so tests can build one around an isolated store.
type Handler struct {
	store *storage.Storage
	bot   *services.Chatbot
}

func New(store *storage.Storage) *Handler {
	return &Handler{
		store: store,
		bot:   services.NewChatbot(),
	}
}

func (h *Handler) Store() *storage.Storage {
	return h.store
}

// respondError translates storage/service errors at the handler boundary.
// AppErrors keep their status; everything else is a logged 500.
func respondError(c *gin.Context, err error) {
	if appErr, ok := err.(*errors.AppError); ok {
		c.JSON(appErr.Code, gin.H{"message": appErr.Message})
		return
	}
	logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
