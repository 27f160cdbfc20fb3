package handlers

import (
	"net/http"

	messagesRepo "verdanta/database/repository/messages"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler serves the contact-message inbox.
type AdminHandler struct {
	Messages messagesRepo.MessageRepository
}

func NewAdminHandler(messages messagesRepo.MessageRepository) *AdminHandler {
	return &AdminHandler{Messages: messages}
}

// ListMessagesHandler returns inbox messages, optionally filtered by the
// "status" query parameter.
func (h *AdminHandler) ListMessagesHandler(c *gin.Context) {
	logger := getLogger(c)

	msgs, err := h.Messages.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		logger.Error("Failed to list contact messages", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// MarkMessageReadHandler flags one message as read.
func (h *AdminHandler) MarkMessageReadHandler(c *gin.Context) {
	logger := getLogger(c)
	id := c.Param("id")

	if err := h.Messages.MarkRead(c.Request.Context(), id); err != nil {
		logger.Error("Failed to mark message read", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message marked as read"})
}
