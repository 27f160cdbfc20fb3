package handlers

import (
	"errors"
	"net/http"

	"verdanta/middleware"
	"verdanta/models"
	"verdanta/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactHandler accepts public contact-form submissions.
type ContactHandler struct {
	Service contact.ContactService
}

func NewContactHandler(svc contact.ContactService) *ContactHandler {
	return &ContactHandler{Service: svc}
}

// SubmitMessageHandler validates and stores one contact message.
func (h *ContactHandler) SubmitMessageHandler(c *gin.Context) {
	logger := getLogger(c)

	var input models.ContactMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid contact submission payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.Service.Submit(c.Request.Context(), middleware.ClientIP(c), input)
	if err != nil {
		var vErr contact.ValidationError
		var cdErr contact.CooldownError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
		case errors.As(err, &cdErr):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait a moment before sending another message."})
		default:
			logger.Error("Failed to store contact message", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message. Please try again."})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id, "message": "Thank you for reaching out. We will get back to you soon."})
}
