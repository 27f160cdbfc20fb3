package contact

import (
	"context"

	messagesRepo "verdanta/database/repository/messages"
	"verdanta/models"
)

// ContactService accepts public contact-form submissions.
type ContactService interface {
	Submit(ctx context.Context, ip string, in models.ContactMessageInput) (string, error)
}

// DefaultContactService is the production implementation. Cooldown is
// optional; when nil, submissions are never throttled.
type DefaultContactService struct {
	Repo     messagesRepo.MessageRepository
	Cooldown CooldownStore
}
