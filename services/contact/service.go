package contact

import (
	"context"
	"strings"

	"verdanta/models"
	"verdanta/utils"

	"go.uber.org/zap"
)

// Submit validates the four-field form and appends one immutable message.
// Validation runs before any network call. The cooldown fails open: a
// broken Redis never blocks a legitimate submission.
func (s *DefaultContactService) Submit(ctx context.Context, ip string, in models.ContactMessageInput) (string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Subject = strings.TrimSpace(in.Subject)
	in.Message = strings.TrimSpace(in.Message)

	for _, f := range []struct {
		name  string
		value string
	}{
		{"name", in.Name},
		{"email", in.Email},
		{"subject", in.Subject},
		{"message", in.Message},
	} {
		if f.value == "" {
			return "", ValidationError{Field: f.name}
		}
	}

	if s.Cooldown != nil && ip != "" {
		ok, err := s.Cooldown.Acquire(ctx, ip)
		if err != nil {
			utils.GetLogger().Warn("contact cooldown check failed", zap.String("ip", ip), zap.Error(err))
		} else if !ok {
			return "", CooldownError{RetryAfter: s.Cooldown.TTL()}
		}
	}

	msg := models.ContactMessage{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
		Status:  models.MessageStatusNew,
		Read:    false,
	}

	id, err := s.Repo.Create(ctx, msg)
	if err != nil {
		return "", SubmissionError{Err: err}
	}
	return id, nil
}
