package contact

import (
	"context"
	"errors"
	"testing"
	"time"

	"verdanta/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMessageRepo struct {
	created []models.ContactMessage
	err     error
}

func (f *fakeMessageRepo) Create(ctx context.Context, msg models.ContactMessage) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, msg)
	return "msg-1", nil
}

func (f *fakeMessageRepo) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	return nil, nil
}

func (f *fakeMessageRepo) MarkRead(ctx context.Context, id string) error {
	return nil
}

type fakeCooldown struct {
	allow    bool
	err      error
	acquired int
}

func (f *fakeCooldown) Acquire(ctx context.Context, ip string) (bool, error) {
	f.acquired++
	return f.allow, f.err
}

func (f *fakeCooldown) TTL() time.Duration { return time.Minute }

func validInput() models.ContactMessageInput {
	return models.ContactMessageInput{
		Name:    "  Jordan Mwangi ",
		Email:   "jordan@example.com",
		Subject: "Farm visit",
		Message: "Do you offer tours?",
	}
}

func TestDefaultContactService_Submit(t *testing.T) {
	t.Run("blank fields fail validation before any network call", func(t *testing.T) {
		blanks := map[string]func(*models.ContactMessageInput){
			"name":    func(in *models.ContactMessageInput) { in.Name = "   " },
			"email":   func(in *models.ContactMessageInput) { in.Email = "" },
			"subject": func(in *models.ContactMessageInput) { in.Subject = "\t\n" },
			"message": func(in *models.ContactMessageInput) { in.Message = " " },
		}

		for field, blank := range blanks {
			repo := &fakeMessageRepo{}
			cooldown := &fakeCooldown{allow: true}
			svc := &DefaultContactService{Repo: repo, Cooldown: cooldown}

			in := validInput()
			blank(&in)

			_, err := svc.Submit(context.Background(), "203.0.113.9", in)

			var vErr ValidationError
			require.ErrorAs(t, err, &vErr, "field %s", field)
			assert.Equal(t, field, vErr.Field)
			assert.Empty(t, repo.created, "no insert for blank %s", field)
			assert.Zero(t, cooldown.acquired, "no cooldown check for blank %s", field)
		}
	})

	t.Run("success stores a trimmed message with fixed initial status", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := &DefaultContactService{Repo: repo, Cooldown: &fakeCooldown{allow: true}}

		id, err := svc.Submit(context.Background(), "203.0.113.9", validInput())

		require.NoError(t, err)
		assert.Equal(t, "msg-1", id)
		require.Len(t, repo.created, 1)
		msg := repo.created[0]
		assert.Equal(t, "Jordan Mwangi", msg.Name)
		assert.Equal(t, models.MessageStatusNew, msg.Status)
		assert.False(t, msg.Read)
	})

	t.Run("repo failure surfaces as a SubmissionError", func(t *testing.T) {
		repo := &fakeMessageRepo{err: errors.New("write concern timeout")}
		svc := &DefaultContactService{Repo: repo}

		_, err := svc.Submit(context.Background(), "", validInput())

		var sErr SubmissionError
		require.ErrorAs(t, err, &sErr)
	})

	t.Run("cooldown denial blocks the insert", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := &DefaultContactService{Repo: repo, Cooldown: &fakeCooldown{allow: false}}

		_, err := svc.Submit(context.Background(), "203.0.113.9", validInput())

		var cdErr CooldownError
		require.ErrorAs(t, err, &cdErr)
		assert.Equal(t, time.Minute, cdErr.RetryAfter)
		assert.Empty(t, repo.created)
	})

	t.Run("cooldown store failure fails open", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := &DefaultContactService{
			Repo:     repo,
			Cooldown: &fakeCooldown{err: errors.New("redis down")},
		}

		id, err := svc.Submit(context.Background(), "203.0.113.9", validInput())

		require.NoError(t, err)
		assert.Equal(t, "msg-1", id)
	})

	t.Run("nil cooldown never throttles", func(t *testing.T) {
		repo := &fakeMessageRepo{}
		svc := &DefaultContactService{Repo: repo}

		_, err := svc.Submit(context.Background(), "203.0.113.9", validInput())
		require.NoError(t, err)
	})
}
