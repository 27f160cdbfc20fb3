package messagesRepo

import (
	"context"

	"verdanta/database"
	"verdanta/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// MessageRepository stores contact messages. Create is the only write path
// reachable from the public surface.
type MessageRepository interface {
	Create(ctx context.Context, msg models.ContactMessage) (string, error)
	List(ctx context.Context, status string) ([]models.ContactMessage, error)
	MarkRead(ctx context.Context, id string) error
}

type mongoMessageRepo struct {
	coll *mongo.Collection
}

// NewMongoMessageRepo returns a MessageRepository backed by MongoDB.
func NewMongoMessageRepo() MessageRepository {
	return &mongoMessageRepo{
		coll: database.GetCollection("messages"),
	}
}
