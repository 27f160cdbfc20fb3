package messagesRepo

import (
	"context"
	"errors"
	"time"

	"verdanta/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Create inserts a new contact message and returns its ID.
func (r *mongoMessageRepo) Create(ctx context.Context, msg models.ContactMessage) (string, error) {
	if msg.ID == "" {
		msg.ID = uuid.New().String()
	}
	msg.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, msg)
	if err != nil {
		return "", err
	}
	return msg.ID, nil
}

// List returns messages newest-first, optionally filtered by status.
// An empty or "all" status returns everything.
func (r *mongoMessageRepo) List(ctx context.Context, status string) ([]models.ContactMessage, error) {
	filter := bson.M{}
	if status != "" && status != "all" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var msgs []models.ContactMessage
	if err := cursor.All(ctx, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

// MarkRead flags a message as read in the admin inbox.
func (r *mongoMessageRepo) MarkRead(ctx context.Context, id string) error {
	update := bson.M{"$set": bson.M{
		"read":   true,
		"status": models.MessageStatusRead,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("message not found")
	}
	return nil
}
