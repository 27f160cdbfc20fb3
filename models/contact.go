package models

import "time"

// Contact message lifecycle statuses.
const (
	MessageStatusNew  = "new"
	MessageStatusRead = "read"
)

// ContactMessage is the one record this service ever writes. Messages are
// append-only from the public surface; only the admin inbox flips Read.
type ContactMessage struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	Status    string    `bson:"status" json:"status"`
	Read      bool      `bson:"read" json:"read"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ContactMessageInput is the public submission payload.
type ContactMessageInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
