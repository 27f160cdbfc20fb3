package models

import "time"

// EcoPhotoView is a normalized eco-tourism gallery entry.
type EcoPhotoView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Caption   string    `json:"caption"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"createdAt"`
}
