package models

import "time"

// CareerView is a normalized open position. Type defaults to "full-time"
// when the stored record omits it.
type CareerView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Department   string    `json:"department"`
	Location     string    `json:"location"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}

// InternshipView is a normalized internship opening.
type InternshipView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Duration     string    `json:"duration"`
	Description  string    `json:"description"`
	Requirements []string  `json:"requirements"`
	CreatedAt    time.Time `json:"createdAt"`
}
