package models

import "time"

// TeamMemberView is the normalized shape rendered on the team page.
// Every field is always defined after normalization.
type TeamMemberView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Bio       string    `json:"bio"`
	PhotoURL  string    `json:"photoUrl"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"createdAt"`
}
