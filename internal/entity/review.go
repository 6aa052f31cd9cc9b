package entity

import "time"

// Review holds a user's rating of a work. At most one exists per
// (user, work) pair.
type Review struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	WorkID    string    `json:"workId"`
	Rating    int       `json:"rating"`
	Title     string    `json:"title,omitempty"`
	Body      string    `json:"body,omitempty"`
	IsPrivate bool      `json:"isPrivate"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
