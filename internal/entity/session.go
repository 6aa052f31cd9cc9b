package entity

import "time"

// Session is a single timed or unit-based engagement with a work, e.g.
// one reading sitting.
type Session struct {
	ID             string     `json:"id"`
	UserID         string     `json:"-"`
	WorkID         string     `json:"workId"`
	StartedAt      time.Time  `json:"startedAt"`
	EndedAt        *time.Time `json:"endedAt,omitempty"`
	Minutes        *int       `json:"minutes,omitempty"`
	UnitsCompleted *int       `json:"unitsCompleted,omitempty"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}
