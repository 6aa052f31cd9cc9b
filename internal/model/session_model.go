package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionModel struct {
	ID             string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID         string     `gorm:"type:uuid;not null;index" json:"user_id"`
	WorkID         string     `gorm:"type:uuid;not null;index" json:"work_id"`
	StartedAt      time.Time  `gorm:"not null;index" json:"started_at"`
	EndedAt        *time.Time `json:"ended_at"`
	Minutes        *int       `json:"minutes"`
	UnitsCompleted *int       `json:"units_completed"`
	Note           string     `gorm:"type:varchar(500)" json:"note"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
