package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WorkModel struct {
	ID         string     `gorm:"type:uuid;primary_key" json:"id"`
	UserID     string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Title      string     `gorm:"type:varchar(255);not null" json:"title"`
	Type       string     `gorm:"type:varchar(20);not null;default:'BOOK';index" json:"type"`
	Creator    string     `gorm:"type:varchar(255)" json:"creator"`
	Genre      string     `gorm:"type:varchar(100)" json:"genre"`
	Status     string     `gorm:"type:varchar(20);not null;default:'TO_EXPLORE';index" json:"status"`
	TotalUnits *int       `json:"total_units"`
	CoverURL   string     `gorm:"type:varchar(500)" json:"cover_url"`
	StartedAt  *time.Time `gorm:"type:date" json:"started_at"`
	FinishedAt *time.Time `gorm:"type:date" json:"finished_at"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (WorkModel) TableName() string {
	return "works"
}

func (w *WorkModel) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	return nil
}
