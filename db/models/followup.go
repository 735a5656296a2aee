package models

import (
	"time"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Followup is an append-only note on a client; rows are never edited.
type Followup struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	Date  utils.DateOnly `gorm:"not null" json:"date"`
	Notes string         `gorm:"type:text;not null" json:"notes"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (f *Followup) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}
