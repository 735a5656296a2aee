package models

import (
	"time"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DocumentStatus string

const (
	MissingDocument  DocumentStatus = "MISSING"
	CompleteDocument DocumentStatus = "COMPLETE"
)

// DefaultWarningDays is the deadline warning threshold a document falls
// back to whenever its window is cleared.
const DefaultWarningDays = 7

// Document is one entry of a client's checklist. The uploaded file, when
// present, is stored byte-for-byte in the row.
type Document struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	Name     string         `gorm:"not null" json:"name"`
	Required bool           `gorm:"default:true" json:"required"`
	Status   DocumentStatus `gorm:"type:varchar(20);default:'MISSING'" json:"status"`

	// Uploaded blob and its metadata.
	FileBytes  []byte     `gorm:"type:bytea" json:"-"`
	FileName   *string    `json:"file_name,omitempty"`
	FileMime   *string    `json:"file_mime,omitempty"`
	FileSize   *int64     `json:"file_size,omitempty"`
	UploadedAt *time.Time `json:"uploaded_at,omitempty"`

	// Optional deadline window; start < end is enforced on write.
	DeadlineStart       *utils.DateOnly `json:"deadline_start,omitempty"`
	DeadlineEnd         *utils.DateOnly `json:"deadline_end,omitempty"`
	DeadlineWarningDays int             `gorm:"default:7" json:"deadline_warning_days"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

// HasFile reports whether a blob is stored for this document.
func (d *Document) HasFile() bool {
	return len(d.FileBytes) > 0
}
