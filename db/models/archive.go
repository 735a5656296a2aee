package models

import (
	"time"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ArchiveStage records which workflow stage produced an archived case.
type ArchiveStage string

const (
	FileManagementStage ArchiveStage = "FILE_MANAGEMENT"
	ClientFollowupStage ArchiveStage = "CLIENT_FOLLOWUP"
	LegalCaseStage      ArchiveStage = "LEGAL_CASE"
)

// FileManagementSnapshot holds the file-management fields carried into an
// archived case. All fields are pointers: the whole group is null when the
// stage record was already gone at completion time.
type FileManagementSnapshot struct {
	ClientName      *string          `json:"client_name,omitempty"`
	Phone           *string          `json:"phone,omitempty"`
	ContractDate    *utils.DateOnly  `json:"contract_date,omitempty"`
	PaidAmount      *decimal.Decimal `gorm:"type:decimal(18,2)" json:"paid_amount,omitempty"`
	FingerprintDate *utils.DateOnly  `json:"fingerprint_date,omitempty"`
	RejectionDate   *utils.DateOnly  `json:"rejection_date,omitempty"`
	ClientComplaint *string          `gorm:"type:text" json:"client_complaint,omitempty"`
	Status          *string          `json:"status,omitempty"`
	CreatedBy       *string          `json:"created_by,omitempty"`
}

// FollowupSnapshot holds the client-followup fields carried into an
// archived case.
type FollowupSnapshot struct {
	FormReceivedDate *utils.DateOnly `json:"form_received_date,omitempty"`
	ClientCallDate   *utils.DateOnly `json:"client_call_date,omitempty"`
	CallDetails      *string         `gorm:"type:text" json:"call_details,omitempty"`
	ClientComplaint  *string         `gorm:"type:text" json:"client_complaint,omitempty"`
	NewAgreement     *string         `gorm:"type:text" json:"new_agreement,omitempty"`
	Status           *string         `json:"status,omitempty"`
	CreatedBy        *string         `json:"created_by,omitempty"`
}

// LegalSnapshot holds the legal-case fields carried into an archived case.
type LegalSnapshot struct {
	FormReceivedDate *utils.DateOnly `json:"form_received_date,omitempty"`
	CallDate         *utils.DateOnly `json:"call_date,omitempty"`
	CallDetails      *string         `gorm:"type:text" json:"call_details,omitempty"`
	LastAgreement    *string         `gorm:"type:text" json:"last_agreement,omitempty"`
	CaseType         *string         `json:"case_type,omitempty"`
	Status           *string         `json:"status,omitempty"`
	CreatedBy        *string         `json:"created_by,omitempty"`
}

// ArchivedCase is the terminal record of the complaint workflow. One row
// unions whatever stages existed when the case was completed; stages that
// were never opened, or whose records were already consumed, contribute a
// null column group.
type ArchivedCase struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	ClientName  string       `gorm:"not null;index" json:"client_name"`
	ClientPhone string       `gorm:"not null" json:"client_phone"`
	Stage       ArchiveStage `gorm:"type:varchar(30);not null;index" json:"stage"`

	FileManagement FileManagementSnapshot `gorm:"embedded;embeddedPrefix:file_" json:"file_management"`
	Followup       FollowupSnapshot       `gorm:"embedded;embeddedPrefix:followup_" json:"followup"`
	Legal          LegalSnapshot          `gorm:"embedded;embeddedPrefix:legal_" json:"legal"`

	CompletionDate    utils.DateOnly `gorm:"not null" json:"completion_date"`
	CompletionDetails string         `gorm:"type:text;not null" json:"completion_details"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (a *ArchivedCase) BeforeCreate(tx *gorm.DB) (err error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return
}

// CompletedClient is the flat roster of clients whose legal case finished.
// Rows are upserted by OriginalClientID so a client completed twice keeps a
// single entry.
type CompletedClient struct {
	ID               uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	OriginalClientID *uuid.UUID `gorm:"type:uuid;index" json:"original_client_id,omitempty"`

	ClientName        string         `gorm:"not null" json:"client_name"`
	ClientPhone       string         `gorm:"not null" json:"client_phone"`
	CompletionType    ArchiveStage   `gorm:"type:varchar(30);not null" json:"completion_type"`
	CompletionDate    utils.DateOnly `gorm:"not null" json:"completion_date"`
	CompletionDetails string         `gorm:"type:text;not null" json:"completion_details"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *CompletedClient) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}
