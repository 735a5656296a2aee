package models

import (
	"time"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ComplaintStatus is shared by the file-management and followup stages.
type ComplaintStatus string

const (
	ComplaintOngoing  ComplaintStatus = "ONGOING"
	ComplaintResolved ComplaintStatus = "RESOLVED"
	ComplaintRejected ComplaintStatus = "REJECTED"
)

// DisappointedClient is the file-management stage of a complaint case. It
// stands alone: the client may or may not exist in the main client table.
type DisappointedClient struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`

	ClientName      string          `gorm:"not null" json:"client_name"`
	Phone           string          `gorm:"not null" json:"phone"`
	ContractDate    utils.DateOnly  `gorm:"not null" json:"contract_date"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"paid_amount"`
	FingerprintDate *utils.DateOnly `json:"fingerprint_date,omitempty"`
	RejectionDate   *utils.DateOnly `json:"rejection_date,omitempty"`
	ClientComplaint string          `gorm:"type:text;not null" json:"client_complaint"`
	Status          ComplaintStatus `gorm:"type:varchar(30);default:'ONGOING'" json:"status"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (d *DisappointedClient) BeforeCreate(tx *gorm.DB) (err error) {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return
}

// ClientFollowup is the second complaint stage. DisappointedClientID links
// back to the originating file-management record; it is optional because a
// followup can be opened directly, and the referenced record is deleted when
// the file-management stage completes.
type ClientFollowup struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	DisappointedClientID *uuid.UUID `gorm:"type:uuid;index" json:"disappointed_client_id,omitempty"`

	FormReceivedDate utils.DateOnly  `gorm:"not null" json:"form_received_date"`
	ClientCallDate   utils.DateOnly  `gorm:"not null" json:"client_call_date"`
	CallDetails      string          `gorm:"type:text;not null" json:"call_details"`
	ClientComplaint  string          `gorm:"type:text;not null" json:"client_complaint"`
	NewAgreement     string          `gorm:"type:text;not null" json:"new_agreement"`
	Status           ComplaintStatus `gorm:"type:varchar(30);default:'ONGOING'" json:"status"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *ClientFollowup) BeforeCreate(tx *gorm.DB) (err error) {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return
}

type LegalCaseStatus string

const (
	LegalUnderReview LegalCaseStatus = "UNDER_REVIEW"
	LegalInCourt     LegalCaseStatus = "IN_COURT"
	LegalResolved    LegalCaseStatus = "RESOLVED"
)

// GeneralCaseType is the default case classification for new legal cases.
const GeneralCaseType = "GENERAL"

// LegalCase is the third complaint stage. FollowupID is optional for the
// same reason DisappointedClientID is on ClientFollowup.
type LegalCase struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;" json:"id"`
	FollowupID *uuid.UUID `gorm:"type:uuid;index" json:"followup_id,omitempty"`

	FormReceivedDate utils.DateOnly  `gorm:"not null" json:"form_received_date"`
	CallDate         utils.DateOnly  `gorm:"not null" json:"call_date"`
	CallDetails      string          `gorm:"type:text;not null" json:"call_details"`
	LastAgreement    string          `gorm:"type:text;not null" json:"last_agreement"`
	CaseType         string          `gorm:"type:varchar(50);default:'GENERAL'" json:"case_type"`
	Status           LegalCaseStatus `gorm:"type:varchar(30);default:'UNDER_REVIEW'" json:"status"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (l *LegalCase) BeforeCreate(tx *gorm.DB) (err error) {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return
}
