package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientStatus tracks where a visa application currently stands.
type ClientStatus string

const (
	ClientInProgress  ClientStatus = "IN_PROGRESS"
	ClientCompleted   ClientStatus = "COMPLETED"
	ClientRejected    ClientStatus = "REJECTED"
	ClientResubmitted ClientStatus = "RESUBMITTED"
	ClientCancelled   ClientStatus = "CANCELLED"
)

// Client is a contracted visa applicant. It owns its payment ledger,
// document checklist and followup notes exclusively; deleting the client
// cascades to all of them.
type Client struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;" json:"id"`
	Name        string          `gorm:"not null;index" json:"name"`
	Phone       string          `gorm:"not null;index" json:"phone"`
	VisaType    string          `gorm:"not null" json:"visa_type"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_amount"`
	Status      ClientStatus    `gorm:"type:varchar(30);default:'IN_PROGRESS'" json:"status"`

	// Attempt number, set only while status is RESUBMITTED.
	ResubmissionAttempt *int `json:"resubmission_attempt,omitempty"`

	Payments  []Payment  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	Documents []Document `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Followups []Followup `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"followups,omitempty"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return
}

// PaidSum totals the amounts of paid payments. Requires Payments to be loaded.
func (c *Client) PaidSum() decimal.Decimal {
	sum := decimal.Zero
	for _, p := range c.Payments {
		if p.IsPaid {
			sum = sum.Add(p.Amount)
		}
	}
	return sum
}

// Remaining is the contracted total minus the paid sum, floored at zero.
func (c *Client) Remaining() decimal.Decimal {
	remaining := c.TotalAmount.Sub(c.PaidSum())
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
