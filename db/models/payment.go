package models

import (
	"time"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentCategory labels what an installment was for.
type PaymentCategory string

const (
	InstallmentPayment PaymentCategory = "INSTALLMENT"
	EmbassyFeePayment  PaymentCategory = "EMBASSY_FEE"
)

// Payment is one row of a client's ledger. A paid payment carries its paid
// date; an unpaid one carries a next-due date or is unscheduled.
type Payment struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	// Sequence number, unique per client, assigned as max+1.
	Number int `gorm:"not null" json:"number"`

	Amount      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"amount"`
	IsPaid      bool            `gorm:"default:false" json:"is_paid"`
	PaidDate    *utils.DateOnly `json:"paid_date,omitempty"`
	NextDueDate *utils.DateOnly `json:"next_due_date,omitempty"`
	Category    PaymentCategory `gorm:"type:varchar(50);default:'INSTALLMENT'" json:"category"`

	CreatedBy string    `gorm:"not null" json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return
}
