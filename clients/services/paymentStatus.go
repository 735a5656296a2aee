package services

import (
	"sort"
	"time"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentState is the derived label of a ledger entry. It is never stored;
// it is recomputed from the entry's dates on every read.
type PaymentState string

const (
	PaymentPaid        PaymentState = "PAID"
	PaymentOverdue     PaymentState = "OVERDUE"
	PaymentDueSoon     PaymentState = "DUE_SOON"
	PaymentScheduled   PaymentState = "SCHEDULED"
	PaymentUnspecified PaymentState = "UNSPECIFIED"
)

// DueSoonWindowDays is how far ahead an unpaid payment counts as due soon,
// inclusive of the last day.
const DueSoonWindowDays = 7

// DerivePaymentStatus classifies a payment against the given day. The
// caller passes the day so the rule stays a pure function.
func DerivePaymentStatus(p *models.Payment, today time.Time) PaymentState {
	if p.IsPaid {
		return PaymentPaid
	}
	if p.NextDueDate == nil {
		return PaymentUnspecified
	}
	days := p.NextDueDate.DaysUntil(today)
	switch {
	case days < 0:
		return PaymentOverdue
	case days <= DueSoonWindowDays:
		return PaymentDueSoon
	default:
		return PaymentScheduled
	}
}

// PaymentAlert is a dashboard or client-detail row for a payment that needs
// attention. DaysLeft is negative for overdue entries.
type PaymentAlert struct {
	ClientID      uuid.UUID       `json:"client_id"`
	ClientName    string          `json:"client_name"`
	PaymentID     uuid.UUID       `json:"payment_id"`
	PaymentNumber int             `json:"payment_number"`
	Amount        decimal.Decimal `json:"amount"`
	DueDate       string          `json:"due_date"`
	DaysLeft      int             `json:"days_left"`
	State         PaymentState    `json:"state"`
}

// BuildPaymentAlerts collects the overdue and due-soon entries of one
// client's ledger.
func BuildPaymentAlerts(client *models.Client, today time.Time) []PaymentAlert {
	alerts := make([]PaymentAlert, 0)
	for i := range client.Payments {
		p := &client.Payments[i]
		state := DerivePaymentStatus(p, today)
		if state != PaymentOverdue && state != PaymentDueSoon {
			continue
		}
		alerts = append(alerts, PaymentAlert{
			ClientID:      client.ID,
			ClientName:    client.Name,
			PaymentID:     p.ID,
			PaymentNumber: p.Number,
			Amount:        p.Amount,
			DueDate:       p.NextDueDate.Time().Format("2006-01-02"),
			DaysLeft:      p.NextDueDate.DaysUntil(today),
			State:         state,
		})
	}
	SortPaymentAlerts(alerts)
	return alerts
}

// SortPaymentAlerts orders overdue entries before due-soon ones, most
// urgent first within each bucket.
func SortPaymentAlerts(alerts []PaymentAlert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		if (alerts[i].State == PaymentOverdue) != (alerts[j].State == PaymentOverdue) {
			return alerts[i].State == PaymentOverdue
		}
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
}

// MissingRequiredDocuments lists the names of required checklist entries
// that are still missing. Requires Documents to be loaded.
func MissingRequiredDocuments(client *models.Client) []string {
	missing := make([]string, 0)
	for _, d := range client.Documents {
		if d.Required && d.Status != models.CompleteDocument {
			missing = append(missing, d.Name)
		}
	}
	return missing
}
