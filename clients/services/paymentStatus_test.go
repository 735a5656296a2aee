package services

import (
	"testing"
	"time"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateOnlyPtr(t time.Time) *utils.DateOnly {
	d := utils.NewDateOnly(t)
	return &d
}

func TestDerivePaymentStatus(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		payment models.Payment
		want    PaymentState
	}{
		{
			name:    "paid wins regardless of due date",
			payment: models.Payment{IsPaid: true, NextDueDate: dateOnlyPtr(today.AddDate(0, 0, -30))},
			want:    PaymentPaid,
		},
		{
			name:    "no due date is unspecified",
			payment: models.Payment{},
			want:    PaymentUnspecified,
		},
		{
			name:    "due yesterday is overdue",
			payment: models.Payment{NextDueDate: dateOnlyPtr(today.AddDate(0, 0, -1))},
			want:    PaymentOverdue,
		},
		{
			name:    "due today is due soon",
			payment: models.Payment{NextDueDate: dateOnlyPtr(today)},
			want:    PaymentDueSoon,
		},
		{
			name:    "due on the seventh day is still due soon",
			payment: models.Payment{NextDueDate: dateOnlyPtr(today.AddDate(0, 0, 7))},
			want:    PaymentDueSoon,
		},
		{
			name:    "due on the eighth day is scheduled",
			payment: models.Payment{NextDueDate: dateOnlyPtr(today.AddDate(0, 0, 8))},
			want:    PaymentScheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DerivePaymentStatus(&tt.payment, today))
		})
	}
}

func TestBuildPaymentAlerts_OrderAndFiltering(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	client := &models.Client{
		ID:   uuid.New(),
		Name: "Ahmed Hassan",
		Payments: []models.Payment{
			{ID: uuid.New(), Number: 1, Amount: decimal.NewFromInt(100), NextDueDate: dateOnlyPtr(today.AddDate(0, 0, 3))},
			{ID: uuid.New(), Number: 2, Amount: decimal.NewFromInt(200), NextDueDate: dateOnlyPtr(today.AddDate(0, 0, -5))},
			{ID: uuid.New(), Number: 3, Amount: decimal.NewFromInt(300), NextDueDate: dateOnlyPtr(today.AddDate(0, 0, -1))},
			{ID: uuid.New(), Number: 4, Amount: decimal.NewFromInt(400), IsPaid: true},
			{ID: uuid.New(), Number: 5, Amount: decimal.NewFromInt(500), NextDueDate: dateOnlyPtr(today.AddDate(0, 0, 30))},
		},
	}

	alerts := BuildPaymentAlerts(client, today)
	require.Len(t, alerts, 3)

	// Overdue entries come first, most overdue leading, then due-soon.
	assert.Equal(t, 2, alerts[0].PaymentNumber)
	assert.Equal(t, PaymentOverdue, alerts[0].State)
	assert.Equal(t, -5, alerts[0].DaysLeft)

	assert.Equal(t, 3, alerts[1].PaymentNumber)
	assert.Equal(t, PaymentOverdue, alerts[1].State)

	assert.Equal(t, 1, alerts[2].PaymentNumber)
	assert.Equal(t, PaymentDueSoon, alerts[2].State)
}

func TestBuildPaymentAlerts_EmptyLedger(t *testing.T) {
	client := &models.Client{ID: uuid.New(), Name: "Empty"}
	alerts := BuildPaymentAlerts(client, time.Now())
	assert.Empty(t, alerts)
}

func TestMissingRequiredDocuments(t *testing.T) {
	client := &models.Client{
		Documents: []models.Document{
			{Name: "Passport", Required: true, Status: models.MissingDocument},
			{Name: "Bank Statement", Required: true, Status: models.CompleteDocument},
			{Name: "Graduation Certificate", Required: false, Status: models.MissingDocument},
		},
	}

	missing := MissingRequiredDocuments(client)
	assert.Equal(t, []string{"Passport"}, missing)
}
