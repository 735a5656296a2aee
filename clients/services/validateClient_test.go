package services

import (
	"testing"
	"visa-office-backend/db/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func validClient() models.Client {
	return models.Client{
		Name:        "Mona Farid",
		Phone:       "+201001234567",
		VisaType:    "Work",
		TotalAmount: decimal.NewFromInt(5000),
	}
}

func TestValidateClient(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *models.Client)
		wantErr string
	}{
		{
			name:    "valid client",
			mutate:  func(c *models.Client) {},
			wantErr: "",
		},
		{
			name:    "missing name",
			mutate:  func(c *models.Client) { c.Name = "  " },
			wantErr: "Client name is required",
		},
		{
			name:    "missing phone",
			mutate:  func(c *models.Client) { c.Phone = "" },
			wantErr: "Phone number is required",
		},
		{
			name:    "malformed phone",
			mutate:  func(c *models.Client) { c.Phone = "12-34" },
			wantErr: "Phone number must be 8 to 15 digits, optionally starting with '+'",
		},
		{
			name:    "missing visa type",
			mutate:  func(c *models.Client) { c.VisaType = "" },
			wantErr: "Visa type is required",
		},
		{
			name:    "zero total amount",
			mutate:  func(c *models.Client) { c.TotalAmount = decimal.Zero },
			wantErr: "Total amount must be a positive number",
		},
		{
			name:    "negative total amount",
			mutate:  func(c *models.Client) { c.TotalAmount = decimal.NewFromInt(-100) },
			wantErr: "Total amount must be a positive number",
		},
		{
			name:    "smallest positive amount",
			mutate:  func(c *models.Client) { c.TotalAmount = decimal.NewFromFloat(0.01) },
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := validClient()
			tt.mutate(&client)
			assert.Equal(t, tt.wantErr, ValidateClient(&client))
		})
	}
}
