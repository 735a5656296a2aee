package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClientLedgerTotals(t *testing.T) {
	client := Client{
		TotalAmount: decimal.NewFromInt(1000),
		Payments: []Payment{
			{Amount: decimal.NewFromInt(300), IsPaid: true},
			{Amount: decimal.NewFromInt(200), IsPaid: true},
			{Amount: decimal.NewFromInt(400), IsPaid: false},
		},
	}

	assert.True(t, client.PaidSum().Equal(decimal.NewFromInt(500)))
	assert.True(t, client.Remaining().Equal(decimal.NewFromInt(500)))
}

func TestClientRemainingFlooredAtZero(t *testing.T) {
	client := Client{
		TotalAmount: decimal.NewFromInt(100),
		Payments: []Payment{
			{Amount: decimal.NewFromInt(150), IsPaid: true},
		},
	}

	assert.True(t, client.Remaining().IsZero())
}

func TestClientWithoutPaymentsOwesEverything(t *testing.T) {
	client := Client{TotalAmount: decimal.NewFromInt(750)}

	assert.True(t, client.PaidSum().IsZero())
	assert.True(t, client.Remaining().Equal(decimal.NewFromInt(750)))
}
