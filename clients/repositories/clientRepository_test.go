package repositories

import (
	"testing"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupClientDB(t *testing.T) (*gorm.DB, ClientRepository) {
	t.Helper()
	config.Logger = zap.NewNop()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Client{},
		&models.Payment{},
		&models.Document{},
		&models.Followup{},
	))
	return db, NewClientRepository(db)
}

func seedClient(t *testing.T, db *gorm.DB, repo ClientRepository) *models.Client {
	t.Helper()
	client := &models.Client{
		Name:        "Ahmed Hassan",
		Phone:       "+201001234567",
		VisaType:    "Work",
		TotalAmount: decimal.NewFromInt(2000),
		CreatedBy:   "reception",
	}
	created, err := repo.CreateClient(db, client)
	require.NoError(t, err)
	return created
}

func TestCreateClientDefaultsStatus(t *testing.T) {
	db, repo := setupClientDB(t)
	client := seedClient(t, db, repo)

	assert.Equal(t, models.ClientInProgress, client.Status)
	assert.NotEqual(t, uuid.Nil, client.ID)
}

func TestNextPaymentNumber(t *testing.T) {
	db, repo := setupClientDB(t)
	client := seedClient(t, db, repo)

	number, err := repo.NextPaymentNumber(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, number)

	_, err = repo.AddPayment(db, &models.Payment{
		ClientID:  client.ID,
		Number:    1,
		Amount:    decimal.NewFromInt(500),
		Category:  models.InstallmentPayment,
		CreatedBy: "reception",
	})
	require.NoError(t, err)
	_, err = repo.AddPayment(db, &models.Payment{
		ClientID:  client.ID,
		Number:    2,
		Amount:    decimal.NewFromInt(500),
		Category:  models.InstallmentPayment,
		CreatedBy: "reception",
	})
	require.NoError(t, err)

	number, err = repo.NextPaymentNumber(db, client.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, number)

	// Ledgers are numbered per client.
	other := seedClient(t, db, repo)
	number, err = repo.NextPaymentNumber(db, other.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, number)
}

func TestDeletePayment(t *testing.T) {
	db, repo := setupClientDB(t)
	client := seedClient(t, db, repo)

	payment, err := repo.AddPayment(db, &models.Payment{
		ClientID:  client.ID,
		Number:    1,
		Amount:    decimal.NewFromInt(500),
		Category:  models.InstallmentPayment,
		CreatedBy: "reception",
	})
	require.NoError(t, err)

	require.NoError(t, repo.DeletePayment(db, client.ID, payment.ID))

	err = repo.DeletePayment(db, client.ID, payment.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// A payment cannot be deleted through another client's ledger.
	other := seedClient(t, db, repo)
	payment2, err := repo.AddPayment(db, &models.Payment{
		ClientID:  client.ID,
		Number:    2,
		Amount:    decimal.NewFromInt(100),
		Category:  models.EmbassyFeePayment,
		CreatedBy: "reception",
	})
	require.NoError(t, err)
	err = repo.DeletePayment(db, other.ID, payment2.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCountClientsByStatus(t *testing.T) {
	db, repo := setupClientDB(t)

	seedClient(t, db, repo)
	seedClient(t, db, repo)
	completed := seedClient(t, db, repo)
	completed.Status = models.ClientCompleted
	_, err := repo.UpdateClient(db, completed)
	require.NoError(t, err)

	counts, err := repo.CountClientsByStatus()
	require.NoError(t, err)
	assert.Equal(t, int64(2), counts[models.ClientInProgress])
	assert.Equal(t, int64(1), counts[models.ClientCompleted])
}

func TestGetClientByIDLoadsLedger(t *testing.T) {
	db, repo := setupClientDB(t)
	client := seedClient(t, db, repo)

	_, err := repo.AddPayment(db, &models.Payment{
		ClientID:  client.ID,
		Number:    1,
		Amount:    decimal.NewFromInt(500),
		IsPaid:    true,
		Category:  models.InstallmentPayment,
		CreatedBy: "reception",
	})
	require.NoError(t, err)

	loaded, err := repo.GetClientByID(client.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Payments, 1)
	assert.True(t, loaded.PaidSum().Equal(decimal.NewFromInt(500)))
	assert.True(t, loaded.Remaining().Equal(decimal.NewFromInt(1500)))
}
