package repositories

import (
	"fmt"
	"time"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientRepository interface {
	CreateClient(tx *gorm.DB, client *models.Client) (*models.Client, error)
	GetClientByID(id uuid.UUID) (*models.Client, error)
	GetAllClients() ([]models.Client, error)
	UpdateClient(tx *gorm.DB, client *models.Client) (*models.Client, error)
	GetFilteredClients(filters map[string]string, paginationEnabled bool, limit, offset int) ([]models.Client, int64, error)
	CountClientsByStatus() (map[models.ClientStatus]int64, error)
	CountClientsCreatedSince(since time.Time) (int64, error)
	DistinctVisaTypes() ([]string, error)

	NextPaymentNumber(tx *gorm.DB, clientID uuid.UUID) (int, error)
	AddPayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error)
	GetPaymentByID(clientID, paymentID uuid.UUID) (*models.Payment, error)
	UpdatePayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error)
	DeletePayment(tx *gorm.DB, clientID, paymentID uuid.UUID) error

	AddFollowup(tx *gorm.DB, followup *models.Followup) (*models.Followup, error)
}

type clientRepository struct {
	DB *gorm.DB
}

// NewClientRepository initializes a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{DB: db}
}

func (cr *clientRepository) CreateClient(tx *gorm.DB, client *models.Client) (*models.Client, error) {
	if client.Status == "" {
		client.Status = models.ClientInProgress
	}

	if err := tx.Create(client).Error; err != nil {
		config.Logger.Error("Failed to create client",
			zap.Error(err),
			zap.String("clientName", client.Name))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	config.Logger.Info("Created client successfully",
		zap.String("clientID", client.ID.String()),
		zap.String("clientName", client.Name))

	return client, nil
}

// GetClientByID loads a client with its full ledger, checklist and notes.
func (cr *clientRepository) GetClientByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := cr.DB.
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_paid DESC, number ASC")
		}).
		Preload("Documents", func(db *gorm.DB) *gorm.DB {
			return db.Order("required DESC, created_at ASC")
		}).
		Preload("Followups", func(db *gorm.DB) *gorm.DB {
			return db.Order("date DESC, created_at DESC")
		}).
		First(&client, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get client %s: %w", id, err)
	}
	return &client, nil
}

func (cr *clientRepository) GetAllClients() ([]models.Client, error) {
	var clients []models.Client
	if err := cr.DB.Preload("Payments").Preload("Documents").Order("created_at DESC").Find(&clients).Error; err != nil {
		config.Logger.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

func (cr *clientRepository) UpdateClient(tx *gorm.DB, client *models.Client) (*models.Client, error) {
	if err := tx.Save(client).Error; err != nil {
		return nil, fmt.Errorf("failed to update client %s: %w", client.ID, err)
	}
	return client, nil
}

func (cr *clientRepository) CountClientsByStatus() (map[models.ClientStatus]int64, error) {
	type statusCount struct {
		Status models.ClientStatus
		Count  int64
	}
	var rows []statusCount
	err := cr.DB.Model(&models.Client{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count clients by status: %w", err)
	}

	counts := make(map[models.ClientStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

func (cr *clientRepository) CountClientsCreatedSince(since time.Time) (int64, error) {
	var total int64
	err := cr.DB.Model(&models.Client{}).Where("created_at >= ?", since).Count(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count recent clients: %w", err)
	}
	return total, nil
}

func (cr *clientRepository) DistinctVisaTypes() ([]string, error) {
	var visaTypes []string
	err := cr.DB.Model(&models.Client{}).Distinct("visa_type").Order("visa_type ASC").Pluck("visa_type", &visaTypes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list visa types: %w", err)
	}
	return visaTypes, nil
}

// NextPaymentNumber returns max(number)+1 within the client's ledger.
func (cr *clientRepository) NextPaymentNumber(tx *gorm.DB, clientID uuid.UUID) (int, error) {
	var maxNumber int
	err := tx.Model(&models.Payment{}).
		Where("client_id = ?", clientID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&maxNumber).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get next payment number: %w", err)
	}
	return maxNumber + 1, nil
}

func (cr *clientRepository) AddPayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error) {
	if err := tx.Create(payment).Error; err != nil {
		config.Logger.Error("Failed to add payment",
			zap.Error(err),
			zap.String("clientID", payment.ClientID.String()))
		return nil, fmt.Errorf("failed to add payment: %w", err)
	}
	return payment, nil
}

func (cr *clientRepository) GetPaymentByID(clientID, paymentID uuid.UUID) (*models.Payment, error) {
	var payment models.Payment
	err := cr.DB.First(&payment, "id = ? AND client_id = ?", paymentID, clientID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get payment %s: %w", paymentID, err)
	}
	return &payment, nil
}

func (cr *clientRepository) UpdatePayment(tx *gorm.DB, payment *models.Payment) (*models.Payment, error) {
	if err := tx.Save(payment).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment %s: %w", payment.ID, err)
	}
	return payment, nil
}

func (cr *clientRepository) DeletePayment(tx *gorm.DB, clientID, paymentID uuid.UUID) error {
	result := tx.Where("id = ? AND client_id = ?", paymentID, clientID).Delete(&models.Payment{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (cr *clientRepository) AddFollowup(tx *gorm.DB, followup *models.Followup) (*models.Followup, error) {
	if err := tx.Create(followup).Error; err != nil {
		config.Logger.Error("Failed to add followup",
			zap.Error(err),
			zap.String("clientID", followup.ClientID.String()))
		return nil, fmt.Errorf("failed to add followup: %w", err)
	}
	return followup, nil
}
