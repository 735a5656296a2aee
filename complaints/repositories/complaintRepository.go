package repositories

import (
	"fmt"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ComplaintRepository interface {
	CreateDisappointedClient(tx *gorm.DB, record *models.DisappointedClient) (*models.DisappointedClient, error)
	GetDisappointedClientByID(id uuid.UUID) (*models.DisappointedClient, error)
	ListDisappointedClients(status string) ([]models.DisappointedClient, error)
	UpdateDisappointedClient(tx *gorm.DB, record *models.DisappointedClient) (*models.DisappointedClient, error)

	CreateClientFollowup(tx *gorm.DB, record *models.ClientFollowup) (*models.ClientFollowup, error)
	GetClientFollowupByID(id uuid.UUID) (*models.ClientFollowup, error)
	ListClientFollowups(status string) ([]models.ClientFollowup, error)
	UpdateClientFollowup(tx *gorm.DB, record *models.ClientFollowup) (*models.ClientFollowup, error)

	CreateLegalCase(tx *gorm.DB, record *models.LegalCase) (*models.LegalCase, error)
	GetLegalCaseByID(id uuid.UUID) (*models.LegalCase, error)
	ListLegalCases(status string) ([]models.LegalCase, error)
	UpdateLegalCase(tx *gorm.DB, record *models.LegalCase) (*models.LegalCase, error)

	ListArchivedCases(stage string) ([]models.ArchivedCase, error)
	GetArchivedCaseByID(id uuid.UUID) (*models.ArchivedCase, error)
	ListCompletedClients() ([]models.CompletedClient, error)
}

type complaintRepository struct {
	DB *gorm.DB
}

// NewComplaintRepository initializes a new complaint repository
func NewComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &complaintRepository{DB: db}
}

func (cr *complaintRepository) CreateDisappointedClient(tx *gorm.DB, record *models.DisappointedClient) (*models.DisappointedClient, error) {
	if record.Status == "" {
		record.Status = models.ComplaintOngoing
	}
	if err := tx.Create(record).Error; err != nil {
		config.Logger.Error("Failed to create disappointed client record",
			zap.Error(err),
			zap.String("clientName", record.ClientName))
		return nil, fmt.Errorf("failed to create disappointed client record: %w", err)
	}
	return record, nil
}

func (cr *complaintRepository) GetDisappointedClientByID(id uuid.UUID) (*models.DisappointedClient, error) {
	var record models.DisappointedClient
	if err := cr.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get disappointed client %s: %w", id, err)
	}
	return &record, nil
}

func (cr *complaintRepository) ListDisappointedClients(status string) ([]models.DisappointedClient, error) {
	var records []models.DisappointedClient
	query := cr.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list disappointed clients: %w", err)
	}
	return records, nil
}

func (cr *complaintRepository) UpdateDisappointedClient(tx *gorm.DB, record *models.DisappointedClient) (*models.DisappointedClient, error) {
	if err := tx.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update disappointed client %s: %w", record.ID, err)
	}
	return record, nil
}

func (cr *complaintRepository) CreateClientFollowup(tx *gorm.DB, record *models.ClientFollowup) (*models.ClientFollowup, error) {
	if record.Status == "" {
		record.Status = models.ComplaintOngoing
	}
	if err := tx.Create(record).Error; err != nil {
		config.Logger.Error("Failed to create client followup record", zap.Error(err))
		return nil, fmt.Errorf("failed to create client followup record: %w", err)
	}
	return record, nil
}

func (cr *complaintRepository) GetClientFollowupByID(id uuid.UUID) (*models.ClientFollowup, error) {
	var record models.ClientFollowup
	if err := cr.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get client followup %s: %w", id, err)
	}
	return &record, nil
}

func (cr *complaintRepository) ListClientFollowups(status string) ([]models.ClientFollowup, error) {
	var records []models.ClientFollowup
	query := cr.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list client followups: %w", err)
	}
	return records, nil
}

func (cr *complaintRepository) UpdateClientFollowup(tx *gorm.DB, record *models.ClientFollowup) (*models.ClientFollowup, error) {
	if err := tx.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update client followup %s: %w", record.ID, err)
	}
	return record, nil
}

func (cr *complaintRepository) CreateLegalCase(tx *gorm.DB, record *models.LegalCase) (*models.LegalCase, error) {
	if record.Status == "" {
		record.Status = models.LegalUnderReview
	}
	if record.CaseType == "" {
		record.CaseType = models.GeneralCaseType
	}
	if err := tx.Create(record).Error; err != nil {
		config.Logger.Error("Failed to create legal case record", zap.Error(err))
		return nil, fmt.Errorf("failed to create legal case record: %w", err)
	}
	return record, nil
}

func (cr *complaintRepository) GetLegalCaseByID(id uuid.UUID) (*models.LegalCase, error) {
	var record models.LegalCase
	if err := cr.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get legal case %s: %w", id, err)
	}
	return &record, nil
}

func (cr *complaintRepository) ListLegalCases(status string) ([]models.LegalCase, error) {
	var records []models.LegalCase
	query := cr.DB.Order("created_at DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list legal cases: %w", err)
	}
	return records, nil
}

func (cr *complaintRepository) UpdateLegalCase(tx *gorm.DB, record *models.LegalCase) (*models.LegalCase, error) {
	if err := tx.Save(record).Error; err != nil {
		return nil, fmt.Errorf("failed to update legal case %s: %w", record.ID, err)
	}
	return record, nil
}

func (cr *complaintRepository) ListArchivedCases(stage string) ([]models.ArchivedCase, error) {
	var records []models.ArchivedCase
	query := cr.DB.Order("created_at DESC")
	if stage != "" {
		query = query.Where("stage = ?", stage)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list archived cases: %w", err)
	}
	return records, nil
}

func (cr *complaintRepository) GetArchivedCaseByID(id uuid.UUID) (*models.ArchivedCase, error) {
	var record models.ArchivedCase
	if err := cr.DB.First(&record, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get archived case %s: %w", id, err)
	}
	return &record, nil
}

func (cr *complaintRepository) ListCompletedClients() ([]models.CompletedClient, error) {
	var records []models.CompletedClient
	if err := cr.DB.Order("completion_date DESC, created_at DESC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list completed clients: %w", err)
	}
	return records, nil
}
