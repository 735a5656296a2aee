package repositories

import (
	"fmt"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type DocumentRepository interface {
	GetDocumentByID(clientID, documentID uuid.UUID) (*models.Document, error)
	GetDocumentsByClient(clientID uuid.UUID) ([]models.Document, error)
	CreateDocument(tx *gorm.DB, doc *models.Document) (*models.Document, error)
	UpdateDocument(tx *gorm.DB, doc *models.Document) (*models.Document, error)
	DeleteDocument(tx *gorm.DB, clientID, documentID uuid.UUID) error
	GetDocumentsWithFiles(clientID uuid.UUID) ([]models.Document, error)
}

type documentRepository struct {
	DB *gorm.DB
}

// NewDocumentRepository initializes a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{DB: db}
}

func (dr *documentRepository) GetDocumentByID(clientID, documentID uuid.UUID) (*models.Document, error) {
	var doc models.Document
	err := dr.DB.First(&doc, "id = ? AND client_id = ?", documentID, clientID).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return &doc, nil
}

func (dr *documentRepository) GetDocumentsByClient(clientID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := dr.DB.Where("client_id = ?", clientID).Order("required DESC, created_at ASC").Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get documents for client %s: %w", clientID, err)
	}
	return docs, nil
}

func (dr *documentRepository) CreateDocument(tx *gorm.DB, doc *models.Document) (*models.Document, error) {
	if err := tx.Create(doc).Error; err != nil {
		config.Logger.Error("Failed to create document",
			zap.Error(err),
			zap.String("clientID", doc.ClientID.String()),
			zap.String("documentName", doc.Name))
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return doc, nil
}

func (dr *documentRepository) UpdateDocument(tx *gorm.DB, doc *models.Document) (*models.Document, error) {
	if err := tx.Save(doc).Error; err != nil {
		return nil, fmt.Errorf("failed to update document %s: %w", doc.ID, err)
	}
	return doc, nil
}

func (dr *documentRepository) DeleteDocument(tx *gorm.DB, clientID, documentID uuid.UUID) error {
	result := tx.Where("id = ? AND client_id = ?", documentID, clientID).Delete(&models.Document{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document %s: %w", documentID, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetDocumentsWithFiles loads only the checklist entries carrying a blob,
// for the zip-all download.
func (dr *documentRepository) GetDocumentsWithFiles(clientID uuid.UUID) ([]models.Document, error) {
	var docs []models.Document
	err := dr.DB.
		Where("client_id = ? AND file_bytes IS NOT NULL", clientID).
		Order("required DESC, created_at ASC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get documents with files for client %s: %w", clientID, err)
	}
	return docs, nil
}
