package controllers

import (
	"errors"
	"strings"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/documents/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type AddCustomDocumentRequest struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
}

// AddCustomDocumentController adds an extra checklist entry beyond the
// seeded defaults. Names must be unique within the client's checklist.
func (dc *DocumentController) AddCustomDocumentController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}

	var request AddCustomDocumentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	name := strings.TrimSpace(request.Name)
	if name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Document name is required",
		})
	}

	existing, err := dc.DocumentRepo.GetDocumentsByClient(clientID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while checking the checklist",
			"error":   err.Error(),
		})
	}
	for _, d := range existing {
		if d.Name == name {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "A document with this name already exists for the client",
			})
		}
	}

	doc := models.Document{
		ClientID:            clientID,
		Name:                name,
		Required:            request.Required,
		Status:              models.MissingDocument,
		DeadlineWarningDays: models.DefaultWarningDays,
	}

	tx := dc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not start database transaction",
			"error":   tx.Error.Error(),
		})
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	createdDoc, err := dc.DocumentRepo.CreateDocument(tx, &doc)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while adding the document",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Document added",
		"data":    createdDoc,
	})
}

// DeleteCustomDocumentController removes an extra checklist entry. Seeded
// default documents are protected.
func (dc *DocumentController) DeleteCustomDocumentController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}
	documentID, err := uuid.Parse(c.Params("docId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid document ID",
			"error":   err.Error(),
		})
	}

	doc, err := dc.DocumentRepo.GetDocumentByID(clientID, documentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Document not found",
			"error":   err.Error(),
		})
	}

	if services.IsDefaultDocument(doc.Name) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Default checklist documents cannot be deleted",
		})
	}

	tx := dc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not start database transaction",
			"error":   tx.Error.Error(),
		})
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	if err := dc.DocumentRepo.DeleteDocument(tx, clientID, documentID); err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Document not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while deleting the document",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Document deleted",
	})
}
