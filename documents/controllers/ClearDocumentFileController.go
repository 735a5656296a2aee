package controllers

import (
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ClearDocumentFileController removes the uploaded file from a checklist
// entry and flips it back to missing. The entry itself stays.
func (dc *DocumentController) ClearDocumentFileController(c *fiber.Ctx) error {
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

	doc.FileBytes = nil
	doc.FileName = nil
	doc.FileMime = nil
	doc.FileSize = nil
	doc.UploadedAt = nil
	doc.Status = models.MissingDocument

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

	// Save would skip the nil blob; update columns explicitly.
	err = tx.Model(doc).Select("file_bytes", "file_name", "file_mime", "file_size", "uploaded_at", "status").Updates(map[string]interface{}{
		"file_bytes":  nil,
		"file_name":   nil,
		"file_mime":   nil,
		"file_size":   nil,
		"uploaded_at": nil,
		"status":      models.MissingDocument,
	}).Error
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while clearing the file",
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
		"message": "File removed and status reset",
		"data":    doc,
	})
}
