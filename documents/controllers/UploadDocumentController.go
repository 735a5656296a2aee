package controllers

import (
	"io"
	"mime"
	"path/filepath"
	"time"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// UploadDocumentController stores the uploaded file inside the document
// row, marks the checklist entry complete and clears any deadline window.
func (dc *DocumentController) UploadDocumentController(c *fiber.Ctx) error {
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

	fileHeader, err := c.FormFile("file")
	if err != nil || fileHeader.Filename == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "A file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while reading the upload",
			"error":   err.Error(),
		})
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while reading the upload",
			"error":   err.Error(),
		})
	}

	fileMime := fileHeader.Header.Get("Content-Type")
	if fileMime == "" {
		fileMime = mime.TypeByExtension(filepath.Ext(fileHeader.Filename))
	}
	if fileMime == "" {
		fileMime = "application/octet-stream"
	}

	now := time.Now()
	fileName := filepath.Base(fileHeader.Filename)
	fileSize := int64(len(data))

	doc.FileBytes = data
	doc.FileName = &fileName
	doc.FileMime = &fileMime
	doc.FileSize = &fileSize
	doc.UploadedAt = &now
	doc.Status = models.CompleteDocument

	// An uploaded document no longer needs its deadline window.
	doc.DeadlineStart = nil
	doc.DeadlineEnd = nil
	doc.DeadlineWarningDays = models.DefaultWarningDays

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

	updatedDoc, err := dc.DocumentRepo.UpdateDocument(tx, doc)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while saving the upload",
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

	config.Logger.Info("Document uploaded",
		zap.String("documentID", updatedDoc.ID.String()),
		zap.String("fileName", fileName),
		zap.Int64("fileSize", fileSize))

	return c.JSON(fiber.Map{
		"message": "File uploaded and deadline cleared",
		"data":    updatedDoc,
	})
}
