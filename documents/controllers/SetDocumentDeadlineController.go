package controllers

import (
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SetDocumentDeadlineRequest struct {
	DeadlineStart string `json:"deadline_start"`
	DeadlineEnd   string `json:"deadline_end"`
	WarningDays   int    `json:"warning_days"`
}

// SetDocumentDeadlineController assigns a deadline window to a document.
// The window must have start strictly before end, and the warning threshold
// must be between 1 and 30 days.
func (dc *DocumentController) SetDocumentDeadlineController(c *fiber.Ctx) error {
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

	var request SetDocumentDeadlineRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if request.DeadlineStart == "" || request.DeadlineEnd == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Both window start and end dates are required",
		})
	}

	startDate, err := utils.ParseDateOnly(request.DeadlineStart)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid start date, expected YYYY-MM-DD",
		})
	}
	endDate, err := utils.ParseDateOnly(request.DeadlineEnd)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid end date, expected YYYY-MM-DD",
		})
	}

	if !startDate.Time().Before(endDate.Time()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Window start must be before window end",
		})
	}

	warningDays := request.WarningDays
	if warningDays == 0 {
		warningDays = models.DefaultWarningDays
	}
	if warningDays < 1 || warningDays > 30 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Warning days must be between 1 and 30",
		})
	}

	doc, err := dc.DocumentRepo.GetDocumentByID(clientID, documentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Document not found",
			"error":   err.Error(),
		})
	}

	doc.DeadlineStart = &startDate
	doc.DeadlineEnd = &endDate
	doc.DeadlineWarningDays = warningDays

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
			"message": "Something went wrong while setting the deadline",
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
		"message": "Deadline set",
		"data":    updatedDoc,
	})
}

// RemoveDocumentDeadlineController clears a document's deadline window and
// resets the warning threshold to the default.
func (dc *DocumentController) RemoveDocumentDeadlineController(c *fiber.Ctx) error {
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

	err = tx.Model(doc).Select("deadline_start", "deadline_end", "deadline_warning_days").Updates(map[string]interface{}{
		"deadline_start":        nil,
		"deadline_end":          nil,
		"deadline_warning_days": models.DefaultWarningDays,
	}).Error
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while removing the deadline",
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

	doc.DeadlineStart = nil
	doc.DeadlineEnd = nil
	doc.DeadlineWarningDays = models.DefaultWarningDays

	return c.JSON(fiber.Map{
		"message": "Deadline removed",
		"data":    doc,
	})
}
