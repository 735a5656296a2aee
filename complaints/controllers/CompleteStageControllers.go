package controllers

import (
	"errors"
	"visa-office-backend/complaints/services"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// completeStage runs one destructive-and-additive stage completion inside a
// single transaction: the archive row is created and the live record(s)
// deleted together, or neither happens.
func (cc *ComplaintController) completeStage(
	c *fiber.Ctx,
	complete func(tx *gorm.DB, id uuid.UUID, completedBy string) (*models.ArchivedCase, error),
	message string,
) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid record ID",
			"error":   err.Error(),
		})
	}

	tx := cc.DB.Begin()
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

	archived, err := complete(tx, recordID, actingEmployee(c))
	if err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Record not found",
				"error":   err.Error(),
			})
		}
		config.Logger.Error("Failed to complete complaint stage",
			zap.Error(err),
			zap.String("recordID", recordID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while completing the stage",
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
		"message": message,
		"data":    archived,
	})
}

// CompleteFileManagementController archives a file-management record and
// removes it from the active queue.
func (cc *ComplaintController) CompleteFileManagementController(c *fiber.Ctx) error {
	return cc.completeStage(c, services.CompleteFileManagement, "File management stage completed")
}

// CompleteClientFollowupController archives a followup together with its
// remaining file-management predecessor.
func (cc *ComplaintController) CompleteClientFollowupController(c *fiber.Ctx) error {
	return cc.completeStage(c, services.CompleteClientFollowup, "Client followup stage completed")
}

// CompleteLegalCaseController archives a legal case with its remaining
// chain and updates the completed-clients roster.
func (cc *ComplaintController) CompleteLegalCaseController(c *fiber.Ctx) error {
	return cc.completeStage(c, services.CompleteLegalCase, "Legal case stage completed")
}
