package controllers

import (
	"strings"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AddFollowupRequest struct {
	Date  string `json:"date"`
	Notes string `json:"notes"`
}

// AddFollowupController appends a dated note to the client. Notes are
// append-only; there is no edit or delete.
func (cc *ClientController) AddFollowupController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}

	var request AddFollowupRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if strings.TrimSpace(request.Notes) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Followup notes are required",
		})
	}

	date, err := utils.ParseDateOnly(request.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid followup date, expected YYYY-MM-DD",
		})
	}

	if _, err := cc.ClientRepo.GetClientByID(clientID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
			"error":   err.Error(),
		})
	}

	followup := models.Followup{
		ClientID:  clientID,
		Date:      date,
		Notes:     request.Notes,
		CreatedBy: actingEmployee(c),
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

	createdFollowup, err := cc.ClientRepo.AddFollowup(tx, &followup)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while adding the followup",
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
		"message": "Followup added",
		"data":    createdFollowup,
	})
}
