package controllers

import (
	"visa-office-backend/clients/services"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UpdateClientStatusRequest struct {
	Status              string `json:"status"`
	ResubmissionAttempt *int   `json:"resubmission_attempt"`
}

// UpdateClientStatusController changes a client's processing status.
// Switching to RESUBMITTED requires the attempt number; any other status
// clears it. Re-submitting the current status is rejected.
func (cc *ClientController) UpdateClientStatusController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}

	var request UpdateClientStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if err := services.IsValidStatus(request.Status); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	client, err := cc.ClientRepo.GetClientByID(clientID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
			"error":   err.Error(),
		})
	}

	newStatus := models.ClientStatus(request.Status)
	if client.Status == newStatus {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Client already has this status",
		})
	}

	if newStatus == models.ClientResubmitted {
		if request.ResubmissionAttempt == nil || *request.ResubmissionAttempt < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Resubmission attempt number is required",
			})
		}
		client.ResubmissionAttempt = request.ResubmissionAttempt
	} else {
		client.ResubmissionAttempt = nil
	}
	client.Status = newStatus

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

	updatedClient, err := cc.ClientRepo.UpdateClient(tx, client)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to update client status", zap.Error(err), zap.String("clientID", clientID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating client status",
			"error":   err.Error(),
		})
	}

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.UpdateClient(*updatedClient); err != nil {
			tx.Rollback()
			config.Logger.Error("Failed to update client in Bleve index", zap.Error(err), zap.String("clientID", clientID.String()))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Client status could not be updated because indexing failed",
				"error":   err.Error(),
			})
		}
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Client status updated",
		"data":    updatedClient,
	})
}
