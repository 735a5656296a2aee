package controllers

import (
	"visa-office-backend/clients/services"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	documents_services "visa-office-backend/documents/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateClientRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	VisaType    string `json:"visa_type"`
	TotalAmount string `json:"total_amount"`
}

// CreateClientController creates a client and seeds its default document
// checklist in the same transaction.
func (cc *ClientController) CreateClientController(c *fiber.Ctx) error {
	var request CreateClientRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	totalAmount := decimal.Zero
	if request.TotalAmount != "" {
		parsed, err := decimal.NewFromString(request.TotalAmount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid total amount",
				"error":   err.Error(),
			})
		}
		totalAmount = parsed
	}

	client := models.Client{
		Name:        request.Name,
		Phone:       request.Phone,
		VisaType:    request.VisaType,
		TotalAmount: totalAmount,
		Status:      models.ClientInProgress,
		CreatedBy:   actingEmployee(c),
	}

	validationError := services.ValidateClient(&client)
	if validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
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

	createdClient, err := cc.ClientRepo.CreateClient(tx, &client)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to create client in database", zap.Error(err), zap.String("clientName", client.Name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating client in the database",
			"error":   err.Error(),
		})
	}

	seededDocs, err := documents_services.SeedChecklist(tx, createdClient.ID)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to seed document checklist", zap.Error(err), zap.String("clientID", createdClient.ID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while seeding the document checklist",
			"error":   err.Error(),
		})
	}
	createdClient.Documents = seededDocs

	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.IndexSingleClient(*createdClient); err != nil {
			tx.Rollback()
			config.Logger.Error(
				"Failed to index client in Bleve. Rolling back database transaction.",
				zap.Error(err),
				zap.String("clientID", createdClient.ID.String()),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Client could not be created because indexing failed",
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

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client successfully created",
		"data":    createdClient,
	})
}
