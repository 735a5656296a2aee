package controllers

import (
	"strings"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreateDisappointedClientRequest struct {
	ClientName      string `json:"client_name"`
	Phone           string `json:"phone"`
	ContractDate    string `json:"contract_date"`
	PaidAmount      string `json:"paid_amount"`
	FingerprintDate string `json:"fingerprint_date"`
	RejectionDate   string `json:"rejection_date"`
	ClientComplaint string `json:"client_complaint"`
}

// CreateDisappointedClientController opens the file-management stage of a
// complaint case.
func (cc *ComplaintController) CreateDisappointedClientController(c *fiber.Ctx) error {
	var request CreateDisappointedClientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if strings.TrimSpace(request.ClientName) == "" || strings.TrimSpace(request.Phone) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Client name and phone are required",
		})
	}
	if strings.TrimSpace(request.ClientComplaint) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Client complaint is required",
		})
	}

	contractDate, err := utils.ParseDateOnly(request.ContractDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid contract date, expected YYYY-MM-DD",
		})
	}

	paidAmount, err := decimal.NewFromString(request.PaidAmount)
	if err != nil || paidAmount.IsNegative() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Paid amount must be a non-negative number",
		})
	}

	var fingerprintDate, rejectionDate *utils.DateOnly
	if request.FingerprintDate != "" {
		parsed, err := utils.ParseDateOnly(request.FingerprintDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid fingerprint date, expected YYYY-MM-DD",
			})
		}
		fingerprintDate = &parsed
	}
	if request.RejectionDate != "" {
		parsed, err := utils.ParseDateOnly(request.RejectionDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid rejection date, expected YYYY-MM-DD",
			})
		}
		rejectionDate = &parsed
	}

	record := models.DisappointedClient{
		ClientName:      request.ClientName,
		Phone:           request.Phone,
		ContractDate:    contractDate,
		PaidAmount:      paidAmount,
		FingerprintDate: fingerprintDate,
		RejectionDate:   rejectionDate,
		ClientComplaint: request.ClientComplaint,
		Status:          models.ComplaintOngoing,
		CreatedBy:       actingEmployee(c),
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

	created, err := cc.ComplaintRepo.CreateDisappointedClient(tx, &record)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the record",
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
		"message": "Disappointed client record created",
		"data":    created,
	})
}

// ListDisappointedClientsController lists file-management records,
// optionally filtered by status.
func (cc *ComplaintController) ListDisappointedClientsController(c *fiber.Ctx) error {
	records, err := cc.ComplaintRepo.ListDisappointedClients(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing records",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": records})
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDisappointedClientStatusController changes the stage status
// (ongoing, resolved or rejected).
func (cc *ComplaintController) UpdateDisappointedClientStatusController(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid record ID",
			"error":   err.Error(),
		})
	}

	var request UpdateComplaintStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	status := models.ComplaintStatus(request.Status)
	if status != models.ComplaintOngoing && status != models.ComplaintResolved && status != models.ComplaintRejected {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid complaint status",
		})
	}

	record, err := cc.ComplaintRepo.GetDisappointedClientByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
			"error":   err.Error(),
		})
	}

	record.Status = status
	updated, err := cc.ComplaintRepo.UpdateDisappointedClient(cc.DB.WithContext(c.Context()), record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the record",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Record status updated",
		"data":    updated,
	})
}
