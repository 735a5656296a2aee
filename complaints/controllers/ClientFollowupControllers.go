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

type CreateClientFollowupRequest struct {
	DisappointedClientID string `json:"disappointed_client_id"`
	FormReceivedDate     string `json:"form_received_date"`
	ClientCallDate       string `json:"client_call_date"`
	CallDetails          string `json:"call_details"`
	ClientComplaint      string `json:"client_complaint"`
	NewAgreement         string `json:"new_agreement"`
}

// CreateClientFollowupController opens the followup stage, optionally
// chained to an existing file-management record.
func (cc *ComplaintController) CreateClientFollowupController(c *fiber.Ctx) error {
	var request CreateClientFollowupRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if strings.TrimSpace(request.CallDetails) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Call details are required",
		})
	}

	formReceived, err := utils.ParseDateOnly(request.FormReceivedDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid form received date, expected YYYY-MM-DD",
		})
	}
	clientCall, err := utils.ParseDateOnly(request.ClientCallDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid client call date, expected YYYY-MM-DD",
		})
	}

	var disappointedClientID *uuid.UUID
	if request.DisappointedClientID != "" {
		parsed, err := uuid.Parse(request.DisappointedClientID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid disappointed client ID",
			})
		}
		if _, err := cc.ComplaintRepo.GetDisappointedClientByID(parsed); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Disappointed client record not found",
				"error":   err.Error(),
			})
		}
		disappointedClientID = &parsed
	}

	record := models.ClientFollowup{
		DisappointedClientID: disappointedClientID,
		FormReceivedDate:     formReceived,
		ClientCallDate:       clientCall,
		CallDetails:          request.CallDetails,
		ClientComplaint:      request.ClientComplaint,
		NewAgreement:         request.NewAgreement,
		Status:               models.ComplaintOngoing,
		CreatedBy:            actingEmployee(c),
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

	created, err := cc.ComplaintRepo.CreateClientFollowup(tx, &record)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the followup",
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
		"message": "Client followup created",
		"data":    created,
	})
}

func (cc *ComplaintController) ListClientFollowupsController(c *fiber.Ctx) error {
	records, err := cc.ComplaintRepo.ListClientFollowups(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing followups",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": records})
}

func (cc *ComplaintController) UpdateClientFollowupStatusController(c *fiber.Ctx) error {
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

	record, err := cc.ComplaintRepo.GetClientFollowupByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Followup not found",
			"error":   err.Error(),
		})
	}

	record.Status = status
	updated, err := cc.ComplaintRepo.UpdateClientFollowup(cc.DB.WithContext(c.Context()), record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the followup",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Followup status updated",
		"data":    updated,
	})
}
