package controllers

import (
	"strings"
	"visa-office-backend/complaints/services"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CreateLegalCaseRequest struct {
	FollowupID       string `json:"followup_id"`
	FormReceivedDate string `json:"form_received_date"`
	CallDate         string `json:"call_date"`
	CallDetails      string `json:"call_details"`
	LastAgreement    string `json:"last_agreement"`
	CaseType         string `json:"case_type"`
}

// CreateLegalCaseController opens the legal stage, optionally chained to an
// existing followup record.
func (cc *ComplaintController) CreateLegalCaseController(c *fiber.Ctx) error {
	var request CreateLegalCaseRequest
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
	callDate, err := utils.ParseDateOnly(request.CallDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid call date, expected YYYY-MM-DD",
		})
	}

	var followupID *uuid.UUID
	if request.FollowupID != "" {
		parsed, err := uuid.Parse(request.FollowupID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid followup ID",
			})
		}
		if _, err := cc.ComplaintRepo.GetClientFollowupByID(parsed); err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Followup record not found",
				"error":   err.Error(),
			})
		}
		followupID = &parsed
	}

	caseType := strings.TrimSpace(request.CaseType)
	if caseType == "" {
		caseType = models.GeneralCaseType
	}

	record := models.LegalCase{
		FollowupID:       followupID,
		FormReceivedDate: formReceived,
		CallDate:         callDate,
		CallDetails:      request.CallDetails,
		LastAgreement:    request.LastAgreement,
		CaseType:         caseType,
		Status:           models.LegalUnderReview,
		CreatedBy:        actingEmployee(c),
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

	created, err := cc.ComplaintRepo.CreateLegalCase(tx, &record)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the legal case",
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
		"message": "Legal case created",
		"data":    created,
	})
}

type LegalIntakeRequest struct {
	FollowupID       string `json:"followup_id"`
	FormReceivedDate string `json:"form_received_date"`
	CallDate         string `json:"call_date"`
	CallDetails      string `json:"call_details"`
	LastAgreement    string `json:"last_agreement"`
}

// SubmitLegalIntakeController takes a legal submission and completes the
// whole case in one step: the submission and whatever remains of its chain
// go straight into the archive, and the chain is deleted. Nothing stays in
// the active legal queue.
func (cc *ComplaintController) SubmitLegalIntakeController(c *fiber.Ctx) error {
	var request LegalIntakeRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if strings.TrimSpace(request.CallDetails) == "" || strings.TrimSpace(request.LastAgreement) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Call details and last agreement are required",
		})
	}

	formReceived, err := utils.ParseDateOnly(request.FormReceivedDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid form received date, expected YYYY-MM-DD",
		})
	}
	callDate, err := utils.ParseDateOnly(request.CallDate)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid call date, expected YYYY-MM-DD",
		})
	}

	intake := services.LegalIntake{
		FormReceivedDate: formReceived,
		CallDate:         callDate,
		CallDetails:      request.CallDetails,
		LastAgreement:    request.LastAgreement,
	}
	if request.FollowupID != "" {
		parsed, err := uuid.Parse(request.FollowupID)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid followup ID",
			})
		}
		intake.FollowupID = &parsed
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

	archived, err := services.ArchiveLegalIntake(tx, intake, actingEmployee(c))
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while archiving the legal submission",
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
		"message": "Legal submission archived, all stages completed",
		"data":    archived,
	})
}

func (cc *ComplaintController) ListLegalCasesController(c *fiber.Ctx) error {
	records, err := cc.ComplaintRepo.ListLegalCases(c.Query("status"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing legal cases",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": records})
}

func (cc *ComplaintController) UpdateLegalCaseStatusController(c *fiber.Ctx) error {
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

	status := models.LegalCaseStatus(request.Status)
	if status != models.LegalUnderReview && status != models.LegalInCourt && status != models.LegalResolved {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid legal case status",
		})
	}

	record, err := cc.ComplaintRepo.GetLegalCaseByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Legal case not found",
			"error":   err.Error(),
		})
	}

	record.Status = status
	updated, err := cc.ComplaintRepo.UpdateLegalCase(cc.DB.WithContext(c.Context()), record)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the legal case",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Legal case status updated",
		"data":    updated,
	})
}
