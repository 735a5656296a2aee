package controllers

import (
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type AddPaymentRequest struct {
	Amount      string `json:"amount"`
	PaidNow     bool   `json:"paid_now"`
	PaidDate    string `json:"paid_date"`
	NextDueDate string `json:"next_due_date"`
	Category    string `json:"category"`
}

// AddPaymentController appends a ledger entry. The sequence number is
// always max+1 within the client's ledger; an explicit paid date, or
// "paid now", marks the entry paid immediately.
func (cc *ClientController) AddPaymentController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}

	var request AddPaymentRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil || !amount.IsPositive() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Payment amount must be a positive number",
		})
	}

	client, err := cc.ClientRepo.GetClientByID(clientID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
			"error":   err.Error(),
		})
	}

	var paidDate *utils.DateOnly
	if request.PaidDate != "" {
		parsed, err := utils.ParseDateOnly(request.PaidDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid paid date, expected YYYY-MM-DD",
			})
		}
		paidDate = &parsed
	} else if request.PaidNow {
		today := utils.NewDateOnly(utils.Today())
		paidDate = &today
	}

	var nextDueDate *utils.DateOnly
	if request.NextDueDate != "" {
		parsed, err := utils.ParseDateOnly(request.NextDueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid next due date, expected YYYY-MM-DD",
			})
		}
		nextDueDate = &parsed
	}

	category := models.PaymentCategory(request.Category)
	if category == "" {
		category = models.InstallmentPayment
	}
	if category != models.InstallmentPayment && category != models.EmbassyFeePayment {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "Invalid payment category",
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

	number, err := cc.ClientRepo.NextPaymentNumber(tx, client.ID)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to get next payment number", zap.Error(err), zap.String("clientID", clientID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while numbering the payment",
			"error":   err.Error(),
		})
	}

	payment := models.Payment{
		ClientID:    client.ID,
		Number:      number,
		Amount:      amount,
		IsPaid:      paidDate != nil,
		PaidDate:    paidDate,
		NextDueDate: nextDueDate,
		Category:    category,
		CreatedBy:   actingEmployee(c),
	}

	createdPayment, err := cc.ClientRepo.AddPayment(tx, &payment)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while adding the payment",
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
		"message": "Payment added",
		"data":    createdPayment,
	})
}
