package controllers

import (
	"visa-office-backend/config"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MarkPaymentPaidController flips an unpaid payment to paid with today's
// date. Already-paid payments are left untouched.
func (cc *ClientController) MarkPaymentPaidController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
			"error":   err.Error(),
		})
	}
	paymentID, err := uuid.Parse(c.Params("paymentId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid payment ID",
			"error":   err.Error(),
		})
	}

	payment, err := cc.ClientRepo.GetPaymentByID(clientID, paymentID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Payment not found",
			"error":   err.Error(),
		})
	}

	if payment.IsPaid {
		return c.JSON(fiber.Map{
			"message": "Payment already marked as paid",
			"data":    payment,
		})
	}

	payment.IsPaid = true
	today := utils.NewDateOnly(utils.Today())
	payment.PaidDate = &today

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

	updatedPayment, err := cc.ClientRepo.UpdatePayment(tx, payment)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the payment",
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
		"message": "Payment marked as paid",
		"data":    updatedPayment,
	})
}
