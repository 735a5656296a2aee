package controllers

import (
	"fmt"
	"visa-office-backend/clients/services"
	"visa-office-backend/db/models"
	documents_services "visa-office-backend/documents/services"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type documentView struct {
	models.Document
	DeadlineState    documents_services.DeadlineState `json:"deadline_state"`
	DeadlineProgress int                              `json:"deadline_progress"`
	HasFile          bool                             `json:"has_file"`
}

type paymentView struct {
	models.Payment
	State services.PaymentState `json:"state"`
}

// GetClientDetailController returns the full client projection: ledger
// figures, payments with derived states, checklist split required/optional,
// followups and the alert lists.
func (cc *ClientController) GetClientDetailController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client ID",
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

	today := utils.Today()

	payments := make([]paymentView, 0, len(client.Payments))
	for i := range client.Payments {
		payments = append(payments, paymentView{
			Payment: client.Payments[i],
			State:   services.DerivePaymentStatus(&client.Payments[i], today),
		})
	}

	docsRequired := make([]documentView, 0)
	docsOptional := make([]documentView, 0)
	for i := range client.Documents {
		d := &client.Documents[i]
		view := documentView{
			Document:         *d,
			DeadlineState:    documents_services.DeriveDeadlineStatus(d, today),
			DeadlineProgress: documents_services.DeriveDeadlineProgress(d, today),
			HasFile:          d.HasFile(),
		}
		if d.Required {
			docsRequired = append(docsRequired, view)
		} else {
			docsOptional = append(docsOptional, view)
		}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"client":             client,
			"status_display":     clientStatusDisplay(client),
			"paid_sum":           client.PaidSum(),
			"remaining":          client.Remaining(),
			"payments":           payments,
			"documents_required": docsRequired,
			"documents_optional": docsOptional,
			"followups":          client.Followups,
			"payment_alerts":     services.BuildPaymentAlerts(client, today),
			"missing_documents":  services.MissingRequiredDocuments(client),
			"deadline_alerts":    documents_services.BuildDeadlineAlerts(client, today),
		},
	})
}

// clientStatusDisplay annotates a resubmitted client with its attempt
// number.
func clientStatusDisplay(client *models.Client) string {
	if client.Status == models.ClientResubmitted && client.ResubmissionAttempt != nil {
		return fmt.Sprintf("%s (attempt %d)", client.Status, *client.ResubmissionAttempt)
	}
	return string(client.Status)
}
