package controllers

import (
	"visa-office-backend/clients/services"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type attentionEntry struct {
	ClientID        uuid.UUID           `json:"client_id"`
	Name            string              `json:"name"`
	Status          models.ClientStatus `json:"status"`
	MissingDocs     int                 `json:"missing_docs"`
	OverduePayments int                 `json:"overdue_payments"`
}

// DashboardController aggregates the office overview: client totals per
// status, recent arrivals, cross-client payment alerts and the clients
// needing attention.
func (cc *ClientController) DashboardController(c *fiber.Ctx) error {
	statusCounts, err := cc.ClientRepo.CountClientsByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while counting clients",
			"error":   err.Error(),
		})
	}

	var totalClients int64
	for _, count := range statusCounts {
		totalClients += count
	}

	newClients, err := cc.ClientRepo.CountClientsCreatedSince(utils.Today().AddDate(0, 0, -30))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while counting recent clients",
			"error":   err.Error(),
		})
	}

	clients, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while fetching clients",
			"error":   err.Error(),
		})
	}

	today := utils.Today()

	paymentAlerts := make([]services.PaymentAlert, 0)
	needingAttention := make([]attentionEntry, 0)
	for i := range clients {
		client := &clients[i]
		paymentAlerts = append(paymentAlerts, services.BuildPaymentAlerts(client, today)...)

		missingDocs := len(services.MissingRequiredDocuments(client))
		overduePayments := 0
		for j := range client.Payments {
			if services.DerivePaymentStatus(&client.Payments[j], today) == services.PaymentOverdue {
				overduePayments++
			}
		}
		if missingDocs > 0 || overduePayments > 0 {
			needingAttention = append(needingAttention, attentionEntry{
				ClientID:        client.ID,
				Name:            client.Name,
				Status:          client.Status,
				MissingDocs:     missingDocs,
				OverduePayments: overduePayments,
			})
		}
	}
	services.SortPaymentAlerts(paymentAlerts)

	// Clients arrive ordered newest first; show the latest five unless the
	// caller asks for everyone.
	recentClients := clients
	if c.Query("show_all") != "true" && len(recentClients) > 5 {
		recentClients = recentClients[:5]
	}

	completed := statusCounts[models.ClientCompleted]
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"total_clients":      totalClients,
			"status_counts":      statusCounts,
			"incomplete_clients": totalClients - completed,
			"new_clients_30d":    newClients,
			"payment_alerts":     paymentAlerts,
			"needing_attention":  needingAttention,
			"recent_clients":     recentClients,
		},
	})
}

// ClientsNeedingAttentionController lists clients with missing required
// documents or overdue payments.
func (cc *ClientController) ClientsNeedingAttentionController(c *fiber.Ctx) error {
	clients, err := cc.ClientRepo.GetAllClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while fetching clients",
			"error":   err.Error(),
		})
	}

	today := utils.Today()
	needingAttention := make([]attentionEntry, 0)
	for i := range clients {
		client := &clients[i]
		missingDocs := len(services.MissingRequiredDocuments(client))
		overduePayments := 0
		for j := range client.Payments {
			if services.DerivePaymentStatus(&client.Payments[j], today) == services.PaymentOverdue {
				overduePayments++
			}
		}
		if missingDocs > 0 || overduePayments > 0 {
			needingAttention = append(needingAttention, attentionEntry{
				ClientID:        client.ID,
				Name:            client.Name,
				Status:          client.Status,
				MissingDocs:     missingDocs,
				OverduePayments: overduePayments,
			})
		}
	}

	return c.JSON(fiber.Map{
		"data": needingAttention,
	})
}
