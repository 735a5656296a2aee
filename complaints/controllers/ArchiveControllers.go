package controllers

import (
	"visa-office-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ListArchivedCasesController lists archived complaint cases, optionally
// filtered by the stage they were completed from.
func (cc *ComplaintController) ListArchivedCasesController(c *fiber.Ctx) error {
	stage := c.Query("stage")
	if stage != "" {
		switch models.ArchiveStage(stage) {
		case models.FileManagementStage, models.ClientFollowupStage, models.LegalCaseStage:
		default:
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Invalid archive stage filter",
			})
		}
	}

	records, err := cc.ComplaintRepo.ListArchivedCases(stage)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing archived cases",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": records})
}

// GetArchivedCaseController returns one archived case with all three
// snapshot groups.
func (cc *ComplaintController) GetArchivedCaseController(c *fiber.Ctx) error {
	recordID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid record ID",
			"error":   err.Error(),
		})
	}

	record, err := cc.ComplaintRepo.GetArchivedCaseByID(recordID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Archived case not found",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": record})
}

// ListCompletedClientsController returns the flat roster of clients whose
// legal cases were completed.
func (cc *ComplaintController) ListCompletedClientsController(c *fiber.Ctx) error {
	records, err := cc.ComplaintRepo.ListCompletedClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing completed clients",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": records})
}
