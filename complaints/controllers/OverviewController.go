package controllers

import (
	"github.com/gofiber/fiber/v2"
)

func limitTo[T any](records []T, n int) []T {
	if len(records) > n {
		return records[:n]
	}
	return records
}

// ComplaintsOverviewController is the landing projection of the complaint
// workflow: the most recent records of each active stage plus the most
// recent archive and roster rows.
func (cc *ComplaintController) ComplaintsOverviewController(c *fiber.Ctx) error {
	disappointed, err := cc.ComplaintRepo.ListDisappointedClients("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while loading the overview",
			"error":   err.Error(),
		})
	}
	followups, err := cc.ComplaintRepo.ListClientFollowups("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while loading the overview",
			"error":   err.Error(),
		})
	}
	legalCases, err := cc.ComplaintRepo.ListLegalCases("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while loading the overview",
			"error":   err.Error(),
		})
	}
	archived, err := cc.ComplaintRepo.ListArchivedCases("")
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while loading the overview",
			"error":   err.Error(),
		})
	}
	completed, err := cc.ComplaintRepo.ListCompletedClients()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while loading the overview",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"disappointed_clients": limitTo(disappointed, 5),
			"client_followups":     limitTo(followups, 5),
			"legal_cases":          limitTo(legalCases, 5),
			"archived_cases":       limitTo(archived, 5),
			"completed_clients":    limitTo(completed, 10),
		},
	})
}
