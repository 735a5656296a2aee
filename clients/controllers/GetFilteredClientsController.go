package controllers

import (
	"visa-office-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
)

// GetFilteredClientsController lists clients with name/phone search, status
// and visa-type filters, paginated. Status counts and the distinct visa
// types ride along for the listing filters.
func (cc *ClientController) GetFilteredClientsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid pagination parameters",
			"error":   err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize
	clients, total, err := cc.ClientRepo.GetFilteredClients(params.Filters, true, params.PageSize, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while fetching clients",
			"error":   err.Error(),
		})
	}

	statusCounts, err := cc.ClientRepo.CountClientsByStatus()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while counting clients",
			"error":   err.Error(),
		})
	}

	visaTypes, err := cc.ClientRepo.DistinctVisaTypes()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing visa types",
			"error":   err.Error(),
		})
	}

	response := pagination.NewPaginatedResponse(c, clients, total, params)
	return c.JSON(fiber.Map{
		"data":          response,
		"status_counts": statusCounts,
		"visa_types":    visaTypes,
	})
}
