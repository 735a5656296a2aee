package controllers

import (
	"visa-office-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReindexClientsController drops the search indexes and rebuilds the client
// index from the database. Admin only.
func (c *SearchController) ReindexClientsController(ctx *fiber.Ctx) error {
	if err := c.repo.DeleteAllIndices(ctx.Context()); err != nil {
		config.Logger.Error("Failed to drop search indexes", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not drop the existing search indexes",
		})
	}

	clients, err := c.clientRepo.GetAllClients()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not load clients for reindexing",
		})
	}

	if err := c.repo.IndexExistingClients(clients); err != nil {
		config.Logger.Error("Failed to rebuild client search index", zap.Error(err))
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not rebuild the client search index",
		})
	}

	return ctx.JSON(fiber.Map{
		"message": "Search index rebuilt",
		"indexed": len(clients),
	})
}
