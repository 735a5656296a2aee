package controllers

import (
	bleveModels "visa-office-backend/bleve/models"

	"github.com/gofiber/fiber/v2"
)

func (c *SearchController) SearchClientsController(ctx *fiber.Ctx) error {
	query := ctx.Query("q")
	if query == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Search query is required",
		})
	}

	status := ctx.Query("status")

	results, err := c.repo.SearchClients(query, status)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Search failed",
		})
	}

	response := bleveModels.SearchResponse{Hits: []bleveModels.SearchHit{}}
	for _, hit := range results.Hits {
		doc, err := c.repo.GetClientDocument(hit.ID)
		if err != nil {
			continue
		}
		fields, _ := doc.(map[string]interface{})
		response.Hits = append(response.Hits, bleveModels.SearchHit{
			ID:     hit.ID,
			Fields: fields,
		})
	}

	return ctx.JSON(fiber.Map{
		"results": response.Hits,
		"total":   results.Total,
	})
}
