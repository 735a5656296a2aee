package controllers

import (
	indexing_repository "visa-office-backend/bleve/repositories"
	"visa-office-backend/clients/repositories"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClientController struct {
	ClientRepo repositories.ClientRepository
	DB         *gorm.DB
	BleveRepo  indexing_repository.BleveRepositoryInterface
}

// actingEmployee resolves the display name stamped onto created records.
func actingEmployee(c *fiber.Ctx) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.EmployeeName
	}
	return "unknown"
}
