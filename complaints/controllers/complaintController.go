package controllers

import (
	"visa-office-backend/complaints/repositories"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ComplaintController struct {
	ComplaintRepo repositories.ComplaintRepository
	DB            *gorm.DB
}

func actingEmployee(c *fiber.Ctx) string {
	if user := middleware.CurrentUser(c); user != nil {
		return user.EmployeeName
	}
	return "unknown"
}
