package routes

import (
	"visa-office-backend/bleve/controllers"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
)

func InitBleveRoutes(app *fiber.App, controller *controllers.SearchController, appCtx *middleware.AppContext) {
	api := app.Group("/api/v1/bleve_search", middleware.ProtectedRoute(appCtx))

	api.Get("/clients", controller.SearchClientsController)
	api.Post("/reindex", middleware.AdminOnly(), controller.ReindexClientsController)
}
