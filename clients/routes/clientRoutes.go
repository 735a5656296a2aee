package routes

import (
	indexing_repository "visa-office-backend/bleve/repositories"
	controllers "visa-office-backend/clients/controllers"
	"visa-office-backend/clients/repositories"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClientInitRoutes(
	app *fiber.App,
	clientRepo repositories.ClientRepository,
	bleveInterfaceRepo indexing_repository.BleveRepositoryInterface,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	clientController := &controllers.ClientController{
		ClientRepo: clientRepo,
		DB:         db,
		BleveRepo:  bleveInterfaceRepo,
	}

	api := app.Group("/api/v1", middleware.ProtectedRoute(appCtx))

	api.Post("/clients", clientController.CreateClientController)
	api.Get("/clients/filtered", clientController.GetFilteredClientsController)
	api.Get("/clients/export", clientController.ExportClientsController)
	api.Get("/clients/attention", clientController.ClientsNeedingAttentionController)
	api.Get("/clients/:id", clientController.GetClientDetailController)
	api.Post("/clients/:id/status", clientController.UpdateClientStatusController)
	api.Post("/clients/:id/payments", clientController.AddPaymentController)
	api.Post("/clients/:id/payments/:paymentId/mark-paid", clientController.MarkPaymentPaidController)
	api.Delete("/clients/:id/payments/:paymentId", clientController.DeletePaymentController)
	api.Post("/clients/:id/followups", clientController.AddFollowupController)
	api.Get("/dashboard", clientController.DashboardController)
}
