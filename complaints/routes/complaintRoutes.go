package routes

import (
	controllers "visa-office-backend/complaints/controllers"
	"visa-office-backend/complaints/repositories"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ComplaintInitRoutes(
	app *fiber.App,
	complaintRepo repositories.ComplaintRepository,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	complaintController := &controllers.ComplaintController{
		ComplaintRepo: complaintRepo,
		DB:            db,
	}

	api := app.Group("/api/v1", middleware.ProtectedRoute(appCtx))

	api.Post("/complaints/file-management", complaintController.CreateDisappointedClientController)
	api.Get("/complaints/file-management", complaintController.ListDisappointedClientsController)
	api.Post("/complaints/file-management/:id/status", complaintController.UpdateDisappointedClientStatusController)
	api.Post("/complaints/file-management/:id/complete", complaintController.CompleteFileManagementController)

	api.Post("/complaints/followups", complaintController.CreateClientFollowupController)
	api.Get("/complaints/followups", complaintController.ListClientFollowupsController)
	api.Post("/complaints/followups/:id/status", complaintController.UpdateClientFollowupStatusController)
	api.Post("/complaints/followups/:id/complete", complaintController.CompleteClientFollowupController)

	api.Get("/complaints/overview", complaintController.ComplaintsOverviewController)

	api.Post("/complaints/legal-cases", complaintController.CreateLegalCaseController)
	api.Post("/complaints/legal-cases/intake", complaintController.SubmitLegalIntakeController)
	api.Get("/complaints/legal-cases", complaintController.ListLegalCasesController)
	api.Post("/complaints/legal-cases/:id/status", complaintController.UpdateLegalCaseStatusController)
	api.Post("/complaints/legal-cases/:id/complete", complaintController.CompleteLegalCaseController)

	api.Get("/complaints/archive", complaintController.ListArchivedCasesController)
	api.Get("/complaints/archive/:id", complaintController.GetArchivedCaseController)
	api.Get("/complaints/completed-clients", complaintController.ListCompletedClientsController)
}
