package routes

import (
	controllers "visa-office-backend/documents/controllers"
	"visa-office-backend/documents/repositories"
	"visa-office-backend/middleware"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func DocumentInitRoutes(
	app *fiber.App,
	documentRepo repositories.DocumentRepository,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	documentController := &controllers.DocumentController{
		DocumentRepo: documentRepo,
		DB:           db,
	}

	api := app.Group("/api/v1", middleware.ProtectedRoute(appCtx))

	api.Post("/clients/:id/documents", documentController.AddCustomDocumentController)
	api.Get("/clients/:id/documents/download-all", documentController.DownloadAllDocumentsController)
	api.Post("/clients/:id/documents/:docId/upload", documentController.UploadDocumentController)
	api.Get("/clients/:id/documents/:docId/view", documentController.ViewDocumentController)
	api.Get("/clients/:id/documents/:docId/download", documentController.DownloadDocumentController)
	api.Post("/clients/:id/documents/:docId/clear-file", documentController.ClearDocumentFileController)
	api.Post("/clients/:id/documents/:docId/deadline", documentController.SetDocumentDeadlineController)
	api.Delete("/clients/:id/documents/:docId/deadline", documentController.RemoveDocumentDeadlineController)
	api.Delete("/clients/:id/documents/:docId", documentController.DeleteCustomDocumentController)
}
