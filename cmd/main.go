package main

import (
	"context"

	"visa-office-backend/config"
	"visa-office-backend/middleware"
	"visa-office-backend/token"
	"visa-office-backend/utils"

	// Repositories
	clients_repositories "visa-office-backend/clients/repositories"
	complaints_repositories "visa-office-backend/complaints/repositories"
	documents_repositories "visa-office-backend/documents/repositories"
	users_repositories "visa-office-backend/users/repositories"

	// Routes
	client_routes "visa-office-backend/clients/routes"
	complaint_routes "visa-office-backend/complaints/routes"
	document_routes "visa-office-backend/documents/routes"
	user_routes "visa-office-backend/users/routes"

	// Bleve
	bleveControllers "visa-office-backend/bleve/controllers"
	bleveRepositories "visa-office-backend/bleve/repositories"
	bleveRoutes "visa-office-backend/bleve/routes"
	bleveServices "visa-office-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment", zap.Error(err))
	}

	// Date location
	if err := utils.InitializeDateLocation(); err != nil {
		config.Logger.Fatal("Failed to initialize date location", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024, // document uploads are stored in the database
	})

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	// Initialize database and configs
	db := config.ConfigureDatabase()
	port := config.GetEnvOrDefault("PORT", "8080")
	ctx := context.Background()

	redisClient := config.InitRedisServer(ctx)

	tokenKey := config.GetEnv("TOKEN_SYMMETRIC_KEY")
	tokenMaker, err := token.NewPasetoMaker(tokenKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}

	indexPath := config.GetEnvOrDefault("BLEVE_INDEX_PATH", "./bleve_data")

	appCtx := &middleware.AppContext{
		DB:          db,
		PasetoMaker: tokenMaker,
		Ctx:         ctx,
		RedisClient: redisClient,
	}

	// Repositories
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, indexPath)
	bleveServiceRepo, bleveInterfaceRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)
	clientRepo := clients_repositories.NewClientRepository(db)
	documentRepo := documents_repositories.NewDocumentRepository(db)
	complaintRepo := complaints_repositories.NewComplaintRepository(db)
	userRepo := users_repositories.NewUserRepository(db)

	// Keep the search index in step with the client table on startup.
	if existingClients, err := clientRepo.GetAllClients(); err != nil {
		config.Logger.Error("Failed to load clients for indexing", zap.Error(err))
	} else if err := bleveInterfaceRepo.IndexExistingClients(existingClients); err != nil {
		config.Logger.Error("Failed to index existing clients", zap.Error(err))
	}

	// Routes
	user_routes.UserInitRoutes(app, userRepo, db, appCtx)
	client_routes.ClientInitRoutes(app, clientRepo, bleveInterfaceRepo, db, appCtx)
	document_routes.DocumentInitRoutes(app, documentRepo, db, appCtx)
	complaint_routes.ComplaintInitRoutes(app, complaintRepo, db, appCtx)

	// Bleve Routes
	bleveController := bleveControllers.NewSearchController(bleveServiceRepo, clientRepo)
	bleveRoutes.InitBleveRoutes(app, bleveController, appCtx)

	// Start the application
	config.Logger.Info("Server starting", zap.String("port", port))
	config.Logger.Fatal("Server failed", zap.String("port", port), zap.Error(app.Listen(":"+port)))
}
