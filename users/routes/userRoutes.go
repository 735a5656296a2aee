package routes

import (
	"visa-office-backend/middleware"
	controllers "visa-office-backend/users/controllers"
	"visa-office-backend/users/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserInitRoutes(
	app *fiber.App,
	userRepo repositories.UserRepository,
	db *gorm.DB,
	appCtx *middleware.AppContext,
) {
	userController := &controllers.UserController{
		UserRepo:    userRepo,
		DB:          db,
		PasetoMaker: appCtx.PasetoMaker,
		Ctx:         appCtx.Ctx,
		RedisClient: appCtx.RedisClient,
	}

	loginLimiter := middleware.NewLoginRateLimiter(1, 5)

	api := app.Group("/api/v1")

	api.Post("/auth/login", loginLimiter.Handler(), userController.LoginUserController)
	api.Post("/auth/logout", userController.LogoutUserController)
	api.Get("/auth/me", middleware.ProtectedRoute(appCtx), userController.GetCurrentUserController)

	admin := api.Group("/users", middleware.ProtectedRoute(appCtx), middleware.AdminOnly())
	admin.Post("/", userController.CreateUserController)
	admin.Get("/", userController.GetAllUsersController)
	admin.Post("/:id/toggle-active", userController.ToggleUserActiveController)
	admin.Delete("/:id", userController.DeleteUserController)
}
