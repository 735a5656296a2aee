package controllers

import (
	"visa-office-backend/config"
	"visa-office-backend/middleware"
	"visa-office-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginUserController authenticates an employee and issues the access and
// refresh token cookies. The refresh token is stored in Redis so it can be
// revoked and rotated.
func (uc *UserController) LoginUserController(c *fiber.Ctx) error {
	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		config.Logger.Error("Error parsing login request body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	user, err := uc.UserRepo.GetUserByUsername(request.Username)
	if err != nil || !services.CheckPasswordHash(request.Password, user.PasswordHash) {
		if err != nil {
			config.Logger.Warn("Login attempt for unknown username",
				zap.String("username", request.Username))
		} else {
			config.Logger.Warn("Login attempt with invalid password",
				zap.String("username", request.Username))
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Authentication failed",
			"error":   "Invalid username or password.",
		})
	}

	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
			"error":   "Account is deactivated.",
		})
	}

	accessToken, err := uc.PasetoMaker.CreateToken(user.Username, middleware.AccessTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate access token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred.",
		})
	}

	refreshToken, err := uc.PasetoMaker.CreateToken(user.Username, middleware.RefreshTokenDuration)
	if err != nil {
		config.Logger.Error("Could not generate refresh token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred.",
		})
	}

	err = uc.RedisClient.Set(uc.Ctx, "refresh_token:"+refreshToken, user.ID.String(), middleware.RefreshTokenDuration).Err()
	if err != nil {
		config.Logger.Error("Error storing refresh token in Redis",
			zap.String("username", user.Username),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "An internal server error occurred.",
		})
	}

	middleware.SetAuthCookies(c, accessToken, refreshToken)

	return c.JSON(fiber.Map{
		"message": "Logged in successfully",
		"data":    user,
	})
}

// LogoutUserController revokes the refresh token and clears both cookies.
func (uc *UserController) LogoutUserController(c *fiber.Ctx) error {
	refreshToken := c.Cookies("refresh_token")
	if refreshToken != "" {
		if err := uc.RedisClient.Del(uc.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting refresh token from Redis during logout", zap.Error(err))
		}
	}

	middleware.ClearAuthCookies(c)

	return c.JSON(fiber.Map{
		"message": "Logged out successfully",
	})
}

// GetCurrentUserController returns the authenticated account.
func (uc *UserController) GetCurrentUserController(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"error":   "Authentication required",
		})
	}
	return c.JSON(fiber.Map{"data": user})
}
