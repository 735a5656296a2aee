package middleware

import (
	"time"

	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/token"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	AccessTokenDuration  = 15 * time.Minute
	RefreshTokenDuration = 7 * 24 * time.Hour
)

// ProtectedRoute verifies the access token cookie, falling back to the
// refresh token. Refresh tokens are single use: a successful refresh deletes
// the old one from Redis and rotates both cookies.
func ProtectedRoute(ctx *AppContext) fiber.Handler {
	return func(c *fiber.Ctx) error {
		accessToken := c.Cookies("access_token")
		refreshToken := c.Cookies("refresh_token")

		if accessToken != "" {
			payload, err := ctx.PasetoMaker.VerifyToken(accessToken)
			if err == nil {
				return loadUser(ctx, c, payload)
			}
			config.Logger.Debug("Invalid access token encountered", zap.Error(err))
		}

		if refreshToken == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Authentication required",
			})
		}

		refreshPayload, err := ctx.PasetoMaker.VerifyToken(refreshToken)
		if err != nil {
			config.Logger.Error("Invalid refresh token verification failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session expired or invalid. Please log in again.",
			})
		}

		userID, err := ctx.RedisClient.Get(ctx.Ctx, "refresh_token:"+refreshToken).Result()
		if err == redis.Nil {
			config.Logger.Warn("Refresh token not found in Redis",
				zap.String("payload_id", refreshPayload.ID.String()),
				zap.String("username", refreshPayload.Username),
			)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized",
				"error":   "Session invalid. Please log in again.",
			})
		} else if err != nil {
			config.Logger.Error("Error accessing Redis for refresh token validation",
				zap.String("username", refreshPayload.Username),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		// Invalidate the old refresh token before issuing replacements.
		if err := ctx.RedisClient.Del(ctx.Ctx, "refresh_token:"+refreshToken).Err(); err != nil {
			config.Logger.Warn("Error deleting old refresh token from Redis",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}

		newAccessToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Username, AccessTokenDuration)
		if err != nil {
			config.Logger.Error("Could not generate new access token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		newRefreshToken, err := ctx.PasetoMaker.CreateToken(refreshPayload.Username, RefreshTokenDuration)
		if err != nil {
			config.Logger.Error("Could not generate new refresh token", zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		err = ctx.RedisClient.Set(ctx.Ctx, "refresh_token:"+newRefreshToken, userID, RefreshTokenDuration).Err()
		if err != nil {
			config.Logger.Error("Error storing new refresh token in Redis",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   "An internal server error occurred.",
			})
		}

		SetAuthCookies(c, newAccessToken, newRefreshToken)

		return loadUser(ctx, c, refreshPayload)
	}
}

// loadUser resolves the token payload to an active user row and stashes
// both on the request before continuing.
func loadUser(ctx *AppContext, c *fiber.Ctx, payload *token.Payload) error {
	var user models.User
	if err := ctx.DB.WithContext(c.Context()).Where("username = ?", payload.Username).First(&user).Error; err != nil {
		config.Logger.Warn("Token holder no longer exists", zap.String("username", payload.Username))
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized",
			"error":   "Account not found. Please log in again.",
		})
	}
	if !user.IsActive {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden",
			"error":   "Account is deactivated.",
		})
	}

	c.Locals("user", payload)
	c.Locals("currentUser", &user)
	return c.Next()
}

// AdminOnly gates a route to admin accounts. It must run after ProtectedRoute.
func AdminOnly() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := c.Locals("currentUser").(*models.User)
		if !ok || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden",
				"error":   "Admin access required.",
			})
		}
		return c.Next()
	}
}

// SetAuthCookies writes both auth cookies with matching lifetimes.
func SetAuthCookies(c *fiber.Ctx, accessToken, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    accessToken,
		Expires:  time.Now().Add(AccessTokenDuration),
		HTTPOnly: true,
		Secure:   config.GetEnvOrDefault("COOKIE_SECURE", "false") == "true",
		SameSite: "Lax",
		Path:     "/",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  time.Now().Add(RefreshTokenDuration),
		HTTPOnly: true,
		Secure:   config.GetEnvOrDefault("COOKIE_SECURE", "false") == "true",
		SameSite: "Lax",
		Path:     "/",
	})
}

// ClearAuthCookies expires both auth cookies.
func ClearAuthCookies(c *fiber.Ctx) {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{Name: "access_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
	c.Cookie(&fiber.Cookie{Name: "refresh_token", Value: "", Expires: expired, HTTPOnly: true, Path: "/"})
}

// CurrentUser returns the authenticated user set by ProtectedRoute.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals("currentUser").(*models.User)
	return user
}
