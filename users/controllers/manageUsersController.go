package controllers

import (
	"errors"
	"visa-office-backend/config"
	"visa-office-backend/db/models"
	"visa-office-backend/middleware"
	"visa-office-backend/users/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateUserRequest struct {
	EmployeeName string `json:"employee_name"`
	Username     string `json:"username"`
	Password     string `json:"password"`
	Role         string `json:"role"`
}

// CreateUserController registers a new employee account. Admin only.
func (uc *UserController) CreateUserController(c *fiber.Ctx) error {
	var request CreateUserRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	role := models.UserRole(request.Role)
	if request.Role == "" {
		role = models.StaffRole
	}

	if reason := services.ValidateNewUser(request.EmployeeName, request.Username, request.Password, role); reason != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   reason,
		})
	}

	if _, err := uc.UserRepo.GetUserByUsername(request.Username); err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Conflict",
			"error":   "Username is already taken",
		})
	}

	passwordHash, err := services.HashPassword(request.Password)
	if err != nil {
		config.Logger.Error("Failed to hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong",
			"error":   "Could not process the password",
		})
	}

	user := models.User{
		EmployeeName: request.EmployeeName,
		Username:     request.Username,
		PasswordHash: passwordHash,
		Role:         role,
		IsActive:     true,
	}

	tx := uc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not start database transaction",
			"error":   tx.Error.Error(),
		})
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	created, err := uc.UserRepo.CreateUser(tx, &user)
	if err != nil {
		tx.Rollback()
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the user",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User created",
		"data":    created,
	})
}

// GetAllUsersController lists every employee account. Admin only.
func (uc *UserController) GetAllUsersController(c *fiber.Ctx) error {
	users, err := uc.UserRepo.GetAllUsers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while listing users",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{"data": users})
}

// ToggleUserActiveController activates or deactivates an account. The last
// active admin cannot be deactivated, nor can an admin deactivate
// themselves.
func (uc *UserController) ToggleUserActiveController(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
			"error":   err.Error(),
		})
	}

	currentUser := middleware.CurrentUser(c)
	if currentUser != nil && currentUser.ID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "You cannot deactivate your own account",
		})
	}

	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"error":   err.Error(),
		})
	}

	if user.IsActive && user.IsAdmin() {
		adminCount, err := uc.UserRepo.CountActiveAdmins()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   err.Error(),
			})
		}
		if adminCount <= 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Cannot deactivate the last active admin",
			})
		}
	}

	user.IsActive = !user.IsActive
	updated, err := uc.UserRepo.UpdateUser(uc.DB.WithContext(c.Context()), user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the user",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User updated",
		"data":    updated,
	})
}

// DeleteUserController removes an account. Self-deletion and deleting the
// last active admin are rejected.
func (uc *UserController) DeleteUserController(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid user ID",
			"error":   err.Error(),
		})
	}

	currentUser := middleware.CurrentUser(c)
	if currentUser != nil && currentUser.ID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   "You cannot delete your own account",
		})
	}

	user, err := uc.UserRepo.GetUserByID(userID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "User not found",
			"error":   err.Error(),
		})
	}

	if user.IsActive && user.IsAdmin() {
		adminCount, err := uc.UserRepo.CountActiveAdmins()
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Something went wrong",
				"error":   err.Error(),
			})
		}
		if adminCount <= 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Validation failed",
				"error":   "Cannot delete the last active admin",
			})
		}
	}

	tx := uc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not start database transaction",
			"error":   tx.Error.Error(),
		})
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	if err := uc.UserRepo.DeleteUser(tx, userID); err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "User not found",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while deleting the user",
			"error":   err.Error(),
		})
	}

	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "User deleted",
	})
}
