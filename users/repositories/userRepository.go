package repositories

import (
	"fmt"
	"visa-office-backend/config"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(tx *gorm.DB, user *models.User) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	UpdateUser(tx *gorm.DB, user *models.User) (*models.User, error)
	DeleteUser(tx *gorm.DB, id uuid.UUID) error
	CountActiveAdmins() (int64, error)
}

type userRepository struct {
	DB *gorm.DB
}

// NewUserRepository initializes a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{DB: db}
}

func (ur *userRepository) CreateUser(tx *gorm.DB, user *models.User) (*models.User, error) {
	if err := tx.Create(user).Error; err != nil {
		config.Logger.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

func (ur *userRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := ur.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", id, err)
	}
	return &user, nil
}

func (ur *userRepository) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := ur.DB.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to get user %s: %w", username, err)
	}
	return &user, nil
}

func (ur *userRepository) GetAllUsers() ([]models.User, error) {
	var users []models.User
	if err := ur.DB.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (ur *userRepository) UpdateUser(tx *gorm.DB, user *models.User) (*models.User, error) {
	if err := tx.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user %s: %w", user.ID, err)
	}
	return user, nil
}

func (ur *userRepository) DeleteUser(tx *gorm.DB, id uuid.UUID) error {
	result := tx.Delete(&models.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (ur *userRepository) CountActiveAdmins() (int64, error) {
	var count int64
	err := ur.DB.Model(&models.User{}).
		Where("role = ? AND is_active = ?", models.AdminRole, true).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count active admins: %w", err)
	}
	return count, nil
}
