package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRole string

const (
	AdminRole UserRole = "admin"
	StaffRole UserRole = "user"
)

// User is an office employee account. The employee name is what gets
// stamped onto records they create.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	EmployeeName string    `gorm:"not null" json:"employee_name"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         UserRole  `gorm:"type:varchar(20);default:'user'" json:"role"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return
}

func (u *User) IsAdmin() bool {
	return u.Role == AdminRole
}
