package controllers

import (
	"visa-office-backend/documents/repositories"

	"gorm.io/gorm"
)

type DocumentController struct {
	DocumentRepo repositories.DocumentRepository
	DB           *gorm.DB
}
