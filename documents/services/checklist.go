package services

import (
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequiredChecklist is the set of documents every new client must provide.
var RequiredChecklist = []string{
	"Passport",
	"National ID Card",
	"Invitation Letter",
	"Family/Individual Civil Record",
	"Bank Statement",
	"Proof of Employment",
	"Military Service Certificate",
	"Application Form",
	"Personal Photo",
	"Work History (Last 10 Years)",
}

// OptionalChecklist is seeded alongside the required set but does not block
// a client from being considered complete.
var OptionalChecklist = []string{
	"Graduation Certificate",
	"Travel Movement Certificate",
	"Property Ownership Contracts",
	"Children School Enrollment Proof",
}

// SeedChecklist inserts the default document checklist for a newly created
// client, all entries missing. Runs inside the caller's transaction.
func SeedChecklist(tx *gorm.DB, clientID uuid.UUID) ([]models.Document, error) {
	docs := make([]models.Document, 0, len(RequiredChecklist)+len(OptionalChecklist))
	for _, name := range RequiredChecklist {
		docs = append(docs, models.Document{
			ClientID:            clientID,
			Name:                name,
			Required:            true,
			Status:              models.MissingDocument,
			DeadlineWarningDays: models.DefaultWarningDays,
		})
	}
	for _, name := range OptionalChecklist {
		docs = append(docs, models.Document{
			ClientID:            clientID,
			Name:                name,
			Required:            false,
			Status:              models.MissingDocument,
			DeadlineWarningDays: models.DefaultWarningDays,
		})
	}

	if err := tx.Create(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// IsDefaultDocument reports whether the name belongs to the seeded
// checklist. Default entries cannot be removed from a client.
func IsDefaultDocument(name string) bool {
	for _, n := range RequiredChecklist {
		if n == name {
			return true
		}
	}
	for _, n := range OptionalChecklist {
		if n == name {
			return true
		}
	}
	return false
}
