package services

import (
	"testing"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeedChecklist(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Document{}))

	clientID := uuid.New()

	var seeded []models.Document
	err = db.Transaction(func(tx *gorm.DB) error {
		var txErr error
		seeded, txErr = SeedChecklist(tx, clientID)
		return txErr
	})
	require.NoError(t, err)
	require.Len(t, seeded, len(RequiredChecklist)+len(OptionalChecklist))

	var stored []models.Document
	require.NoError(t, db.Where("client_id = ?", clientID).Find(&stored).Error)
	require.Len(t, stored, 14)

	requiredCount := 0
	for _, doc := range stored {
		if doc.Required {
			requiredCount++
		}
		assert.Equal(t, models.MissingDocument, doc.Status)
		assert.Equal(t, models.DefaultWarningDays, doc.DeadlineWarningDays)
		assert.False(t, doc.HasFile())
	}
	assert.Equal(t, 10, requiredCount)
}
