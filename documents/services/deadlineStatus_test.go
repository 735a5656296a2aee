package services

import (
	"testing"
	"time"
	"visa-office-backend/db/models"
	"visa-office-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dateOnlyPtr(t time.Time) *utils.DateOnly {
	d := utils.NewDateOnly(t)
	return &d
}

func windowDoc(start, end time.Time, warningDays int) *models.Document {
	return &models.Document{
		DeadlineStart:       dateOnlyPtr(start),
		DeadlineEnd:         dateOnlyPtr(end),
		DeadlineWarningDays: warningDays,
	}
}

func TestDeriveDeadlineStatus(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("no end date means no deadline", func(t *testing.T) {
		doc := &models.Document{DeadlineStart: dateOnlyPtr(today)}
		assert.Equal(t, DeadlineNone, DeriveDeadlineStatus(doc, today))
	})

	t.Run("end before today is expired", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -20), today.AddDate(0, 0, -1), 7)
		assert.Equal(t, DeadlineExpired, DeriveDeadlineStatus(doc, today))
	})

	t.Run("inside the warning threshold is expiring soon", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -10), today.AddDate(0, 0, 7), 7)
		assert.Equal(t, DeadlineExpiringSoon, DeriveDeadlineStatus(doc, today))
	})

	t.Run("started but far from the end is within window", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -5), today.AddDate(0, 0, 30), 7)
		assert.Equal(t, DeadlineWithinWindow, DeriveDeadlineStatus(doc, today))
	})

	t.Run("window not started yet is before window", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, 10), today.AddDate(0, 0, 40), 7)
		assert.Equal(t, DeadlineBeforeWindow, DeriveDeadlineStatus(doc, today))
	})

	t.Run("warning threshold is the document's own", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -5), today.AddDate(0, 0, 10), 14)
		assert.Equal(t, DeadlineExpiringSoon, DeriveDeadlineStatus(doc, today))
	})
}

func TestDeriveDeadlineProgress(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	t.Run("missing dates give zero", func(t *testing.T) {
		assert.Equal(t, 0, DeriveDeadlineProgress(&models.Document{}, today))
	})

	t.Run("zero-length window counts as fully elapsed", func(t *testing.T) {
		doc := windowDoc(today, today, 7)
		assert.Equal(t, 100, DeriveDeadlineProgress(doc, today))
	})

	t.Run("before the window starts", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, 5), today.AddDate(0, 0, 15), 7)
		assert.Equal(t, 0, DeriveDeadlineProgress(doc, today))
	})

	t.Run("halfway through", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -5), today.AddDate(0, 0, 5), 7)
		assert.Equal(t, 50, DeriveDeadlineProgress(doc, today))
	})

	t.Run("expired windows clamp to 100", func(t *testing.T) {
		doc := windowDoc(today.AddDate(0, 0, -30), today.AddDate(0, 0, -10), 7)
		assert.Equal(t, 100, DeriveDeadlineProgress(doc, today))
	})
}

func TestBuildDeadlineAlerts_ExpiredFirst(t *testing.T) {
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	client := &models.Client{
		ID: uuid.New(),
		Documents: []models.Document{
			{ID: uuid.New(), Name: "Passport", DeadlineStart: dateOnlyPtr(today.AddDate(0, 0, -10)), DeadlineEnd: dateOnlyPtr(today.AddDate(0, 0, 3)), DeadlineWarningDays: 7},
			{ID: uuid.New(), Name: "Bank Statement", DeadlineStart: dateOnlyPtr(today.AddDate(0, 0, -20)), DeadlineEnd: dateOnlyPtr(today.AddDate(0, 0, -2)), DeadlineWarningDays: 7},
			{ID: uuid.New(), Name: "Application Form"},
		},
	}

	alerts := BuildDeadlineAlerts(client, today)
	require.Len(t, alerts, 2)

	assert.Equal(t, "Bank Statement", alerts[0].DocumentName)
	assert.Equal(t, DeadlineExpired, alerts[0].State)
	assert.Equal(t, 100, alerts[0].Progress)

	assert.Equal(t, "Passport", alerts[1].DocumentName)
	assert.Equal(t, DeadlineExpiringSoon, alerts[1].State)
}

func TestSeedChecklistNames(t *testing.T) {
	assert.Len(t, RequiredChecklist, 10)
	assert.Len(t, OptionalChecklist, 4)
	assert.True(t, IsDefaultDocument("Passport"))
	assert.True(t, IsDefaultDocument("Graduation Certificate"))
	assert.False(t, IsDefaultDocument("Custom Letter"))
}
