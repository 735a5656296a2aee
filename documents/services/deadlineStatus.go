package services

import (
	"sort"
	"time"
	"visa-office-backend/db/models"

	"github.com/google/uuid"
)

// DeadlineState is the derived label of a document's deadline window.
type DeadlineState string

const (
	DeadlineNone         DeadlineState = "NO_DEADLINE"
	DeadlineExpired      DeadlineState = "EXPIRED"
	DeadlineExpiringSoon DeadlineState = "EXPIRING_SOON"
	DeadlineWithinWindow DeadlineState = "WITHIN_WINDOW"
	DeadlineBeforeWindow DeadlineState = "BEFORE_WINDOW"
)

// DeriveDeadlineStatus classifies a document's deadline window against the
// given day. The warning threshold is the document's own, inclusive.
func DeriveDeadlineStatus(doc *models.Document, today time.Time) DeadlineState {
	if doc.DeadlineEnd == nil {
		return DeadlineNone
	}

	daysUntilEnd := doc.DeadlineEnd.DaysUntil(today)
	switch {
	case daysUntilEnd < 0:
		return DeadlineExpired
	case daysUntilEnd <= doc.DeadlineWarningDays:
		return DeadlineExpiringSoon
	case doc.DeadlineStart == nil || doc.DeadlineStart.DaysUntil(today) <= 0:
		return DeadlineWithinWindow
	default:
		return DeadlineBeforeWindow
	}
}

// DeriveDeadlineProgress returns how far through the window today falls, as
// a 0-100 percentage. A zero-length or inverted window counts as fully
// elapsed once both ends are set.
func DeriveDeadlineProgress(doc *models.Document, today time.Time) int {
	if doc.DeadlineStart == nil || doc.DeadlineEnd == nil {
		return 0
	}

	totalDays := doc.DeadlineEnd.Time().Sub(doc.DeadlineStart.Time()).Hours() / 24
	if totalDays <= 0 {
		return 100
	}

	startOffset := -doc.DeadlineStart.DaysUntil(today)
	if startOffset < 0 {
		return 0
	}
	if doc.DeadlineEnd.DaysUntil(today) < 0 {
		return 100
	}

	progress := int(float64(startOffset) / totalDays * 100)
	if progress > 100 {
		progress = 100
	}
	if progress < 0 {
		progress = 0
	}
	return progress
}

// DeadlineAlert flags a document whose window has expired or is about to.
type DeadlineAlert struct {
	ClientID     uuid.UUID     `json:"client_id"`
	DocumentID   uuid.UUID     `json:"document_id"`
	DocumentName string        `json:"document_name"`
	DeadlineEnd  string        `json:"deadline_end"`
	DaysLeft     int           `json:"days_left"`
	State        DeadlineState `json:"state"`
	Progress     int           `json:"progress"`
}

// BuildDeadlineAlerts collects expired and expiring-soon documents for one
// client, expired first, most urgent first within each bucket.
func BuildDeadlineAlerts(client *models.Client, today time.Time) []DeadlineAlert {
	alerts := make([]DeadlineAlert, 0)
	for i := range client.Documents {
		d := &client.Documents[i]
		state := DeriveDeadlineStatus(d, today)
		if state != DeadlineExpired && state != DeadlineExpiringSoon {
			continue
		}
		alerts = append(alerts, DeadlineAlert{
			ClientID:     client.ID,
			DocumentID:   d.ID,
			DocumentName: d.Name,
			DeadlineEnd:  d.DeadlineEnd.Time().Format("2006-01-02"),
			DaysLeft:     d.DeadlineEnd.DaysUntil(today),
			State:        state,
			Progress:     DeriveDeadlineProgress(d, today),
		})
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		if (alerts[i].State == DeadlineExpired) != (alerts[j].State == DeadlineExpired) {
			return alerts[i].State == DeadlineExpired
		}
		return alerts[i].DaysLeft < alerts[j].DaysLeft
	})
	return alerts
}
