package services

import (
	"errors"
	"regexp"
	"strings"
	"visa-office-backend/db/models"
)

var phoneRegex = regexp.MustCompile(`^\+?\d{8,15}$`)

// ValidateClient returns a human-readable validation error, or "" when the
// client is acceptable.
func ValidateClient(client *models.Client) string {
	if strings.TrimSpace(client.Name) == "" {
		return "Client name is required"
	}
	if strings.TrimSpace(client.Phone) == "" {
		return "Phone number is required"
	}
	if !phoneRegex.MatchString(strings.TrimSpace(client.Phone)) {
		return "Phone number must be 8 to 15 digits, optionally starting with '+'"
	}
	if strings.TrimSpace(client.VisaType) == "" {
		return "Visa type is required"
	}
	if !client.TotalAmount.IsPositive() {
		return "Total amount must be a positive number"
	}
	return ""
}

// IsValidStatus validates if the given status is a valid client status.
func IsValidStatus(status string) error {
	validStatuses := []models.ClientStatus{
		models.ClientInProgress,
		models.ClientCompleted,
		models.ClientRejected,
		models.ClientResubmitted,
		models.ClientCancelled,
	}

	for _, validStatus := range validStatuses {
		if status == string(validStatus) {
			return nil
		}
	}

	return errors.New("invalid status")
}
