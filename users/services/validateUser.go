package services

import (
	"regexp"
	"strings"
	"visa-office-backend/db/models"
)

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,50}$`)

// ValidateNewUser returns an empty string when the account details are
// acceptable, otherwise a human-readable reason.
func ValidateNewUser(employeeName, username, password string, role models.UserRole) string {
	if strings.TrimSpace(employeeName) == "" {
		return "Employee name is required"
	}
	if !usernameRegex.MatchString(username) {
		return "Username must be 3-50 characters of letters, digits, dots, dashes or underscores"
	}
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	if role != models.AdminRole && role != models.StaffRole {
		return "Role must be either admin or user"
	}
	return ""
}
