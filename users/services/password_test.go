package services

import (
	"testing"
	"visa-office-backend/db/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, CheckPasswordHash("correct horse battery staple", hash))
	assert.False(t, CheckPasswordHash("wrong password", hash))
}

func TestValidateNewUser(t *testing.T) {
	tests := []struct {
		name         string
		employeeName string
		username     string
		password     string
		role         models.UserRole
		wantOK       bool
	}{
		{"valid staff account", "Sara Adel", "sara.adel", "longenough1", models.StaffRole, true},
		{"valid admin account", "Omar Nabil", "omar_n", "longenough1", models.AdminRole, true},
		{"missing employee name", " ", "sara.adel", "longenough1", models.StaffRole, false},
		{"username too short", "Sara Adel", "sa", "longenough1", models.StaffRole, false},
		{"username with spaces", "Sara Adel", "sara adel", "longenough1", models.StaffRole, false},
		{"password too short", "Sara Adel", "sara.adel", "short", models.StaffRole, false},
		{"unknown role", "Sara Adel", "sara.adel", "longenough1", models.UserRole("owner"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reason := ValidateNewUser(tt.employeeName, tt.username, tt.password, tt.role)
			if tt.wantOK {
				assert.Empty(t, reason)
			} else {
				assert.NotEmpty(t, reason)
			}
		})
	}
}
