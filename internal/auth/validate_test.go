package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/toby/expense-tracker-backend/internal/auth"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple address", "a@b.com", true},
		{"mixed case", "myEmail@test.com", true},
		{"surrounding whitespace is trimmed", "  a@b.com  ", true},
		{"no at sign", "abc123", false},
		{"no at sign with dot", "this.com", false},
		{"domain without dot", "a@b", false},
		{"missing local part", "@b.com", false},
		{"missing domain", "a@", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.IsValidEmail(tt.email))
		})
	}
}

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"upper lower digit and symbols", "MyPass123!@#", true},
		{"exactly eight chars", "MyPass12", true},
		{"too short", "My1a", false},
		{"no uppercase or digit", "mypass", false},
		{"no uppercase", "mypass123", false},
		{"no lowercase", "MYPASS123", false},
		{"no digit", "MyPassword", false},
		{"symbols alone do not count", "!!!!!!!!", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.IsStrongPassword(tt.password))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", auth.NormalizeEmail("  A@B.com "))
	assert.Equal(t, "a@b.com", auth.NormalizeEmail("a@b.com"))
}
