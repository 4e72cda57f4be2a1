package auth_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toby/expense-tracker-backend/internal/auth"
)

const testSecret = "test-secret"

// expiredToken signs a token with the same secret and claim shape but an
// expiry in the past.
func expiredToken(t *testing.T, userID, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"userId": userID,
		"email":  email,
		"exp":    time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := auth.NewTokenService(testSecret)

	token, err := svc.Issue(auth.TokenPayload{UserID: "u1", Email: "e@x.com"})
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	result := svc.Verify(token)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Error)
	assert.Equal(t, "u1", result.Payload.UserID)
	assert.Equal(t, "e@x.com", result.Payload.Email)
}

func TestTokenService_Verify_Failures(t *testing.T) {
	svc := auth.NewTokenService(testSecret)

	otherSecret := auth.NewTokenService("some-other-secret")
	foreign, err := otherSecret.Issue(auth.TokenPayload{UserID: "u1", Email: "e@x.com"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		token   string
		wantErr string
	}{
		{
			name:    "expired token",
			token:   expiredToken(t, "u1", "e@x.com"),
			wantErr: "Token has expired",
		},
		{
			name:    "garbage string",
			token:   "not-even-a-jwt",
			wantErr: "Invalid token",
		},
		{
			name:    "structurally invalid",
			token:   "invalid.token.here",
			wantErr: "Invalid token",
		},
		{
			name:    "empty string",
			token:   "",
			wantErr: "Invalid token",
		},
		{
			name:    "signed with a different secret",
			token:   foreign,
			wantErr: "Invalid token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.Verify(tt.token)
			assert.False(t, result.Valid)
			assert.Equal(t, tt.wantErr, result.Error)
		})
	}
}

func TestTokenService_TamperedPayload(t *testing.T) {
	svc := auth.NewTokenService(testSecret)

	token, err := svc.Issue(auth.TokenPayload{UserID: "u1", Email: "e@x.com"})
	require.NoError(t, err)

	// Swap the payload segment for one from a token with different claims;
	// the signature no longer matches.
	other, err := svc.Issue(auth.TokenPayload{UserID: "u2", Email: "other@x.com"})
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	otherParts := strings.Split(other, ".")
	tampered := strings.Join([]string{parts[0], otherParts[1], parts[2]}, ".")

	result := svc.Verify(tampered)
	assert.False(t, result.Valid)
	assert.Equal(t, "Invalid token", result.Error)
}
