package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/toby/expense-tracker-backend/internal/auth"
)

func TestHashPassword(t *testing.T) {
	const raw = "WeWork441$"

	first, err := auth.HashPassword(raw)
	require.NoError(t, err)
	second, err := auth.HashPassword(raw)
	require.NoError(t, err)

	assert.NotEqual(t, raw, first)
	assert.Len(t, first, 60)

	// Per-call salt: same input, different hashes, both verifiable.
	assert.NotEqual(t, first, second)
	assert.True(t, auth.VerifyPassword(raw, first))
	assert.True(t, auth.VerifyPassword(raw, second))
}

func TestVerifyPassword(t *testing.T) {
	hash, err := auth.HashPassword("WeWork441$")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		want     bool
	}{
		{
			name:     "correct password",
			password: "WeWork441$",
			hash:     hash,
			want:     true,
		},
		{
			name:     "wrong password",
			password: "DifferentPass$",
			hash:     hash,
			want:     false,
		},
		{
			name:     "empty stored hash",
			password: "WeWork441$",
			hash:     "",
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.VerifyPassword(tt.password, tt.hash))
		})
	}
}
