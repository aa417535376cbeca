package auth

import (
	"context"
	"testing"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/keralaeconomicforum/forum/internal/config"
	"github.com/keralaeconomicforum/forum/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerifierUnconfigured(t *testing.T) {
	verifier, err := NewVerifier(context.Background(), &config.Config{})
	require.NoError(t, err)

	_, err = verifier.Verify(context.Background(), "any-token")
	assert.ErrorIs(t, err, domain.ErrAuthNotConfigured)
}

func TestIdentityFromToken(t *testing.T) {
	token := &fbauth.Token{
		UID: "uid-1",
		Claims: map[string]interface{}{
			"email":   "anita@example.com",
			"name":    "Anita K Menon",
			"picture": "https://example.com/anita.png",
		},
	}

	identity := identityFromToken(token)
	assert.Equal(t, "uid-1", identity.UID)
	assert.Equal(t, "anita@example.com", identity.Email)
	assert.Equal(t, "Anita", identity.FirstName)
	assert.Equal(t, "K Menon", identity.LastName)
	assert.Equal(t, "https://example.com/anita.png", identity.Picture)
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		name  string
		first string
		last  string
	}{
		{"Anita Menon", "Anita", "Menon"},
		{"Anita", "Anita", ""},
		{"  Anita Menon  ", "Anita", "Menon"},
		{"", "", ""},
	}

	for _, tt := range tests {
		first, last := splitName(tt.name)
		assert.Equal(t, tt.first, first)
		assert.Equal(t, tt.last, last)
	}
}
