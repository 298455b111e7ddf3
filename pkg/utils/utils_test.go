package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	id := uuid.New()
	token, err := GenerateToken(id, "admin", "admin", "test-secret", time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, id, claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin", "admin", "secret-a", time.Hour)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret-b")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateExpiredToken(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "admin", "admin", "secret", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(token, "secret")
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestExtractTokenFromHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"bearer token", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"lowercase scheme", "bearer abc", "abc"},
		{"missing scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractTokenFromHeader(tt.header))
		})
	}
}

func TestSanitizePrefix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain folder", "banners", "banners"},
		{"nested folder", "gallery/2025", "gallery/2025"},
		{"leading slash", "/events", "events"},
		{"traversal", "../../etc", "etc"},
		{"backslashes", `gallery\2025`, "gallery/2025"},
		{"empty", "", "uploads"},
		{"dot", ".", "uploads"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizePrefix(tt.input))
		})
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Title string `validate:"required,max=5"`
		Kind  string `validate:"oneof=vision mission"`
	}

	err := ValidateStruct(form{Kind: "other"})
	require.Error(t, err)

	details := GetValidationErrors(err)
	assert.Contains(t, details, "title")
	assert.Contains(t, details["title"], "required")
	assert.Contains(t, details, "kind")
	assert.Contains(t, details["kind"], "one of")
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(8)
	b := GenerateRandomString(8)
	assert.Len(t, a, 8)
	assert.NotEqual(t, a, b)
}
