package service

import (
	"testing"

	"github.com/shenikar/civic_gateway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_MapsClaims(t *testing.T) {
	identity := &models.Claims{
		UID:           "uid-1",
		Email:         "a@example.com",
		Name:          "Asha",
		EmailVerified: true,
		Picture:       "https://example.com/a.png",
		AuthTime:      1700000000,
		Provider: models.ProviderInfo{
			Identities: map[string]any{"google.com": []any{"123"}},
		},
	}

	profile, err := NewProfileService().GetProfile(identity)

	require.NoError(t, err)
	assert.Equal(t, "uid-1", profile.UID)
	assert.Equal(t, "a@example.com", profile.Email)
	assert.Equal(t, "Asha", profile.Name)
	assert.True(t, profile.EmailVerified)
	assert.Equal(t, "https://example.com/a.png", profile.Picture)
	assert.Equal(t, int64(1700000000), profile.CreatedAt)
	assert.Contains(t, profile.ProviderData, "google.com")
	assert.Equal(t, models.DefaultUserRole, profile.Role)
	assert.Zero(t, profile.IssuesReported)
	assert.Zero(t, profile.IssuesResolved)
}

func TestGetProfile_Defaults(t *testing.T) {
	profile, err := NewProfileService().GetProfile(&models.Claims{UID: "uid-2"})

	require.NoError(t, err)
	assert.Empty(t, profile.Name)
	assert.Empty(t, profile.Picture)
	assert.False(t, profile.EmailVerified)
	assert.NotNil(t, profile.ProviderData)
	assert.Equal(t, "citizen", profile.Role)
}

func TestGetProfile_RequiresIdentity(t *testing.T) {
	_, err := NewProfileService().GetProfile(nil)
	assert.ErrorIs(t, err, ErrIdentityRequired)
}
