package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyProvider(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := LoadConfig()
	// Пустой AUTH_PROVIDER не поддерживается
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_FirebaseWithoutCredentials(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "firebase")
	t.Setenv("FIREBASE_CONFIG", "")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("WEBHOOK_TIMEOUT", "2s")
	t.Setenv("ISSUE_RATE_LIMIT", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, AuthProviderFirebase, cfg.AuthProvider)
	assert.Empty(t, cfg.FirebaseConfig)
	assert.Equal(t, 2*time.Second, cfg.WebhookTimeout)
	assert.Equal(t, 5, cfg.IssueRateLimit)
	assert.Equal(t, defaultAllowedOrigins, cfg.AllowedOrigins)
}

func TestLoadConfig_JWTRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "JWT")
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")

	t.Setenv("JWT_SECRET", "dev-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, AuthProviderJWT, cfg.AuthProvider)
}

func TestLoadConfig_UnknownProvider(t *testing.T) {
	t.Setenv("AUTH_PROVIDER", "saml")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saml")
}

func TestGetEnvAsList(t *testing.T) {
	t.Setenv("TEST_ORIGINS", " http://a.example , ,http://b.example")

	assert.Equal(t, []string{"http://a.example", "http://b.example"}, getEnvAsList("TEST_ORIGINS", nil))
	assert.Equal(t, []string{"x"}, getEnvAsList("TEST_ORIGINS_MISSING", []string{"x"}))
}

func TestValidate_ClampsRetries(t *testing.T) {
	cfg := &Config{AuthProvider: AuthProviderFirebase, WebhookMaxRetries: 0}

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1, cfg.WebhookMaxRetries)
	assert.False(t, cfg.RedisEnabled())
}
