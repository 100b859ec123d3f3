package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "admin", cfg.Admin.Username)
	assert.Equal(t, insecureDefaultPassword, cfg.Admin.Password)
	assert.Equal(t, []string{"*"}, cfg.CORS.Origins)
	assert.Equal(t, "gemini-3-flash-preview", cfg.AI.Model)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "s3cret")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GEMINI_TIMEOUT", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "s3cret", cfg.Admin.Password)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.Origins)
	assert.Equal(t, "5s", cfg.AI.Timeout.String())
}

func TestValidateRejectsInsecureProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DB_PASSWORD", "dbpass")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ADMIN_PASSWORD")
}

func TestValidateRequiresDBPasswordInProduction(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("ADMIN_PASSWORD", "s3cret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PASSWORD")
}

func TestLoadRejectsBadDurations(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}
