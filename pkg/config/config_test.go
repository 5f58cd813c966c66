package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DevelopmentDefaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("WORKER_CALLBACK_SECRET", "")
	t.Setenv("ENV_ENCRYPTION_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.Production)
	assert.Equal(t, "test_queue", cfg.Queue.Name)
	assert.EqualValues(t, 10, cfg.Queue.MaxPriority)
	assert.NotEmpty(t, cfg.Auth.JWTSecret)
	assert.NotEmpty(t, cfg.Auth.WorkerSecret)
	assert.Len(t, cfg.Secrets.EncryptionKeyHex, 64)
	assert.Equal(t, 24*time.Hour, cfg.Ingest.SessionTTL)
	assert.Equal(t, 4*time.Hour, cfg.Ingest.LogTTL)
	assert.Equal(t, 7*24*time.Hour, cfg.Ingest.ArchiveTTL)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_ProductionRequiresCORSAllowList(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("WORKER_CALLBACK_SECRET", "s")
	t.Setenv("ENV_ENCRYPTION_KEY", "ab")
	t.Setenv("REPORT_TOKEN_SECRET", "s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CORS_ALLOWED_ORIGINS")
}

func TestLoad_ParsesLists(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("INJECT_ENV_VARS", "CI_TOKEN, REGISTRY_AUTH ,")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.agnox.dev,https://staging.agnox.dev")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"CI_TOKEN", "REGISTRY_AUTH"}, cfg.Dispatch.InjectEnvVars)
	assert.Equal(t, []string{"https://app.agnox.dev", "https://staging.agnox.dev"}, cfg.HTTP.AllowedOrigins)
}

func TestLoad_WorkerTransitionFlag(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("WORKER_CALLBACK_TRANSITION", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Auth.WorkerTransition)
}
