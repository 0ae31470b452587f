package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATABASE_DSN", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, defaultDatabaseDSN, cfg.DatabaseDSN)
	assert.Equal(t, "goldencitizen:leads", cfg.LeadQueueKey)
	assert.Equal(t, []string{"*"}, cfg.CORSOriginList())
	assert.Len(t, cfg.Warnings, 3)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=gc sslmode=disable")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://goldencitizen.com.tr, https://www.goldencitizen.com.tr ,")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "redis:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, []string{"https://goldencitizen.com.tr", "https://www.goldencitizen.com.tr"}, cfg.CORSOriginList())
	assert.Empty(t, cfg.Warnings)
}

func TestLoadClient_RequiresBackendURL(t *testing.T) {
	t.Setenv("BACKEND_URL", "")

	_, err := LoadClient()
	assert.Error(t, err)
}

func TestLoadClient_Defaults(t *testing.T) {
	t.Setenv("BACKEND_URL", "https://api.goldencitizen.com.tr/")
	t.Setenv("HTTP_TIMEOUT", "")
	t.Setenv("WHATSAPP_NUMBER", "")
	t.Setenv("CURRENCY", "")

	cfg, err := LoadClient()
	require.NoError(t, err)

	assert.Equal(t, "https://api.goldencitizen.com.tr", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, DefaultWhatsAppNumber, cfg.WhatsAppNumber)
	assert.Equal(t, DefaultWhatsAppBaseURL, cfg.WhatsAppBaseURL)
	assert.Equal(t, "tr-TR", cfg.Locale)
	assert.Equal(t, "EUR", cfg.Currency)
}

func TestLoadClient_InvalidTimeout(t *testing.T) {
	t.Setenv("BACKEND_URL", "http://localhost:8080")
	t.Setenv("HTTP_TIMEOUT", "-1s")

	_, err := LoadClient()
	assert.Error(t, err)
}
