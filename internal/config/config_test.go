package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("IDLE_TIMEOUT_SECONDS", "")
	t.Setenv("MAX_SESSION_LIFETIME_SECONDS", "")
	t.Setenv("BASE_REDIRECT_URL", "")
	t.Setenv("APP_PORT", "")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 4*time.Hour, cfg.MaxSessionLifetime)
	assert.Equal(t, "/login", cfg.BaseRedirectURL)
	assert.Equal(t, "8080", cfg.AppPort)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("IDLE_TIMEOUT_SECONDS", "300")
	t.Setenv("MAX_SESSION_LIFETIME_SECONDS", "7200")
	t.Setenv("BASE_REDIRECT_URL", "https://portal.example/login")

	cfg := Load()

	assert.Equal(t, 5*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 2*time.Hour, cfg.MaxSessionLifetime)
	assert.Equal(t, "https://portal.example/login", cfg.BaseRedirectURL)
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("IDLE_TIMEOUT_SECONDS", "soon")
	t.Setenv("MAX_SESSION_LIFETIME_SECONDS", "-1")

	cfg := Load()

	assert.Equal(t, 15*time.Minute, cfg.IdleTimeout)
	assert.Equal(t, 4*time.Hour, cfg.MaxSessionLifetime)
}
