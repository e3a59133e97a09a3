package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("AUTH_RATE_LIMIT", "")
	t.Setenv("TASK_MANAGER_BASE_URL", "")

	cfg := Load()
	assert.Equal(t, "http://localhost:3001", cfg.TaskManagerBaseURL)

	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "pm.local", cfg.JWTIssuer)
	assert.Equal(t, "pm.local", cfg.JWTAudience)
	assert.Empty(t, cfg.AllowedOrigins)
	assert.Equal(t, 10, cfg.AuthRateLimit)
	assert.Equal(t, 10*time.Second, cfg.AuthRateWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("AUTH_RATE_LIMIT", "3")
	t.Setenv("AUTH_RATE_WINDOW_SECONDS", "not-a-number")
	t.Setenv("GIN_MODE", "release")

	cfg := Load()

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 3, cfg.AuthRateLimit)
	assert.Equal(t, 10*time.Second, cfg.AuthRateWindow)
	assert.True(t, cfg.IsProduction())
}
