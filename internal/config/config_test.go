package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	t.Setenv("WORKBOOK_PATH", "")
	t.Setenv("SHEET", "")
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("RATE_LIMIT_RPS", "")
	t.Setenv("RATE_LIMIT_BURST", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg := LoadFromEnv()

	assert.Equal(t, "capbudg.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "", cfg.Sheet)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("WORKBOOK_PATH", "/data/budget.xlsx")
	t.Setenv("SHEET", "CapBudgWS")
	t.Setenv("LISTEN_ADDR", ":8088")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RATE_LIMIT_RPS", "5")
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadFromEnv()

	assert.Equal(t, "/data/budget.xlsx", cfg.WorkbookPath)
	assert.Equal(t, "CapBudgWS", cfg.Sheet)
	assert.Equal(t, ":8088", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5.0, cfg.RateLimitRPS)
	assert.Equal(t, 10, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadFromEnv_BadNumbersKeepDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_RPS", "lots")
	t.Setenv("RATE_LIMIT_BURST", "many")

	cfg := LoadFromEnv()

	assert.Equal(t, 100.0, cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.level}
		assert.Equal(t, tt.expected, cfg.SlogLevel(), "LogLevel %q", tt.level)
	}
}
