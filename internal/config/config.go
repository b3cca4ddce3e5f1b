// Package config handles application configuration and environment loading.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Config holds the configuration for the workbook HTTP API.
type Config struct {
	WorkbookPath string // path to the workbook to serve (default "capbudg.xlsx")
	Sheet        string // restrict loading to one sheet (default: all sheets)
	ListenAddr   string // HTTP listen address (default ":9090")
	LogLevel     string // log level: debug, info, warn, error (default "info")

	// Rate limiting
	RateLimitRPS   float64 // sustained requests per second (default 100)
	RateLimitBurst int     // burst capacity (default 200)

	// CORS
	CORSAllowedOrigins []string // allowed origins for CORS (default: ["*"])
}

// SlogLevel maps the LogLevel string to an slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadFromEnv loads configuration from environment variables, applying
// defaults for anything unset.
func LoadFromEnv() *Config {
	cfg := &Config{
		WorkbookPath: os.Getenv("WORKBOOK_PATH"),
		Sheet:        os.Getenv("SHEET"),
		ListenAddr:   os.Getenv("LISTEN_ADDR"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
	}

	// Rate limiting
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RateLimitRPS = f
		}
	}
	if v := os.Getenv("RATE_LIMIT_BURST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitBurst = n
		}
	}

	// CORS
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		origins := strings.Split(v, ",")
		for i := range origins {
			origins[i] = strings.TrimSpace(origins[i])
		}
		cfg.CORSAllowedOrigins = origins
	}

	// Defaults
	if cfg.WorkbookPath == "" {
		cfg.WorkbookPath = "capbudg.xlsx"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":9090"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.RateLimitRPS == 0 {
		cfg.RateLimitRPS = 100
	}
	if cfg.RateLimitBurst == 0 {
		cfg.RateLimitBurst = 200
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		cfg.CORSAllowedOrigins = []string{"*"}
	}

	return cfg
}
