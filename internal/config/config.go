// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/marilyndevx/FinFusion-V1/internal/analytics"
)

type Config struct {
	// HTTP Server
	Port        string
	CORSOrigins []string

	// Database
	DBPath string

	// Auth. An empty secret turns bearer-token checks off.
	AuthSecret   string
	AuthTokenTTL time.Duration

	// BudgetSchedule is a cron spec for regenerating AI budgets; empty disables it.
	BudgetSchedule string

	// Analytics
	AnalyticsWindowDays  int
	ForecastHorizonDays  int
	ForecastLookbackDays int
	SuggestionSampleSize int

	// Logging
	LogLevel  string
	LogFormat string
}

// Load reads an optional .env file, then the environment.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnvList("CORS_ORIGINS", []string{"*"}),

		DBPath: getEnv("DB_PATH", "./data/finfusion.db"),

		AuthSecret:   getEnv("AUTH_SECRET", ""),
		AuthTokenTTL: getEnvDuration("AUTH_TOKEN_TTL", 720*time.Hour),

		BudgetSchedule: getEnvOptional("BUDGET_SCHEDULE", "@daily"),

		AnalyticsWindowDays:  getEnvInt("ANALYTICS_WINDOW_DAYS", analytics.DefaultWindowDays),
		ForecastHorizonDays:  getEnvInt("FORECAST_HORIZON_DAYS", analytics.DefaultForecastHorizonDays),
		ForecastLookbackDays: getEnvInt("FORECAST_LOOKBACK_DAYS", analytics.DefaultForecastLookbackDays),
		SuggestionSampleSize: getEnvInt("SUGGESTION_SAMPLE_SIZE", analytics.DefaultSuggestionSampleSize),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// AuthEnabled reports whether RPCs require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.AuthSecret != ""
}

// Policy returns the analytics thresholds with the configured overrides applied.
func (c *Config) Policy() analytics.Policy {
	p := analytics.DefaultPolicy()
	p.SuggestionSampleSize = c.SuggestionSampleSize
	p.ForecastLookbackDays = c.ForecastLookbackDays
	return p
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if c.AuthEnabled() {
		if len(c.AuthSecret) < 32 {
			errors = append(errors, "auth secret must be at least 32 characters")
		}
		if c.AuthTokenTTL <= 0 {
			errors = append(errors, fmt.Sprintf("invalid auth token TTL %v: must be positive", c.AuthTokenTTL))
		}
	}

	if c.BudgetSchedule != "" {
		if _, err := cron.ParseStandard(c.BudgetSchedule); err != nil {
			errors = append(errors, fmt.Sprintf("invalid budget schedule '%s': %v", c.BudgetSchedule, err))
		}
	}

	checkDays := func(name string, v, min, max int) {
		if v < min || v > max {
			errors = append(errors, fmt.Sprintf("invalid %s %d: must be between %d and %d", name, v, min, max))
		}
	}
	checkDays("analytics window days", c.AnalyticsWindowDays, 1, 366)
	checkDays("forecast horizon days", c.ForecastHorizonDays, 1, 366)
	checkDays("forecast lookback days", c.ForecastLookbackDays, analytics.MinForecastDays, 3660)
	checkDays("suggestion sample size", c.SuggestionSampleSize, 1, 10000)

	switch c.LogFormat {
	case "text", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be text or json", c.LogFormat))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvOptional lets an explicitly empty variable override the default.
func getEnvOptional(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
