package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Port:                 "8080",
		CORSOrigins:          []string{"*"},
		DBPath:               "./data/test.db",
		AuthTokenTTL:         time.Hour,
		BudgetSchedule:       "@daily",
		AnalyticsWindowDays:  30,
		ForecastHorizonDays:  30,
		ForecastLookbackDays: 90,
		SuggestionSampleSize: 50,
		LogLevel:             "info",
		LogFormat:            "text",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(c *Config)
		errorString string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "auth with long secret",
			mutate: func(c *Config) { c.AuthSecret = "0123456789abcdef0123456789abcdef" },
		},
		{
			name:   "schedule disabled",
			mutate: func(c *Config) { c.BudgetSchedule = "" },
		},
		{
			name:        "non-numeric port",
			mutate:      func(c *Config) { c.Port = "abc" },
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "port out of range",
			mutate:      func(c *Config) { c.Port = "70000" },
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "empty database path",
			mutate:      func(c *Config) { c.DBPath = "" },
			errorString: "database path cannot be empty",
		},
		{
			name:        "short auth secret",
			mutate:      func(c *Config) { c.AuthSecret = "short" },
			errorString: "auth secret must be at least 32 characters",
		},
		{
			name:        "bad cron spec",
			mutate:      func(c *Config) { c.BudgetSchedule = "every tuesday" },
			errorString: "invalid budget schedule 'every tuesday'",
		},
		{
			name:        "lookback shorter than minimum forecast days",
			mutate:      func(c *Config) { c.ForecastLookbackDays = 3 },
			errorString: "invalid forecast lookback days 3",
		},
		{
			name:        "unknown log format",
			mutate:      func(c *Config) { c.LogFormat = "xml" },
			errorString: "invalid log format 'xml'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errorString == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorString)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "CORS_ORIGINS", "AUTH_SECRET", "ANALYTICS_WINDOW_DAYS", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./data/finfusion.db", cfg.DBPath)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.AuthEnabled())
	assert.Equal(t, 30, cfg.AnalyticsWindowDays)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com,")
	t.Setenv("AUTH_TOKEN_TTL", "2h")
	t.Setenv("BUDGET_SCHEDULE", "")
	t.Setenv("SUGGESTION_SAMPLE_SIZE", "20")
	t.Setenv("FORECAST_LOOKBACK_DAYS", "not-a-number")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.AuthTokenTTL)
	assert.Empty(t, cfg.BudgetSchedule)
	assert.Equal(t, 90, cfg.ForecastLookbackDays)

	p := cfg.Policy()
	assert.Equal(t, 20, p.SuggestionSampleSize)
	assert.Equal(t, 90, p.ForecastLookbackDays)
}
