package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PGSQL_URL", "postgres://localhost/portfel")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/portfel", cfg.DatabaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "file://migrations", cfg.MigrationsPath)
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
	assert.Equal(t, "60-M", cfg.RateLimit)
	assert.Equal(t, "5-M", cfg.AuthRateLimit)
	assert.Equal(t, 4, cfg.AnnualAnalyticsConcurrency)
	assert.Equal(t, "20000", cfg.DefaultMonthlyIncomeGoal.String())
	assert.Equal(t, "10", cfg.DefaultMonthlyGoldGoal.String())
	assert.Equal(t, "500", cfg.DefaultMonthlySilverGoal.String())
	assert.Equal(t, "5100", cfg.DefaultMonthlyInvestmentGoal.String())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ANALYTICS_ANNUAL_CONCURRENCY", "1")
	t.Setenv("DEFAULT_MONTHLY_INCOME_GOAL", "12500.50")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("JWT_EXPIRY_DURATION", "15m")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.AnnualAnalyticsConcurrency)
	assert.Equal(t, "12500.5", cfg.DefaultMonthlyIncomeGoal.String())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 15*time.Minute, cfg.JWTExpiryDuration)
}

func TestFromViper_InvalidValuesFallBack(t *testing.T) {
	v := viper.New()
	setDefaults(v)
	v.Set("ANALYTICS_ANNUAL_CONCURRENCY", 0)
	v.Set("DEFAULT_MONTHLY_GOLD_GOAL", "lots")
	v.Set("DEFAULT_MONTHLY_SILVER_GOAL", "-1")
	v.Set("JWT_EXPIRY_DURATION", "soon")

	cfg := fromViper(v)

	assert.Equal(t, 1, cfg.AnnualAnalyticsConcurrency)
	assert.Equal(t, "10", cfg.DefaultMonthlyGoldGoal.String())
	assert.Equal(t, "500", cfg.DefaultMonthlySilverGoal.String())
	assert.Equal(t, time.Hour, cfg.JWTExpiryDuration)
}
