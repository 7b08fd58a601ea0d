package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	EnableDBCheck     bool
	MigrationsPath    string
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "60-M"
	AuthRateLimit      string

	// AnnualAnalyticsConcurrency bounds how many months of an annual report are fetched at once.
	AnnualAnalyticsConcurrency int

	// Goal values used when a user has not saved a goal for a month.
	DefaultMonthlyIncomeGoal     decimal.Decimal
	DefaultMonthlyGoldGoal       decimal.Decimal
	DefaultMonthlySilverGoal     decimal.Decimal
	DefaultMonthlyInvestmentGoal decimal.Decimal

	PosthogAPIKey string
}

const (
	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
	defaultJWTIssuer = "portfel-tracker"
)

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	return fromViper(v), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_EXPIRY_DURATION", "1h")
	v.SetDefault("JWT_ISSUER", defaultJWTIssuer)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "60-M")
	v.SetDefault("AUTH_RATE_LIMIT", "5-M")
	v.SetDefault("ANALYTICS_ANNUAL_CONCURRENCY", 4)
	v.SetDefault("DEFAULT_MONTHLY_INCOME_GOAL", "20000")
	v.SetDefault("DEFAULT_MONTHLY_GOLD_GOAL", "10")
	v.SetDefault("DEFAULT_MONTHLY_SILVER_GOAL", "500")
	v.SetDefault("DEFAULT_MONTHLY_INVESTMENT_GOAL", "5100")
	v.SetDefault("POSTHOG_API_KEY", "")
}

func fromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.DatabaseURL = v.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = v.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.IsProduction = v.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = v.GetBool("ENABLE_DB_CHECK")
	cfg.MigrationsPath = v.GetString("MIGRATIONS_PATH")

	cfg.JWTSecret = v.GetString("JWT_SECRET")
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = defaultJWTSecret // !! CHANGE IN PRODUCTION !!
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	// e.g. "60m", "1h"
	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour
		if jwtExpiryStr != "" {
			log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
		}
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = v.GetString("JWT_ISSUER")
	if cfg.JWTIssuer == "" {
		cfg.JWTIssuer = defaultJWTIssuer
		log.Printf("Warning: JWT_ISSUER not set. Defaulting to %s.\n", cfg.JWTIssuer)
	}

	cfg.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))
	cfg.RateLimit = v.GetString("RATE_LIMIT")
	cfg.AuthRateLimit = v.GetString("AUTH_RATE_LIMIT")

	cfg.AnnualAnalyticsConcurrency = v.GetInt("ANALYTICS_ANNUAL_CONCURRENCY")
	if cfg.AnnualAnalyticsConcurrency < 1 {
		log.Printf("Warning: ANALYTICS_ANNUAL_CONCURRENCY must be at least 1 (got %d). Defaulting to 1.\n", cfg.AnnualAnalyticsConcurrency)
		cfg.AnnualAnalyticsConcurrency = 1
	}

	cfg.DefaultMonthlyIncomeGoal = decimalSetting(v, "DEFAULT_MONTHLY_INCOME_GOAL", "20000")
	cfg.DefaultMonthlyGoldGoal = decimalSetting(v, "DEFAULT_MONTHLY_GOLD_GOAL", "10")
	cfg.DefaultMonthlySilverGoal = decimalSetting(v, "DEFAULT_MONTHLY_SILVER_GOAL", "500")
	cfg.DefaultMonthlyInvestmentGoal = decimalSetting(v, "DEFAULT_MONTHLY_INVESTMENT_GOAL", "5100")

	cfg.PosthogAPIKey = v.GetString("POSTHOG_API_KEY")

	return cfg
}

func decimalSetting(v *viper.Viper, key, fallback string) decimal.Decimal {
	raw := v.GetString(key)
	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		return decimal.RequireFromString(fallback)
	}
	return d
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
