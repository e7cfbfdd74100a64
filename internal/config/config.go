package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Leave    LeaveConfig
	Crypto   CryptoConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
	MinConns int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// LeaveConfig holds the leave accrual and business-day settings.
// Read once at startup; components receive it by value and never consult
// the environment again.
type LeaveConfig struct {
	MaxCarryForward      decimal.Decimal
	WeekendDays          []time.Weekday
	MonthlyFlexibleHours decimal.Decimal
	AccrualCheckInterval time.Duration
	Timezone             *time.Location
}

// CryptoConfig holds the client-secret encryption key.
type CryptoConfig struct {
	DataEncryptionKey string
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("No .env file found, using process environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	dbMaxConns, err := strconv.ParseInt(getEnv("DB_MAX_CONNS", "25"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS: %w", err)
	}

	dbMinConns, err := strconv.ParseInt(getEnv("DB_MIN_CONNS", "5"), 10, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MIN_CONNS: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hrdb"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(dbMaxConns),
		MinConns: int32(dbMinConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "4000"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "168h"),
	}

	// Leave configuration
	maxCarryForward, err := decimal.NewFromString(getEnv("MAX_CARRY_FORWARD", "12"))
	if err != nil {
		return nil, fmt.Errorf("invalid MAX_CARRY_FORWARD: %w", err)
	}

	monthlyFlexibleHours, err := decimal.NewFromString(getEnv("MONTHLY_FLEXIBLE_HOURS", "6"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONTHLY_FLEXIBLE_HOURS: %w", err)
	}

	weekendDays, err := parseWeekendDays(getEnv("WEEKEND_DAYS", "0,6"))
	if err != nil {
		return nil, fmt.Errorf("invalid WEEKEND_DAYS: %w", err)
	}

	accrualCheckInterval, err := time.ParseDuration(getEnv("ACCRUAL_CHECK_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACCRUAL_CHECK_INTERVAL: %w", err)
	}

	timezone, err := time.LoadLocation(getEnv("TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	config.Leave = LeaveConfig{
		MaxCarryForward:      maxCarryForward,
		WeekendDays:          weekendDays,
		MonthlyFlexibleHours: monthlyFlexibleHours,
		AccrualCheckInterval: accrualCheckInterval,
		Timezone:             timezone,
	}

	config.Crypto = CryptoConfig{
		DataEncryptionKey: getEnv("DATA_ENCRYPTION_KEY", ""),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Leave.MaxCarryForward.IsNegative() {
		return fmt.Errorf("MAX_CARRY_FORWARD must not be negative")
	}
	if len(c.Leave.WeekendDays) > 6 {
		return fmt.Errorf("WEEKEND_DAYS must leave at least one working day")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// parseWeekendDays parses a comma-separated list of weekday numbers
// (0=Sunday..6=Saturday). Duplicates collapse; anything out of range is an
// error.
func parseWeekendDays(raw string) ([]time.Weekday, error) {
	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("weekday %q is not a number", part)
		}
		if n < 0 || n > 6 {
			return nil, fmt.Errorf("weekday %d out of range 0-6", n)
		}
		day := time.Weekday(n)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
