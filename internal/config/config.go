package config

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	JWT      JWTConfig
	Auth     AuthConfig
	Shift    ShiftConfig
	Settings SettingsConfig
}

type AppConfig struct {
	Port       int
	Env        string
	Version    string
	CORSOrigin string
	LogLevel   string
}

type DatabaseConfig struct {
	Path string
}

// JWTConfig holds access/refresh token configuration
type JWTConfig struct {
	Secret            string
	AccessExpiration  string
	RefreshExpiration string
}

// AuthConfig holds login lockout configuration
type AuthConfig struct {
	LockoutLimit  int64
	LockoutWindow string
}

// ShiftConfig holds shift/schedule reconciliation policy knobs
type ShiftConfig struct {
	ClockInToleranceMinutes int
	StaleShiftHours         int
	DefaultMaxStartingCash  string
}

type SettingsConfig struct {
	EncryptionKey string
}

func Load() (*Config, error) {
	// A missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8090"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:       appPort,
		Env:        getEnv("APP_ENV", "development"),
		Version:    getEnv("APP_VERSION", "1.0.0"),
		CORSOrigin: getEnv("CORS_ORIGIN", "http://localhost:3000"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}

	config.Database = DatabaseConfig{
		Path: getEnv("DB_PATH", "auraswift.db"),
	}

	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
	}

	lockoutLimit, err := strconv.ParseInt(getEnv("LOGIN_LOCKOUT_LIMIT", "5"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_LOCKOUT_LIMIT: %w", err)
	}

	config.Auth = AuthConfig{
		LockoutLimit:  lockoutLimit,
		LockoutWindow: getEnv("LOGIN_LOCKOUT_WINDOW", "15m"),
	}

	tolerance, err := strconv.Atoi(getEnv("CLOCK_IN_TOLERANCE_MINUTES", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid CLOCK_IN_TOLERANCE_MINUTES: %w", err)
	}

	staleHours, err := strconv.Atoi(getEnv("STALE_SHIFT_HOURS", "24"))
	if err != nil {
		return nil, fmt.Errorf("invalid STALE_SHIFT_HOURS: %w", err)
	}

	config.Shift = ShiftConfig{
		ClockInToleranceMinutes: tolerance,
		StaleShiftHours:         staleHours,
		DefaultMaxStartingCash:  getEnv("MAX_STARTING_CASH", "500"),
	}

	config.Settings = SettingsConfig{
		EncryptionKey: getEnv("SETTINGS_ENCRYPTION_KEY", ""),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Settings.EncryptionKey != "" {
		key, err := hex.DecodeString(c.Settings.EncryptionKey)
		if err != nil {
			return fmt.Errorf("SETTINGS_ENCRYPTION_KEY must be hex encoded: %w", err)
		}
		if len(key) != 32 {
			return fmt.Errorf("SETTINGS_ENCRYPTION_KEY must decode to 32 bytes")
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
