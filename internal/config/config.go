package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the portal.
type Config struct {
	App     AppConfig
	Logger  LoggerConfig
	Storage StorageConfig
	Auth    AuthConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
	File  string
}

// StorageConfig locates the snapshot state directory.
type StorageConfig struct {
	StateDir string
}

// AuthConfig defines the hardcoded portal-owner credentials and the
// password policy applied on reset.
type AuthConfig struct {
	SuperAdminEmail    string
	SuperAdminPassword string
	SuperAdminName     string
	MinPasswordLength  int
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	minPasswordLength := getEnvAsInt("AUTH_MIN_PASSWORD_LENGTH", 8)
	if minPasswordLength < 1 {
		return nil, fmt.Errorf("invalid AUTH_MIN_PASSWORD_LENGTH: %d", minPasswordLength)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "crm-admin-portal"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  os.Getenv("LOG_FILE"),
		},
		Storage: StorageConfig{
			StateDir: getEnv("STATE_DIR", "./state"),
		},
		Auth: AuthConfig{
			SuperAdminEmail:    getEnv("SUPERADMIN_EMAIL", "admin@quickcommerce.com"),
			SuperAdminPassword: getEnv("SUPERADMIN_PASSWORD", "admin123"),
			SuperAdminName:     getEnv("SUPERADMIN_NAME", "Super Admin"),
			MinPasswordLength:  minPasswordLength,
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
