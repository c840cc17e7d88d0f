package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/uplate-admin/internal/database"
	"github.com/sirupsen/logrus"
)

// Create a new instance of the logger
// Configure it to log at the desired level
// and format it as JSON for structured logging
var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	environment := GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(logrus.DebugLevel)
	case "production":
		log.SetLevel(logrus.ErrorLevel)
	default:
		// Default to info level for other environments
		log.SetLevel(logrus.InfoLevel)
	}
}

// Store backends
const (
	BackendLocal  = "local"
	BackendRemote = "remote"
)

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Env  string `json:"env"`
	Port int    `json:"port"`
	Host string `json:"host"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Store configuration
	StoreBackend string `json:"store_backend"`
	School       string `json:"school"`

	// Remote backend configuration
	APIBaseURL    string        `json:"api_base_url"`
	RemoteTimeout time.Duration `json:"remote_timeout"`

	// Local backend configuration. Database.Path holds LOCAL_PATH.
	LocalDriver string                  `json:"local_driver"`
	Database    database.DatabaseConfig `json:"-"`

	// Security Configuration
	AdminKey string `json:"-"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Env: %s, Port: %d, Host: %s, LogLevel: %s, StoreBackend: %s, School: %s, APIBaseURL: %s, RemoteTimeout: %s, LocalDriver: %s, Database: %s, AdminKey: %s}",
		c.Env, c.Port, c.Host, c.LogLevel, c.StoreBackend, c.School, maskURL(c.APIBaseURL),
		c.RemoteTimeout, c.LocalDriver, c.Database.String(), maskSecret(c.AdminKey))
}

// Level returns the configured log level, falling back to info
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func maskSecret(s string) string {
	if s == "" {
		return "[UNSET]"
	}
	return "[REDACTED]"
}

// maskURL masks the password of URL user info
func maskURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		// Replace password with [REDACTED]
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It validates the port, the store backend and its settings
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}
	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("invalid APP_PORT: %d out of range", port)
	}

	timeoutSeconds, err := strconv.Atoi(GetEnvWithDefault("REMOTE_TIMEOUT_SECONDS", "15"))
	if err != nil || timeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid REMOTE_TIMEOUT_SECONDS: %q", os.Getenv("REMOTE_TIMEOUT_SECONDS"))
	}

	config := &Config{
		Env:           GetEnvWithDefault("APP_ENV", "development"),
		Port:          port,
		Host:          GetEnvWithDefault("APP_HOST", "localhost"),
		LogLevel:      GetEnvWithDefault("LOG_LEVEL", "info"),
		StoreBackend:  strings.ToLower(GetEnvWithDefault("STORE_BACKEND", BackendLocal)),
		School:        GetEnvWithDefault("SCHOOL", "default"),
		APIBaseURL:    GetEnvWithDefault("API_BASE_URL", "http://localhost:3000/api"),
		RemoteTimeout: time.Duration(timeoutSeconds) * time.Second,
		LocalDriver:   strings.ToLower(GetEnvWithDefault("LOCAL_DRIVER", "buntdb")),
		AdminKey:      os.Getenv("ADMIN_KEY"),
		Database: database.DatabaseConfig{
			Host:       GetEnvWithDefault("DB_HOST", "localhost"),
			Port:       GetEnvWithDefault("DB_PORT", "5432"),
			User:       GetEnvWithDefault("DB_USER", "uplate"),
			Password:   os.Getenv("DB_PASSWORD"),
			Name:       GetEnvWithDefault("DB_NAME", "uplate"),
			SSLMode:    GetEnvWithDefault("DB_SSLMODE", "disable"),
			Path:       GetEnvWithDefault("LOCAL_PATH", "uplate.db"),
			MaxRetries: GetEnvAsType("DB_MAX_RETRIES", 5),
		},
	}
	config.Database.Driver = config.LocalDriver

	switch config.StoreBackend {
	case BackendLocal:
		switch config.LocalDriver {
		case "buntdb", "sqlite", "postgres":
		default:
			return nil, fmt.Errorf("unsupported LOCAL_DRIVER: %s (supported: buntdb, sqlite, postgres)", config.LocalDriver)
		}
	case BackendRemote:
		// validate URL with net/url
		if _, err := url.ParseRequestURI(config.APIBaseURL); err != nil {
			return nil, fmt.Errorf("invalid API_BASE_URL %q: %w", config.APIBaseURL, err)
		}
	default:
		return nil, fmt.Errorf("unsupported STORE_BACKEND: %s (supported: local, remote)", config.StoreBackend)
	}

	if config.AdminKey == "" {
		log.Warn("ADMIN_KEY not set: mutating requests will be refused")
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
