package database

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DatabaseConfig holds the connection settings for the relational slot store
type DatabaseConfig struct {
	// Driver specifies the database driver (postgres, sqlite)
	Driver string

	// PostgreSQL-specific configuration
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string

	// Path is the SQLite file, or the buntdb file when the local driver is buntdb
	Path string

	// MaxRetries bounds connection attempts; zero means 5
	MaxRetries int
	// RetryDelay is the first backoff delay, doubled after each attempt; zero means 1s
	RetryDelay time.Duration
}

// String returns a string representation with sensitive data masked
func (c *DatabaseConfig) String() string {
	return fmt.Sprintf("DatabaseConfig{Driver: %s, Host: %s, Port: %s, User: %s, Password: [REDACTED], Name: %s, SSLMode: %s, Path: %s}",
		c.Driver, c.Host, c.Port, c.User, c.Name, c.SSLMode, c.Path)
}

// DSN builds a Data Source Name string based on the driver
func (c *DatabaseConfig) DSN() string {
	switch c.driver() {
	case "postgres":
		sslMode := c.SSLMode
		if sslMode == "" {
			sslMode = "disable"
		}
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.Host, c.User, c.Password, c.Name, c.Port, sslMode)
	case "sqlite":
		if c.Path == "" {
			return "uplate.sqlite"
		}
		return c.Path
	default:
		return ""
	}
}

// driver normalizes the configured driver name
func (c *DatabaseConfig) driver() string {
	switch strings.ToLower(c.Driver) {
	case "postgres", "postgresql":
		return "postgres"
	case "sqlite", "":
		return "sqlite"
	default:
		return strings.ToLower(c.Driver)
	}
}

// dialector returns the gorm dialector for the configured driver
func (c *DatabaseConfig) dialector() (gorm.Dialector, error) {
	switch c.driver() {
	case "postgres":
		return postgres.Open(c.DSN()), nil
	case "sqlite":
		return sqlite.Open(c.DSN()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s (supported: postgres, sqlite)", c.Driver)
	}
}

func (c *DatabaseConfig) retries() (int, time.Duration) {
	attempts, delay := c.MaxRetries, c.RetryDelay
	if attempts <= 0 {
		attempts = 5
	}
	if delay <= 0 {
		delay = time.Second
	}
	return attempts, delay
}
