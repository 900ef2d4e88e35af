package config

import (
	"fmt"
	"path/filepath"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// DatabaseConfig holds storage connection configuration.
type DatabaseConfig struct {
	// Driver selects the storage engine (sqlite or postgres).
	Driver string
	// Path is the sqlite database file path.
	Path string
	// Host, User, Password, Name, Port, SSLMode, TimeZone configure postgres.
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
	TimeZone string
	// MigrationsPath is the root directory holding per-dialect migrations.
	MigrationsPath string
}

// LoadDatabaseConfigFromEnv loads storage configuration from environment variables.
func LoadDatabaseConfigFromEnv() DatabaseConfig {
	return DatabaseConfig{
		Driver:         GetEnv("DB_DRIVER", DriverSQLite),
		Path:           GetEnv("DB_PATH", "data/crbot.db"),
		Host:           GetEnv("DB_HOST", "localhost"),
		User:           GetEnv("DB_USER", "postgres"),
		Password:       GetEnv("DB_PASSWORD", "postgres"),
		Name:           GetEnv("DB_NAME", "crbot"),
		Port:           GetEnv("DB_PORT", "5432"),
		SSLMode:        GetEnv("DB_SSLMODE", "disable"),
		TimeZone:       GetEnv("DB_TIMEZONE", "UTC"),
		MigrationsPath: GetEnv("MIGRATIONS_PATH", "migrations"),
	}
}

// BuildDSN constructs the driver-specific connection string.
func (c DatabaseConfig) BuildDSN() string {
	if c.Driver == DriverSQLite {
		return c.Path
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode, c.TimeZone)
}

// MigrationsDir returns the dialect-specific migrations directory.
func (c DatabaseConfig) MigrationsDir() string {
	return filepath.Join(c.MigrationsPath, c.Driver)
}

// Validate validates storage configuration.
func (c DatabaseConfig) Validate() error {
	switch c.Driver {
	case DriverSQLite:
		if c.Path == "" {
			return fmt.Errorf("DB_PATH must not be empty for sqlite")
		}
	case DriverPostgres:
		if c.Host == "" || c.Port == "" || c.Name == "" {
			return fmt.Errorf("DB_HOST, DB_PORT and DB_NAME must not be empty for postgres")
		}
	default:
		return fmt.Errorf("invalid DB_DRIVER: %s (must be: sqlite, postgres)", c.Driver)
	}
	return nil
}
