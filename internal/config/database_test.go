package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigBuildDSN(t *testing.T) {
	t.Run("sqlite uses file path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverSQLite, Path: "data/crbot.db"}
		assert.Equal(t, "data/crbot.db", cfg.BuildDSN())
	})

	t.Run("postgres builds key value DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver: DriverPostgres, Host: "localhost", User: "postgres",
			Password: "postgres", Name: "crbot", Port: "5432",
			SSLMode: "disable", TimeZone: "UTC",
		}
		assert.Equal(t,
			"host=localhost user=postgres password=postgres dbname=crbot port=5432 sslmode=disable TimeZone=UTC",
			cfg.BuildDSN())
	})
}

func TestDatabaseConfigMigrationsDir(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverSQLite, MigrationsPath: "migrations"}
	assert.Equal(t, filepath.Join("migrations", "sqlite"), cfg.MigrationsDir())
}

func TestDatabaseConfigValidate(t *testing.T) {
	t.Run("sqlite requires path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverSQLite}
		assert.Error(t, cfg.Validate())
	})

	t.Run("postgres requires host port name", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: DriverPostgres, Host: "localhost", Port: "5432"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "oracle"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, LoadDatabaseConfigFromEnv().Validate())
	})
}
