package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv sets the environment variable for the duration of the test
		// and automatically restores it afterwards.
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("APP_PORT", "8080")
		t.Setenv("APP_ENV", "test")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
	})

	t.Run("Default delivery coordinates", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DEFAULT_LATITUDE", "")
		t.Setenv("DEFAULT_LONGITUDE", "")

		cfg := LoadConfig()

		assert.InDelta(t, FallbackLatitude, cfg.DefaultLatitude, 1e-9)
		assert.InDelta(t, FallbackLongitude, cfg.DefaultLongitude, 1e-9)
	})

	t.Run("Coordinate override", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DEFAULT_LATITUDE", "32.5")
		t.Setenv("DEFAULT_LONGITUDE", "35.75")

		cfg := LoadConfig()

		assert.InDelta(t, 32.5, cfg.DefaultLatitude, 1e-9)
		assert.InDelta(t, 35.75, cfg.DefaultLongitude, 1e-9)
	})

	t.Run("Invalid coordinate falls back", func(t *testing.T) {
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DEFAULT_LATITUDE", "not-a-number")

		cfg := LoadConfig()

		assert.InDelta(t, FallbackLatitude, cfg.DefaultLatitude, 1e-9)
	})
}
