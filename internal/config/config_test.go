package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadDefaults sets only the required variable and expects the defaults for everything else.
func TestLoadDefaults(t *testing.T) {
	t.Setenv("DBUSER", "dirk")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Server.Addr())
	assert.True(t, cfg.Server.RequestLogging())
	assert.Equal(t, 15*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, int64(10485760), cfg.Server.MaxUploadSize)
	assert.Equal(t, "localhost:3306", cfg.Database.Host)
	assert.Equal(t, "dirk", cfg.Database.User)
	assert.Equal(t, "test", cfg.Database.Name)
	assert.Equal(t, time.Hour, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

// TestLoadOverrides expects that set variables win over defaults.
func TestLoadOverrides(t *testing.T) {
	t.Setenv("DBUSER", "dirk")
	t.Setenv("DBPWD", "bullo92")
	t.Setenv("DBHOST", "db:3306")
	t.Setenv("PORT", "9090")
	t.Setenv("GIN_LOGGING", "OFF")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.False(t, cfg.Server.RequestLogging())
	assert.Equal(t, "db:3306", cfg.Database.Host)
	assert.Equal(t, "bullo92", cfg.Database.Password)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.NotContains(t, cfg.String(), "bullo92")
}

// TestLoadMissingRequired expects an error naming the missing variable.
func TestLoadMissingRequired(t *testing.T) {
	t.Setenv("DBUSER", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DBUSER")
}

// TestLoadInvalidValues expects parse and validation errors to be reported.
func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name     string
		variable string
		value    string
		contains string
	}{
		{"port not a number", "PORT", "eighty", `field "Port"`},
		{"port out of range", "PORT", "70000", "must be 1-65535"},
		{"bad duration", "SERVER_SHUTDOWN_TIMEOUT", "soon", "invalid duration"},
		{"bad log level", "LOG_LEVEL", "verbose", "LOG_LEVEL"},
		{"idle above open", "DB_MAX_IDLE_CONNS", "50", "DB_MAX_IDLE_CONNS"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DBUSER", "dirk")
			t.Setenv(tt.variable, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}
