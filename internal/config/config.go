// Package config loads the service configuration from environment variables. Defaults apply to
// unset variables and the result is validated on startup.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Port is the port to listen on.
	Port int `env:"PORT" envDefault:"8080"`

	// GinLogging set to "off" turns off request logging.
	GinLogging string `env:"GIN_LOGGING" envDefault:"on"`

	// ShutdownTimeout is how long in-flight requests may run after a shutdown signal.
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// MaxUploadSize is the largest accepted spreadsheet upload in bytes.
	MaxUploadSize int64 `env:"UPLOAD_MAX_FILE_SIZE" envDefault:"10485760"`
}

// DatabaseConfig holds the MySQL connection settings.
type DatabaseConfig struct {
	Host     string `env:"DBHOST" envDefault:"localhost:3306"`
	User     string `env:"DBUSER,notEmpty"`
	Password string `env:"DBPWD"`
	Name     string `env:"DBNAME" envDefault:"test"`

	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" envDefault:"20"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"1h"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `env:"LOG_LEVEL" envDefault:"info"`

	// Format is text or json.
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Addr returns the listen address.
func (c *ServerConfig) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

// RequestLogging reports whether every request should be logged.
func (c *ServerConfig) RequestLogging() bool {
	return !strings.EqualFold(c.GinLogging, "off")
}

// Validate checks that the configuration is usable and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT (%d) must be 1-65535", c.Server.Port))
	}
	if c.Server.ShutdownTimeout <= 0 {
		errs = append(errs, "SERVER_SHUTDOWN_TIMEOUT must be positive")
	}
	if c.Server.MaxUploadSize <= 0 {
		errs = append(errs, "UPLOAD_MAX_FILE_SIZE must be positive")
	}

	if c.Database.Host == "" {
		errs = append(errs, "DBHOST must not be empty")
	}
	if c.Database.MaxOpenConns <= 0 {
		errs = append(errs, "DB_MAX_OPEN_CONNS must be positive")
	}
	if c.Database.MaxIdleConns < 0 || c.Database.MaxIdleConns > c.Database.MaxOpenConns {
		errs = append(errs, fmt.Sprintf("DB_MAX_IDLE_CONNS (%d) must be between 0 and DB_MAX_OPEN_CONNS (%d)",
			c.Database.MaxIdleConns, c.Database.MaxOpenConns))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}
	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// String returns a representation of the config that is safe to log.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Server: {Port: %d, GinLogging: %q}, Database: {Host: %q, User: %q, Password: [MASKED], Name: %q, MaxOpenConns: %d}, Logging: {Level: %q, Format: %q}}",
		c.Server.Port, c.Server.GinLogging,
		c.Database.Host, c.Database.User, c.Database.Name, c.Database.MaxOpenConns,
		c.Logging.Level, c.Logging.Format)
}
