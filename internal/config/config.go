// Package config provides centralized configuration management for the application.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup so misconfiguration is reported early.
//
// Configuration only affects diagnostics. The transformation itself is
// driven by command-line flags, and a bad setting never stops it: callers
// fall back to Default.
package config

// Config holds all application configuration.
type Config struct {
	Logging LoggingConfig
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: warn)
	// Supports both LOG_LEVEL and MAXUTIL_LOG_LEVEL
	Level string `env:"LOG_LEVEL" envAlt:"MAXUTIL_LOG_LEVEL" default:"warn"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`

	// AddSource adds the file and line of the logging call to each entry
	AddSource bool `env:"LOG_SOURCE" default:"false"`
}
