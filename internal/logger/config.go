// Package logger provides the process-wide logging facility.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds the settings for the logger, decoded from the [logger]
// section of the configuration file.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path of the output log file. Empty means no file
	// logging unless the command line overrides it.
	LogFilePath string `toml:"log_file"`
}

// NewConfig returns a Config with default values.
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// Level parses the configured level string, defaulting to Info.
func (c Config) Level() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
