// Package config resolves runtime settings from flags, environment and defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Environment variables read by Load.
const (
	EnvDB       = "MLPRIMER_DB"
	EnvLogLevel = "MLPRIMER_LOG_LEVEL"
	EnvFormat   = "MLPRIMER_FORMAT"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// LogLevel names the minimum level the CLI logs at.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Zap returns the matching zap level. Anything unrecognized logs at error.
func (l LogLevel) Zap() zap.AtomicLevel {
	switch l {
	case LogLevelDebug:
		return zap.NewAtomicLevelAt(zap.DebugLevel)
	case LogLevelInfo:
		return zap.NewAtomicLevelAt(zap.InfoLevel)
	case LogLevelWarn:
		return zap.NewAtomicLevelAt(zap.WarnLevel)
	default:
		return zap.NewAtomicLevelAt(zap.ErrorLevel)
	}
}

// Config holds resolved settings.
type Config struct {
	DBPath   string
	LogLevel LogLevel
	Format   string
}

// Load fills every empty field of flags from the environment, then from
// defaults. Flags always win.
func Load(flags Config) (Config, error) {
	cfg := flags

	if cfg.DBPath == "" {
		cfg.DBPath = os.Getenv(EnvDB)
	}
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, fmt.Errorf("resolve home dir: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".mlprimer", "embeddings.db")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevel(os.Getenv(EnvLogLevel))
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = LogLevelError
	}

	if cfg.Format == "" {
		cfg.Format = os.Getenv(EnvFormat)
	}
	if cfg.Format == "" {
		cfg.Format = FormatJSON
	}
	if cfg.Format != FormatJSON && cfg.Format != FormatText {
		return cfg, fmt.Errorf("unknown format %q (want json or text)", cfg.Format)
	}

	return cfg, nil
}
