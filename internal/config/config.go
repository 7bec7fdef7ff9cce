package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// EnvPrefix prefixes every environment override, e.g. SPRINTLINE_LOG_LEVEL.
const EnvPrefix = "SPRINTLINE"

// Config is the resolved process configuration.
type Config struct {
	Seed SeedConfig `mapstructure:"seed"`
	Log  LogConfig  `mapstructure:"log"`
}

// SeedConfig selects the snapshot the store starts from. An empty path
// means the embedded default snapshot.
type SeedConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls the zerolog logger and its optional rotating file sink.
type LogConfig struct {
	Level      zerolog.Level `mapstructure:"level"`
	Format     string        `mapstructure:"format"` // auto, console or json
	File       string        `mapstructure:"file"`
	MaxSizeMB  int           `mapstructure:"max_size_mb"`
	MaxBackups int           `mapstructure:"max_backups"`
	MaxAgeDays int           `mapstructure:"max_age_days"`
	Compress   bool          `mapstructure:"compress"`
}

// Log formats.
const (
	FormatAuto    = "auto"
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultConfig returns the built-in defaults. Logging is quiet (warn) so
// command output is not interleaved with log lines.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			Level:      zerolog.WarnLevel,
			Format:     FormatAuto,
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
	}
}

// Validate reports every invalid setting.
func Validate(cfg *Config) error {
	var errs []error
	switch cfg.Log.Format {
	case FormatAuto, FormatConsole, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format: invalid value %q (want auto, console or json)", cfg.Log.Format))
	}
	if cfg.Log.Level == zerolog.NoLevel {
		errs = append(errs, errors.New("log.level is required"))
	}
	if cfg.Log.MaxSizeMB <= 0 {
		errs = append(errs, fmt.Errorf("log.max_size_mb must be positive, got %d", cfg.Log.MaxSizeMB))
	}
	if cfg.Log.MaxBackups < 0 {
		errs = append(errs, fmt.Errorf("log.max_backups must be >= 0, got %d", cfg.Log.MaxBackups))
	}
	if cfg.Log.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("log.max_age_days must be >= 0, got %d", cfg.Log.MaxAgeDays))
	}
	return errors.Join(errs...)
}
