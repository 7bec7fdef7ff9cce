package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Flag names bound onto config keys by Load.
const (
	FlagConfig   = "config"
	FlagSeed     = "seed"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
)

var flagKeys = map[string]string{
	FlagSeed:     "seed.path",
	FlagLogLevel: "log.level",
	FlagLogFile:  "log.file",
}

// RegisterFlags adds the configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(FlagConfig, "", "config file (default ~/.sprintline/config.yaml)")
	fs.String(FlagSeed, "", "seed snapshot YAML (default: built-in sample)")
	fs.String(FlagLogLevel, "", "log level (trace, debug, info, warn, error)")
	fs.String(FlagLogFile, "", "also write logs to this file, rotated")
}

// Load resolves configuration with this precedence, highest first:
//  1. flags explicitly set on fs
//  2. SPRINTLINE_* environment variables
//  3. the config file (configFile, or ~/.sprintline/config.yaml if present)
//  4. DefaultConfig
//
// fs may be nil. A missing default config file is not an error; a missing
// explicit one is.
func Load(configFile string, fs *pflag.FlagSet) (*Config, error) {
	v := newViperInstance()

	explicit := configFile != ""
	if !explicit {
		if path, ok := globalConfigPathIfExists(); ok {
			configFile = path
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if explicit || !errors.As(err, &notFound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	if fs != nil {
		for flag, key := range flagKeys {
			if f := fs.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("binding flag %s: %w", flag, err)
				}
			}
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// setDefaults registers every key so AutomaticEnv can see it during
// Unmarshal, which only visits known keys.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("seed.path", d.Seed.Path)
	v.SetDefault("log.level", d.Log.Level.String())
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("log.compress", d.Log.Compress)
}

func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(),
			mapstructure.StringToTimeDurationHookFunc(),
		),
	)
}

// GlobalConfigDir returns ~/.sprintline.
func GlobalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".sprintline"), nil
}

func globalConfigPathIfExists() (string, bool) {
	dir, err := GlobalConfigDir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return "", false
	}
	return path, true
}
