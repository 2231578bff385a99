// Package config loads nxcube settings from a TOML file, NXCUBE_ environment
// variables and built-in defaults, in that order of precedence after flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	AppName        = "nxcube"
	ConfigFileName = "config"
	ConfigFileExt  = "toml"
	EnvPrefix      = "NXCUBE"
)

var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full set of user settings.
type Config struct {
	DefaultDegree  int `mapstructure:"default_degree" toml:"default_degree" validate:"oneof=2 3 4"`
	GuardCeiling   int `mapstructure:"guard_ceiling" toml:"guard_ceiling" validate:"min=1"`
	ScrambleLength int `mapstructure:"scramble_length" toml:"scramble_length" validate:"min=1,max=1000"`

	Log     LogConfig     `mapstructure:"log" toml:"log"`
	Bench   BenchConfig   `mapstructure:"bench" toml:"bench"`
	Storage StorageConfig `mapstructure:"storage" toml:"storage"`
	Live    LiveConfig    `mapstructure:"live" toml:"live"`
}

type LogConfig struct {
	Level      string `mapstructure:"level" toml:"level" validate:"oneof=debug info warn error"`
	Format     string `mapstructure:"format" toml:"format" validate:"oneof=text json logfmt"`
	File       string `mapstructure:"file" toml:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb" toml:"max_size_mb" validate:"min=1"`
	MaxBackups int    `mapstructure:"max_backups" toml:"max_backups" validate:"min=0"`
	MaxAgeDays int    `mapstructure:"max_age_days" toml:"max_age_days" validate:"min=0"`
}

type BenchConfig struct {
	Count   int `mapstructure:"count" toml:"count" validate:"min=1"`
	Workers int `mapstructure:"workers" toml:"workers" validate:"min=1,max=256"`
}

type StorageConfig struct {
	// DBPath overrides the history database location. Empty means the
	// XDG data directory.
	DBPath string `mapstructure:"db_path" toml:"db_path"`
}

type LiveConfig struct {
	ScanSeconds int `mapstructure:"scan_seconds" toml:"scan_seconds" validate:"min=1,max=120"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultDegree:  3,
		GuardCeiling:   15,
		ScrambleLength: 25,
		Log: LogConfig{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  1,
			MaxBackups: 2,
			MaxAgeDays: 30,
		},
		Bench: BenchConfig{
			Count:   100,
			Workers: 4,
		},
		Live: LiveConfig{
			ScanSeconds: 5,
		},
	}
}

// LoadOptions selects where Load looks for the config file.
type LoadOptions struct {
	// File is an explicit config file. It must exist.
	File string
	// Dir overrides the config directory.
	Dir string
}

// Dir returns $XDG_CONFIG_HOME/nxcube, defaulting to ~/.config/nxcube.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, AppName), nil
}

// DefaultPath returns the config file path inside dir, or inside Dir when
// dir is empty.
func DefaultPath(dir string) (string, error) {
	if dir == "" {
		var err error
		if dir, err = Dir(); err != nil {
			return "", err
		}
	}
	return filepath.Join(dir, ConfigFileName+"."+ConfigFileExt), nil
}

// Load reads and validates the configuration. It returns the file it used,
// or "" when only defaults and the environment applied.
func Load(opts LoadOptions) (*Config, string, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetConfigType(ConfigFileExt)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	resolved := ""
	if opts.File != "" {
		if !fileExists(opts.File) {
			return nil, "", fmt.Errorf("config file not found: %s", opts.File)
		}
		resolved = opts.File
	} else {
		path, err := DefaultPath(opts.Dir)
		if err != nil {
			return nil, "", err
		}
		if fileExists(path) {
			resolved = path
		}
	}

	if resolved != "" {
		v.SetConfigFile(resolved)
		if err := v.ReadInConfig(); err != nil {
			return nil, "", fmt.Errorf("failed to read %s: %w", resolved, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, "", fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, resolved, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("default_degree", d.DefaultDegree)
	v.SetDefault("guard_ceiling", d.GuardCeiling)
	v.SetDefault("scramble_length", d.ScrambleLength)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.max_size_mb", d.Log.MaxSizeMB)
	v.SetDefault("log.max_backups", d.Log.MaxBackups)
	v.SetDefault("log.max_age_days", d.Log.MaxAgeDays)
	v.SetDefault("bench.count", d.Bench.Count)
	v.SetDefault("bench.workers", d.Bench.Workers)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("live.scan_seconds", d.Live.ScanSeconds)
}

var validate = validator.New()

// Validate checks every field constraint and reports all failures at once.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %v fails %s=%s", fe.Namespace(), fe.Value(), fe.Tag(), fe.Param()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
}

// Marshal renders c as TOML.
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Write stores c at path, creating parent directories. An existing file is
// only replaced when overwrite is set.
func Write(path string, c *Config, overwrite bool) error {
	if !overwrite && fileExists(path) {
		return fmt.Errorf("config file already exists: %s", path)
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
