// Package config loads and saves the backup settings.
//
// Settings live in ~/.config/gesturebackup/config.json. Any key can be
// overridden with a GESTUREBACKUP_<KEY> environment variable or a bound
// command-line flag. Only the two user-facing settings are ever written back.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"gesturebackup/internal/backup"
	"gesturebackup/internal/logging"
	"gesturebackup/internal/retry"
)

const (
	appName  = "gesturebackup"
	fileName = "config.json"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "GESTUREBACKUP"
)

// Keys understood by Load.
const (
	KeySourceDir        = "source_dir"
	KeyFileExtension    = "file_extension"
	KeyRetryInterval    = "retry_interval"
	KeyRetryMaxAttempts = "retry_max_attempts"
	KeyNotifyCommand    = "notify_command"
	KeyScreenWidth      = "width"
	KeyScreenHeight     = "height"
	KeyInput            = "input"
)

// ErrNoSource is returned by Load when no source directory is configured.
var ErrNoSource = errors.New("no source directory configured")

// AppConfig is the persisted part of the configuration.
type AppConfig struct {
	SourceDir     string `json:"source_dir" mapstructure:"source_dir"`
	FileExtension string `json:"file_extension" mapstructure:"file_extension"`
}

// Filter returns the extension filter the backup engine expects.
func (c AppConfig) Filter() string {
	return backup.NormalizeFilter(c.FileExtension)
}

// Config is everything a command needs at runtime.
type Config struct {
	AppConfig `mapstructure:",squash"`

	RetryInterval    time.Duration `mapstructure:"retry_interval"`
	RetryMaxAttempts int           `mapstructure:"retry_max_attempts"`
	NotifyCommand    string        `mapstructure:"notify_command"`
	ScreenWidth      int           `mapstructure:"width"`
	ScreenHeight     int           `mapstructure:"height"`
	Input            string        `mapstructure:"input"`
}

// Policy returns the volume retry policy.
func (c Config) Policy() retry.Policy {
	return retry.Policy{Interval: c.RetryInterval, MaxAttempts: c.RetryMaxAttempts}
}

// Dir returns ~/.config/gesturebackup for the invoking user.
func Dir() (string, error) {
	home, err := logging.UserHome()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName), nil
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// NewViper returns a viper instance with defaults and environment overrides
// set up, ready for flag binding before Load.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	v.SetDefault(KeySourceDir, "")
	v.SetDefault(KeyFileExtension, "")
	v.SetDefault(KeyRetryInterval, retry.DefaultInterval)
	v.SetDefault(KeyRetryMaxAttempts, 0)
	v.SetDefault(KeyNotifyCommand, "")
	v.SetDefault(KeyScreenWidth, 0)
	v.SetDefault(KeyScreenHeight, 0)
	v.SetDefault(KeyInput, "-")
	return v
}

// Load reads path into v and decodes the result. A missing file is not an
// error. When no source directory is set the decoded config is still
// returned together with ErrNoSource.
func Load(v *viper.Viper, path string) (*Config, error) {
	if v == nil {
		v = NewViper()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Policy().Validate(); err != nil {
		return nil, fmt.Errorf("invalid retry settings: %w", err)
	}
	if strings.TrimSpace(cfg.SourceDir) == "" {
		return &cfg, ErrNoSource
	}
	return &cfg, nil
}

// Save writes cfg to path atomically, creating the directory if needed.
func Save(path string, cfg AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	jsonData, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0o644); err != nil {
		return fmt.Errorf("failed to write temp config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename config file: %w", err)
	}
	return nil
}
