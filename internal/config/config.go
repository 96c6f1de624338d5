// Package config loads taskboard settings from YAML files and command-line overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/pablasso/taskboard/internal/logging"
	"github.com/pablasso/taskboard/internal/storage"
	"github.com/pablasso/taskboard/internal/task"
)

const (
	// AppName is the application directory name.
	AppName = "taskboard"

	// FileName is the config file name inside the config directory.
	FileName = "config.yaml"
)

// Config is the full set of settings.
type Config struct {
	Storage StorageConfig `mapstructure:"storage" yaml:"storage"`
	Log     LogConfig     `mapstructure:"log" yaml:"log"`
	Status  StatusConfig  `mapstructure:"status" yaml:"status"`
}

// StorageConfig selects where the task list is kept.
type StorageConfig struct {
	Backend    string `mapstructure:"backend" yaml:"backend"`
	Dir        string `mapstructure:"dir" yaml:"dir"`
	Key        string `mapstructure:"key" yaml:"key"`
	SQLitePath string `mapstructure:"sqlite_path" yaml:"sqlite_path"`
	RedisURL   string `mapstructure:"redis_url" yaml:"redis_url"`
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `mapstructure:"level" yaml:"level"`
	File  string `mapstructure:"file" yaml:"file"`
}

// StatusConfig controls status transitions.
type StatusConfig struct {
	CompletedPolicy string `mapstructure:"completed_policy" yaml:"completed_policy"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:  string(storage.BackendFile),
			Dir:      DefaultDataDir(),
			Key:      storage.DefaultKey,
			RedisURL: "redis://localhost:6379/0",
		},
		Log: LogConfig{
			Level: "info",
		},
		Status: StatusConfig{
			CompletedPolicy: string(task.PolicyStop),
		},
	}
}

// DefaultDir returns the config directory: $XDG_CONFIG_HOME/taskboard or ~/.config/taskboard.
func DefaultDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// DefaultDataDir returns the data directory: $XDG_DATA_HOME/taskboard or ~/.local/share/taskboard.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(home, ".local", "share", AppName)
}

// DefaultPath returns the path of the default config file.
func DefaultPath() string {
	return filepath.Join(DefaultDir(), FileName)
}

// Load merges the default config file and then explicitPath (if set) over the defaults.
// A missing default file is fine; a missing explicit file is an error.
func Load(explicitPath string) (*Config, error) {
	cfg := Default()

	if err := loadFile(DefaultPath(), cfg); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load %s: %w", DefaultPath(), err)
	}

	if explicitPath != "" {
		if err := loadFile(explicitPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", explicitPath, err)
		}
	}

	cfg.Storage.Dir = expandHome(cfg.Storage.Dir)
	cfg.Storage.SQLitePath = expandHome(cfg.Storage.SQLitePath)
	cfg.Log.File = expandHome(cfg.Log.File)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		return err
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// Validate checks enumerated values.
func (c *Config) Validate() error {
	if _, err := storage.ParseBackend(c.Storage.Backend); err != nil {
		return err
	}
	if _, err := task.ParsePolicy(c.Status.CompletedPolicy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// StorageOptions converts the storage section for storage.Open.
func (c *Config) StorageOptions() storage.Options {
	backend, _ := storage.ParseBackend(c.Storage.Backend)
	return storage.Options{
		Backend:    backend,
		Dir:        c.Storage.Dir,
		Key:        c.Storage.Key,
		SQLitePath: c.Storage.SQLitePath,
		RedisURL:   c.Storage.RedisURL,
	}
}

// Policy returns the parsed completed policy.
func (c *Config) Policy() task.Policy {
	p, _ := task.ParsePolicy(c.Status.CompletedPolicy)
	return p
}

// LogFile returns the log file path, defaulting to <data dir>/taskboard.log.
// The memory backend has no default log file, so logs are discarded unless log.file is set.
func (c *Config) LogFile() string {
	if c.Log.File != "" {
		return c.Log.File
	}
	if c.Storage.Dir == "" || c.StorageOptions().Backend == storage.BackendMemory {
		return ""
	}
	return filepath.Join(c.Storage.Dir, AppName+".log")
}

// Write saves cfg as YAML to path, creating parent directories.
// Existing files are not overwritten.
func Write(path string, cfg *Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists: %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
