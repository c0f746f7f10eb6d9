package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/Iron-Ham/compoundword/internal/logging"
	"github.com/Iron-Ham/compoundword/internal/resolver"
	"github.com/Iron-Ham/compoundword/internal/wordlist"
)

// EnvPrefix is the prefix for environment variable overrides, e.g.
// COMPOUNDWORD_RESOLVER_WORKERS.
const EnvPrefix = "COMPOUNDWORD"

// Config represents the complete compoundword configuration
type Config struct {
	Resolver ResolverConfig `mapstructure:"resolver" yaml:"resolver"`
	Input    InputConfig    `mapstructure:"input" yaml:"input"`
	Report   ReportConfig   `mapstructure:"report" yaml:"report"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ResolverConfig controls compound word resolution
type ResolverConfig struct {
	// Workers is the number of words resolved in parallel (0 = GOMAXPROCS)
	Workers int `mapstructure:"workers" yaml:"workers"`
	// CollectMode selects which sub-words are reported for the longest word.
	// Options: "visited", "path", "all"
	CollectMode string `mapstructure:"collect_mode" yaml:"collect_mode"`
}

// InputConfig controls how the word list is read
type InputConfig struct {
	// MaxLineBytes is the longest accepted input line in bytes
	MaxLineBytes int `mapstructure:"max_line_bytes" yaml:"max_line_bytes"`
}

// ReportConfig controls the console report
type ReportConfig struct {
	// Format is "text" or "json"
	Format string `mapstructure:"format" yaml:"format"`
	// Color is "auto", "always" or "never"; auto styles output only on a terminal
	Color string `mapstructure:"color" yaml:"color"`
	// MaxWidth wraps the sub-word list at this many columns (0 = no wrapping)
	MaxWidth int `mapstructure:"max_width" yaml:"max_width"`
}

// LoggingConfig controls debug logging behavior
type LoggingConfig struct {
	// Enabled controls whether a run writes a log at all (default: true)
	Enabled bool `mapstructure:"enabled" yaml:"enabled"`
	// Level is the minimum log level: "debug", "info", "warn", "error" (default: "warn")
	Level string `mapstructure:"level" yaml:"level"`
	// Dir is the directory holding compoundword.log; empty logs to stderr.
	// A leading "~/" is expanded to the home directory.
	Dir string `mapstructure:"dir" yaml:"dir"`
	// MaxSizeMB is the log size that triggers rotation (default: 10)
	MaxSizeMB int `mapstructure:"max_size_mb" yaml:"max_size_mb"`
	// MaxBackups is the number of rotated logs to keep (default: 3)
	MaxBackups int `mapstructure:"max_backups" yaml:"max_backups"`
	// Compress gzips rotated logs (default: false)
	Compress bool `mapstructure:"compress" yaml:"compress"`
}

// ResolveDir returns Dir with a leading "~" expanded.
func (l *LoggingConfig) ResolveDir() string {
	path := l.Dir
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	return path
}

// EffectiveWorkers returns Workers, or GOMAXPROCS when Workers is 0.
func (r *ResolverConfig) EffectiveWorkers() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// Default returns a Config with sensible default values
func Default() *Config {
	rotation := logging.DefaultRotationConfig()
	return &Config{
		Resolver: ResolverConfig{
			Workers:     0,
			CollectMode: string(resolver.DefaultCollectMode),
		},
		Input: InputConfig{
			MaxLineBytes: wordlist.DefaultMaxLineBytes,
		},
		Report: ReportConfig{
			Format:   "text",
			Color:    "auto",
			MaxWidth: 80,
		},
		Logging: LoggingConfig{
			Enabled:    true,
			Level:      "warn",
			Dir:        "",
			MaxSizeMB:  rotation.MaxSizeMB,
			MaxBackups: rotation.MaxBackups,
			Compress:   rotation.Compress,
		},
	}
}

// SetDefaults registers default values with viper
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("resolver.workers", defaults.Resolver.Workers)
	viper.SetDefault("resolver.collect_mode", defaults.Resolver.CollectMode)

	viper.SetDefault("input.max_line_bytes", defaults.Input.MaxLineBytes)

	viper.SetDefault("report.format", defaults.Report.Format)
	viper.SetDefault("report.color", defaults.Report.Color)
	viper.SetDefault("report.max_width", defaults.Report.MaxWidth)

	viper.SetDefault("logging.enabled", defaults.Logging.Enabled)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
	viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

// Load reads the configuration from viper into a Config struct and validates it
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "compoundword")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".compoundword"
	}
	return filepath.Join(home, ".config", "compoundword")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
