package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mlehnert/scopelog/core"
)

// Config holds the provider options for one logger: category, gate
// level, timestamp mode, and the sinks to assemble.
type Config struct {
	// Category is the logical source name; defaults to the
	// executable name.
	Category string `yaml:"category"`
	// Level is the minimum level name (trace..critical, none).
	Level string `yaml:"level"`
	// UTC selects coordinated universal time for timestamps.
	UTC bool `yaml:"utc"`
	// Console configures the console sink. Nil disables it unless no
	// sink is configured at all, in which case a synchronous console
	// sink is the fallback.
	Console *ConsoleSink `yaml:"console"`
	// File configures the file sink. Nil disables it.
	File *FileSink `yaml:"file"`
}

// ConsoleSink holds console sink settings.
type ConsoleSink struct {
	// Stderr writes to standard error instead of standard output.
	Stderr bool `yaml:"stderr"`
	// Async enables the background writer.
	Async bool `yaml:"async"`
	// BufferSize is the async queue length.
	BufferSize int `yaml:"buffer_size"`
}

// FileSink holds file sink settings.
type FileSink struct {
	// Path is the log file location.
	Path string `yaml:"path"`
	// Async enables the background writer.
	Async bool `yaml:"async"`
	// BufferSize is the async queue length.
	BufferSize int `yaml:"buffer_size"`
	// MaxSize is the rotation threshold in bytes.
	MaxSize int64 `yaml:"max_size"`
	// MaxBackups is how many rotated files to keep.
	MaxBackups int `yaml:"max_backups"`
	// RotateInterval rotates on a fixed cadence.
	RotateInterval time.Duration `yaml:"rotate_interval"`
}

const (
	// DefaultFilename is the default settings file name.
	DefaultFilename = "scopelog.yaml"

	// defaultFilePermissions restricts the settings file to its owner.
	defaultFilePermissions = 0o600
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errFilePathRequired is returned when a file sink has no path.
	errFilePathRequired = errors.New("file sink requires a path")
)

// knownLevels guards against typos in the level field; ParseLevel
// alone would silently map them to Information.
var knownLevels = map[string]struct{}{
	"": {}, "trace": {}, "debug": {}, "info": {}, "information": {},
	"warn": {}, "warning": {}, "error": {}, "crit": {}, "critical": {}, "none": {},
}

// Load reads configuration from the provided path and validates it.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(contents, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes the configuration to the provided path.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, defaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate checks the configuration and fills in defaults.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if cfg.Category == "" {
		cfg.Category = filepath.Base(os.Args[0])
	}

	if _, ok := knownLevels[strings.ToLower(strings.TrimSpace(cfg.Level))]; !ok {
		return fmt.Errorf("unknown level %q", cfg.Level)
	}

	if cfg.File != nil && cfg.File.Path == "" {
		return errFilePathRequired
	}

	return nil
}

// MinLevel returns the configured gate level.
func (c *Config) MinLevel() core.Level {
	if c.Level == "" {
		return core.InformationLevel
	}
	return core.ParseLevel(c.Level)
}
