// Package config holds gopractice configuration: defaults, YAML load/save,
// and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all gopractice configuration.
type Config struct {
	// Fileop settings
	Fileop FileopConfig `yaml:"fileop"`

	// Grid settings
	Grid GridConfig `yaml:"grid"`

	// Words settings
	Words WordsConfig `yaml:"words"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// FileopConfig configures the file exercises.
type FileopConfig struct {
	// Default file used when a command gets no path argument.
	DefaultFile string `yaml:"default_file"`
}

// GridConfig configures the CSV grid exercise.
type GridConfig struct {
	Delimiter string `yaml:"delimiter"` // single character, ";" by default
}

// WordsConfig configures the word-frequency exercise.
type WordsConfig struct {
	TopN int `yaml:"top_n"` // 0 = list everything
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Fileop: FileopConfig{
			DefaultFile: "The_file.txt",
		},
		Grid: GridConfig{
			Delimiter: ";",
		},
		Words: WordsConfig{
			TopN: 0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, applies environment overrides, and
// validates the result. A missing file yields the defaults (still subject to
// overrides and validation).
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// fall through to overrides
	case err != nil:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// applyEnvOverrides lets the environment win over the file.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GOPRACTICE_FILE"); v != "" {
		c.Fileop.DefaultFile = v
	}
	if v := os.Getenv("GOPRACTICE_DELIMITER"); v != "" {
		c.Grid.Delimiter = v
	}
	if v := os.Getenv("GOPRACTICE_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate rejects configurations the commands cannot act on.
func (c *Config) Validate() error {
	if c.Fileop.DefaultFile == "" {
		return fmt.Errorf("fileop.default_file must not be empty")
	}
	if len([]rune(c.Grid.Delimiter)) != 1 {
		return fmt.Errorf("grid.delimiter must be a single character, got %q", c.Grid.Delimiter)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Words.TopN < 0 {
		return fmt.Errorf("words.top_n must not be negative")
	}
	return nil
}

// Delimiter returns the grid delimiter as a rune.
func (c *Config) Delimiter() rune {
	return []rune(c.Grid.Delimiter)[0]
}
