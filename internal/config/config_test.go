package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Fileop.DefaultFile != "The_file.txt" {
		t.Errorf("expected DefaultFile=The_file.txt, got %s", cfg.Fileop.DefaultFile)
	}
	if cfg.Grid.Delimiter != ";" {
		t.Errorf("expected Delimiter=;, got %s", cfg.Grid.Delimiter)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected Level=info, got %s", cfg.Logging.Level)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("GOPRACTICE_FILE", "")
	t.Setenv("GOPRACTICE_DELIMITER", "")
	t.Setenv("GOPRACTICE_LOG_LEVEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Grid.Delimiter = ","
	cfg.Words.TopN = 10

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Grid.Delimiter != "," {
		t.Errorf("expected Delimiter=,, got %s", loaded.Grid.Delimiter)
	}
	if loaded.Words.TopN != 10 {
		t.Errorf("expected TopN=10, got %d", loaded.Words.TopN)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("GOPRACTICE_FILE", "")
	t.Setenv("GOPRACTICE_DELIMITER", "")
	t.Setenv("GOPRACTICE_LOG_LEVEL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Fileop.DefaultFile != "The_file.txt" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GOPRACTICE_FILE", "other.txt")
	t.Setenv("GOPRACTICE_DELIMITER", ",")
	t.Setenv("GOPRACTICE_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Fileop.DefaultFile != "other.txt" {
		t.Errorf("expected DefaultFile=other.txt, got %s", cfg.Fileop.DefaultFile)
	}
	if cfg.Grid.Delimiter != "," {
		t.Errorf("expected Delimiter=,, got %s", cfg.Grid.Delimiter)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected Level=debug, got %s", cfg.Logging.Level)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Grid.Delimiter = ";;"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for multi-character delimiter")
	}

	cfg = DefaultConfig()
	cfg.Logging.Level = "loud"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for unknown log level")
	}

	cfg = DefaultConfig()
	cfg.Words.TopN = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative top_n")
	}
}

func TestDelimiterRune(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Delimiter() != ';' {
		t.Errorf("expected ';', got %q", cfg.Delimiter())
	}
}
