package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load failed: expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	os.WriteFile(path, []byte("database = \"grid.db\"\nprecision = 2\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database != "grid.db" || cfg.Precision != 2 {
		t.Errorf("Load failed: got %+v", cfg)
	}
	if cfg.Captures != "captures" {
		t.Errorf("unset keys should keep their defaults, got captures %q", cfg.Captures)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	os.WriteFile(path, []byte("precision = 12\nwatch_debounce = \"soon\"\n"), 0o644)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Precision != 4 {
		t.Errorf("Validate failed: expected precision 4, got %d", cfg.Precision)
	}
	if cfg.Debounce() != 500*time.Millisecond {
		t.Errorf("Validate failed: expected 500ms, got %v", cfg.Debounce())
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	os.WriteFile(path, []byte("database = "), 0o644)

	if _, err := Load(path); err == nil {
		t.Error("expected an error for malformed TOML")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	cfg := Config{Database: "a.db", Captures: "shots", Precision: 6, WatchDebounce: "1s"}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded != cfg {
		t.Errorf("Save/Load failed: expected %+v, got %+v", cfg, loaded)
	}
}
