package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.SettleIntervalMs != DefaultSettleInterval {
		t.Errorf("SettleIntervalMs = %d, want %d", cfg.SettleIntervalMs, DefaultSettleInterval)
	}
	if cfg.SettleMaxChecks != DefaultSettleMaxChecks {
		t.Errorf("SettleMaxChecks = %d, want %d", cfg.SettleMaxChecks, DefaultSettleMaxChecks)
	}
	if cfg.TapRetries != DefaultTapRetries {
		t.Errorf("TapRetries = %d, want %d", cfg.TapRetries, DefaultTapRetries)
	}
	if cfg.FindTimeout() != 17*time.Second {
		t.Errorf("FindTimeout = %v, want 17s", cfg.FindTimeout())
	}
	if cfg.VisibilityInterval() != time.Second {
		t.Errorf("VisibilityInterval = %v, want 1s", cfg.VisibilityInterval())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uisync.yaml")
	content := `settleIntervalMs: 50
tapRetries: 5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SettleIntervalMs != 50 {
		t.Errorf("SettleIntervalMs = %d, want 50", cfg.SettleIntervalMs)
	}
	if cfg.TapRetries != 5 {
		t.Errorf("TapRetries = %d, want 5", cfg.TapRetries)
	}
	// Unset fields fall back to defaults.
	if cfg.SettleMaxChecks != DefaultSettleMaxChecks {
		t.Errorf("SettleMaxChecks = %d, want default %d", cfg.SettleMaxChecks, DefaultSettleMaxChecks)
	}
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "uisync.yaml")
	if err := os.WriteFile(path, []byte("settleIntervalMs: [not an int]"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/uisync.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadFromDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "uisync.yml"), []byte("settleMaxChecks: 3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromDir(dir)
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.SettleMaxChecks != 3 {
		t.Errorf("SettleMaxChecks = %d, want 3", cfg.SettleMaxChecks)
	}
}

func TestLoadFromDirMissing(t *testing.T) {
	cfg, err := LoadFromDir(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFromDir failed: %v", err)
	}
	if cfg.SettleIntervalMs != DefaultSettleInterval {
		t.Error("expected defaults when no config file exists")
	}
}
