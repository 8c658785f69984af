package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withTempConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return filepath.Join(dir, "monthwise")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	withTempConfigDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.API.BaseURL == "" {
		t.Fatal("default base URL is empty")
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q", cfg.Appearance.Theme)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	withTempConfigDir(t)

	cfg := DefaultConfig()
	cfg.API.BaseURL = "https://budget.example.com/api"
	cfg.API.Token = "tok-1"
	cfg.Wizard.LockAfterSave = true

	if err := Save(cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if !Exists() {
		t.Fatal("Exists = false after Save")
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.API.BaseURL != cfg.API.BaseURL || got.API.Token != "tok-1" {
		t.Fatalf("roundtrip mismatch: %+v", got.API)
	}
	if !got.Wizard.LockAfterSave {
		t.Fatal("lock_after_save not persisted")
	}
}

func TestTokenPrefersEnv(t *testing.T) {
	cfg := DefaultConfig()
	cfg.API.Token = "from-config"

	t.Setenv("MONTHWISE_TOKEN", "from-env")
	if got := Token(cfg); got != "from-env" {
		t.Fatalf("Token = %q, want env value", got)
	}

	t.Setenv("MONTHWISE_TOKEN", "")
	os.Unsetenv("MONTHWISE_TOKEN")
	if got := Token(cfg); got != "from-config" {
		t.Fatalf("Token = %q, want config value", got)
	}
}
