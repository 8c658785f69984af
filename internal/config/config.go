// Package config loads and saves monthwise settings from a TOML file in
// the XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all monthwise configuration.
type Config struct {
	API        APIConfig        `toml:"api"`
	Wizard     WizardConfig     `toml:"wizard"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// APIConfig holds budget service connection settings.
type APIConfig struct {
	BaseURL string `toml:"base_url"`
	Token   string `toml:"token,omitempty"`
}

// WizardConfig holds wizard preferences.
type WizardConfig struct {
	LockAfterSave bool `toml:"lock_after_save"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "https://api.monthwise.app/v1",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "monthwise")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "monthwise")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Token returns the API token from env var or config, in that order.
func Token(cfg Config) string {
	if tok := os.Getenv("MONTHWISE_TOKEN"); tok != "" {
		return tok
	}
	return cfg.API.Token
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
