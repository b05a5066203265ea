// Package config handles fitfuel configuration loading and saving.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all fitfuel configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Nutrition  NutritionConfig  `toml:"nutrition"`
	Goal       GoalConfig       `toml:"goal"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// NutritionConfig holds nutrition lookup API settings.
type NutritionConfig struct {
	APIKey  string `toml:"api_key,omitempty"`
	BaseURL string `toml:"base_url,omitempty"`
}

// GoalConfig holds the daily calorie target. One target applies to every
// day's percentage computation; it is not date-scoped.
type GoalConfig struct {
	DailyKcal float64 `toml:"daily_kcal"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Goal: GoalConfig{
			DailyKcal: 2500,
		},
		Appearance: AppearanceConfig{
			Theme: "fitfuel-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "fitfuel")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "fitfuel")
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
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
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

// GetAPIKey returns the lookup API key from env var or config, in that order.
func GetAPIKey(cfg Config) string {
	if key := os.Getenv("FITFUEL_API_KEY"); key != "" {
		return key
	}
	return cfg.Nutrition.APIKey
}

// DataDir returns the ledger database directory: the configured override,
// or the XDG data directory.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "fitfuel")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "fitfuel")
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
