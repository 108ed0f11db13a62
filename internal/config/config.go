package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/onboard/internal/storage"
)

// UserConfig holds the account handed to the wizard when no flags are given.
type UserConfig struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// IsZero reports whether neither name nor email is configured.
func (u UserConfig) IsZero() bool {
	return u.Name == "" && u.Email == ""
}

// WizardConfig holds wizard behaviour settings.
type WizardConfig struct {
	ShowCompleteProgress bool   `toml:"show_complete_progress"` // show 100% on the final step
	DateLayout           string `toml:"date_layout"`            // Go time layout for date input
}

// ThemeConfig holds UI theme/color configuration
type ThemeConfig struct {
	Name    string `toml:"name"`    // preset family: "default", "dracula", "nord", "gruvbox", "catppuccin"
	Mode    string `toml:"mode"`    // "auto", "light", "dark"
	Primary string `toml:"primary"` // main accent color (borders, titles)
	Accent  string `toml:"accent"`  // highlight color (selected items)
	Success string `toml:"success"` // success indicators (checkmarks)
	Error   string `toml:"error"`   // error messages
	Muted   string `toml:"muted"`   // disabled/inactive text
	Normal  string `toml:"normal"`  // standard text
	Info    string `toml:"info"`    // informational text
	Warning string `toml:"warning"` // blocked/missing indicators
}

// Config holds the onboard configuration
type Config struct {
	User   UserConfig   `toml:"user"`
	Wizard WizardConfig `toml:"wizard"`
	Theme  ThemeConfig  `toml:"theme"`
}

// DefaultDateLayout is the date input layout used when none is configured.
const DefaultDateLayout = "2006-01-02"

// Default returns the default configuration
func Default() Config {
	return Config{
		Wizard: WizardConfig{
			DateLayout: DefaultDateLayout,
		},
	}
}

// Path returns the path to the config file
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "onboard", "config.toml"), nil
}

// Load reads config from ~/.config/onboard/config.toml
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		cfg := Default()
		applyEnvOverrides(&cfg)
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. Environment overrides are applied to the
// result, including when the file is missing.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		cfg := Default()
		applyEnvOverrides(&cfg)
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	applyEnvOverrides(&cfg)
	return cfg, err
}

// Parse decodes and validates TOML config data. On error the returned
// config is Default().
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), err
	}

	// Use defaults for empty values
	if cfg.Wizard.DateLayout == "" {
		cfg.Wizard.DateLayout = DefaultDateLayout
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// ONBOARD_THEME and ONBOARD_THEME_MODE replace the theme settings.
// ONBOARD_NAME and ONBOARD_EMAIL only fill a user the file left empty.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ONBOARD_THEME"); v != "" {
		cfg.Theme.Name = v
	}
	if v := os.Getenv("ONBOARD_THEME_MODE"); v != "" {
		cfg.Theme.Mode = v
	}
	if cfg.User.Name == "" {
		cfg.User.Name = os.Getenv("ONBOARD_NAME")
	}
	if cfg.User.Email == "" {
		cfg.User.Email = os.Getenv("ONBOARD_EMAIL")
	}
}

const defaultConfig = `# onboard configuration

# Account shown on the review step and the dashboard.
# Flags (--name, --email) take precedence; ONBOARD_NAME / ONBOARD_EMAIL
# fill in anything left empty here.
# [user]
# name = "Jane Doe"
# email = "jane@example.com"

[wizard]
# Show the progress bar (100%) on the final "complete" step
show_complete_progress = false

# Go time layout for the date of birth input
date_layout = "2006-01-02"

# Theme settings
# [theme]
# name = "default"   # none, default, dracula, nord, gruvbox, catppuccin
# mode = "auto"      # auto, light, dark
#
# Individual color overrides (hex or ANSI 256 code):
# primary = "#89b4fa"
# accent = "#f5c2e7"
# success = "#a6e3a1"
# error = "#f38ba8"
# muted = "#6c7086"
# normal = "#cdd6f4"
# info = "#94e2d5"
# warning = "#fab387"
`

// DefaultConfig returns the commented default config file contents.
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/onboard/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, initAt(path, force)
}

func initAt(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	return storage.WriteFile(path, []byte(defaultConfig), 0o644)
}
