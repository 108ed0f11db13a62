package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Wizard.DateLayout != DefaultDateLayout {
		t.Errorf("Wizard.DateLayout = %q, want %q", cfg.Wizard.DateLayout, DefaultDateLayout)
	}
	if cfg.Wizard.ShowCompleteProgress {
		t.Error("ShowCompleteProgress should default to false")
	}
	if !cfg.User.IsZero() {
		t.Errorf("User = %+v, want zero", cfg.User)
	}
}

func TestDefaultConfigIsValidTOML(t *testing.T) {
	t.Parallel()

	var raw Config
	if _, err := toml.Decode(DefaultConfig(), &raw); err != nil {
		t.Fatalf("default config is not valid TOML: %v", err)
	}
	if err := raw.Validate(); err != nil {
		t.Errorf("default config does not validate: %v", err)
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		toml    string
		want    Config
		wantErr string
	}{
		{
			name: "empty file",
			toml: ``,
			want: Default(),
		},
		{
			name: "user and wizard",
			toml: `[user]
name = "Ana"
email = "ana@example.com"

[wizard]
show_complete_progress = true
date_layout = "02.01.2006"`,
			want: Config{
				User:   UserConfig{Name: "Ana", Email: "ana@example.com"},
				Wizard: WizardConfig{ShowCompleteProgress: true, DateLayout: "02.01.2006"},
			},
		},
		{
			name: "theme preset with override",
			toml: `[theme]
name = "nord"
mode = "dark"
accent = "#ff79c6"`,
			want: Config{
				Wizard: WizardConfig{DateLayout: DefaultDateLayout},
				Theme:  ThemeConfig{Name: "nord", Mode: "dark", Accent: "#ff79c6"},
			},
		},
		{
			name:    "unknown theme",
			toml:    `[theme]` + "\n" + `name = "solarized"`,
			wantErr: `invalid theme.name "solarized"`,
		},
		{
			name:    "unknown mode",
			toml:    `[theme]` + "\n" + `mode = "dim"`,
			wantErr: `invalid theme.mode "dim"`,
		},
		{
			name:    "date layout without day",
			toml:    `[wizard]` + "\n" + `date_layout = "2006-01"`,
			wantErr: "invalid wizard.date_layout",
		},
		{
			name:    "malformed toml",
			toml:    `[wizard`,
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Parse([]byte(tt.toml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("Parse() error = %v, want containing %q", err, tt.wantErr)
				}
				if got != Default() {
					t.Errorf("Parse() on error = %+v, want Default()", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Parse() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	// Cannot use t.Parallel(): t.Setenv mutates process env
	t.Setenv("ONBOARD_THEME", "")
	t.Setenv("ONBOARD_THEME_MODE", "")
	t.Setenv("ONBOARD_NAME", "")
	t.Setenv("ONBOARD_EMAIL", "")

	t.Run("missing file returns defaults", func(t *testing.T) {
		cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if cfg != Default() {
			t.Errorf("LoadFile() = %+v, want Default()", cfg)
		}
	})

	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[user]\nname = \"Ana\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile() error = %v", err)
		}
		if cfg.User.Name != "Ana" {
			t.Errorf("User.Name = %q, want Ana", cfg.User.Name)
		}
	})

	t.Run("invalid file returns defaults and error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("[theme]\nmode = \"sepia\"\n"), 0644); err != nil {
			t.Fatal(err)
		}
		cfg, err := LoadFile(path)
		if err == nil {
			t.Fatal("LoadFile() error = nil, want validation error")
		}
		if cfg.Theme.Mode != "" {
			t.Errorf("Theme.Mode = %q, want default", cfg.Theme.Mode)
		}
	})
}

func TestApplyEnvOverrides(t *testing.T) {
	// Cannot use t.Parallel(): t.Setenv mutates process env
	t.Run("ONBOARD_THEME overrides theme name", func(t *testing.T) {
		t.Setenv("ONBOARD_THEME", "nord")
		cfg := Config{Theme: ThemeConfig{Name: "dracula"}}
		applyEnvOverrides(&cfg)
		if cfg.Theme.Name != "nord" {
			t.Errorf("Theme.Name = %q, want %q", cfg.Theme.Name, "nord")
		}
	})

	t.Run("ONBOARD_THEME_MODE overrides theme mode", func(t *testing.T) {
		t.Setenv("ONBOARD_THEME_MODE", "dark")
		cfg := Default()
		applyEnvOverrides(&cfg)
		if cfg.Theme.Mode != "dark" {
			t.Errorf("Theme.Mode = %q, want %q", cfg.Theme.Mode, "dark")
		}
	})

	t.Run("user env fills only empty fields", func(t *testing.T) {
		t.Setenv("ONBOARD_NAME", "From Env")
		t.Setenv("ONBOARD_EMAIL", "env@example.com")
		cfg := Config{User: UserConfig{Name: "From File"}}
		applyEnvOverrides(&cfg)
		if cfg.User.Name != "From File" {
			t.Errorf("User.Name = %q, want file value", cfg.User.Name)
		}
		if cfg.User.Email != "env@example.com" {
			t.Errorf("User.Email = %q, want env value", cfg.User.Email)
		}
	})

	t.Run("empty env vars leave config unchanged", func(t *testing.T) {
		t.Setenv("ONBOARD_THEME", "")
		t.Setenv("ONBOARD_THEME_MODE", "")
		cfg := Config{Theme: ThemeConfig{Name: "dracula", Mode: "light"}}
		applyEnvOverrides(&cfg)
		if cfg.Theme.Name != "dracula" || cfg.Theme.Mode != "light" {
			t.Errorf("Theme = %+v, want unchanged", cfg.Theme)
		}
	})
}

func TestInitAt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := initAt(path, false); err != nil {
		t.Fatalf("initAt() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != DefaultConfig() {
		t.Error("written config differs from DefaultConfig()")
	}

	if err := initAt(path, false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("second initAt() error = %v, want already exists", err)
	}
	if err := initAt(path, true); err != nil {
		t.Errorf("initAt(force) error = %v", err)
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		cfg := &Config{User: UserConfig{Name: "Ana"}}
		ctx := WithConfig(context.Background(), cfg)
		if got := FromContext(ctx); got != cfg {
			t.Error("FromContext did not return the stored config")
		}
	})

	t.Run("nil when not set", func(t *testing.T) {
		t.Parallel()
		if got := FromContext(context.Background()); got != nil {
			t.Errorf("FromContext on empty context = %v, want nil", got)
		}
	})
}
