package styles

import (
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/onboard/internal/config"
)

func dark() bool  { return true }
func light() bool { return false }

func TestResolve_Presets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.ThemeConfig
		hasDark func() bool
		want    Theme
	}{
		{"empty config", config.ThemeConfig{}, dark, DefaultTheme},
		{"dracula", config.ThemeConfig{Name: "dracula"}, dark, DraculaTheme},
		{"nord auto dark", config.ThemeConfig{Name: "nord"}, dark, NordTheme},
		{"nord auto light", config.ThemeConfig{Name: "nord"}, light, NordLightTheme},
		{"gruvbox forced light", config.ThemeConfig{Name: "gruvbox", Mode: "light"}, dark, GruvboxLightTheme},
		{"catppuccin forced dark", config.ThemeConfig{Name: "catppuccin", Mode: "dark"}, light, CatppuccinMochaTheme},
		{"dark-only family in light mode", config.ThemeConfig{Name: "dracula", Mode: "light"}, light, DraculaTheme},
		{"unknown name", config.ThemeConfig{Name: "solarized"}, dark, DefaultTheme},
		{"nil detector", config.ThemeConfig{Name: "nord"}, nil, NordTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Resolve(tt.cfg, tt.hasDark); got != tt.want {
				t.Errorf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestResolve_DetectorOnlyInAutoMode(t *testing.T) {
	t.Parallel()

	called := false
	detect := func() bool {
		called = true
		return true
	}
	Resolve(config.ThemeConfig{Name: "nord", Mode: "dark"}, detect)
	if called {
		t.Error("background detection ran with an explicit mode")
	}
}

func TestResolve_ColorOverrides(t *testing.T) {
	t.Parallel()

	got := Resolve(config.ThemeConfig{
		Name:    "dracula",
		Accent:  "#123456",
		Warning: "208",
	}, dark)

	if got.Primary != DraculaTheme.Primary {
		t.Errorf("Primary = %v, want dracula primary", got.Primary)
	}
	if got.Accent != lipgloss.Color("#123456") {
		t.Errorf("Accent = %v, want #123456", got.Accent)
	}
	if got.Warning != lipgloss.Color("208") {
		t.Errorf("Warning = %v, want 208", got.Warning)
	}
	if DraculaTheme.Accent != lipgloss.Color("#ff79c6") {
		t.Error("override mutated the preset")
	}
}

func TestApplyTheme_UpdatesGlobalStyles(t *testing.T) {
	// Mutates package state; not parallel.
	applyTheme(DraculaTheme)
	defer applyTheme(DefaultTheme)

	if Primary != DraculaTheme.Primary {
		t.Errorf("Primary = %v, want dracula primary", Primary)
	}
	if PrimaryStyle.GetForeground() != DraculaTheme.Primary {
		t.Errorf("PrimaryStyle foreground = %v, want dracula primary", PrimaryStyle.GetForeground())
	}
	if HeadingStyle.GetForeground() != DraculaTheme.Primary {
		t.Errorf("HeadingStyle foreground = %v, want dracula primary", HeadingStyle.GetForeground())
	}
}

func TestThemeFamilies_MatchConfig(t *testing.T) {
	t.Parallel()

	for _, name := range config.ValidThemeNames {
		if _, ok := themeFamilies[name]; !ok {
			t.Errorf("config theme %q has no preset family", name)
		}
	}
	if len(themeFamilies) != len(config.ValidThemeNames) {
		t.Errorf("len(themeFamilies) = %d, want %d", len(themeFamilies), len(config.ValidThemeNames))
	}
}
