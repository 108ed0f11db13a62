package config

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// Valid enum values for configuration fields.
var (
	ValidThemeNames = []string{"none", "default", "dracula", "nord", "gruvbox", "catppuccin"}
	ValidThemeModes = []string{"auto", "light", "dark"}
)

// dateProbe is formatted and parsed back to check a date layout keeps the
// full calendar date.
var dateProbe = time.Date(1987, time.November, 23, 0, 0, 0, 0, time.UTC)

// Validate checks enum fields and the date layout.
func (c Config) Validate() error {
	if err := validateEnum(c.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(c.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}
	return ValidateDateLayout(c.Wizard.DateLayout)
}

// ValidateDateLayout checks that layout round-trips a calendar date.
// Empty is allowed (means the default layout).
func ValidateDateLayout(layout string) error {
	if layout == "" {
		return nil
	}
	formatted := dateProbe.Format(layout)
	parsed, err := time.Parse(layout, formatted)
	if err != nil || !parsed.Equal(dateProbe) {
		return fmt.Errorf("invalid wizard.date_layout %q: must contain year, month and day (e.g. %q)",
			layout, DefaultDateLayout)
	}
	if strings.ContainsFunc(formatted, func(r rune) bool { return !isNumericDateRune(r) }) {
		return fmt.Errorf("invalid wizard.date_layout %q: must be numeric (e.g. %q)",
			layout, DefaultDateLayout)
	}
	return nil
}

func isNumericDateRune(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune("-/.", r)
}

// isValidThemeName reports whether name is a known theme family.
func isValidThemeName(name string) bool {
	return slices.Contains(ValidThemeNames, name)
}

// validateEnum checks that value (if non-empty) is one of the allowed values.
// Returns a formatted error mentioning the field name and allowed options.
func validateEnum(value, field string, allowed []string) error {
	if value == "" {
		return nil
	}
	if !slices.Contains(allowed, value) {
		return fmt.Errorf("invalid %s %q: must be %s", field, value, formatOptions(allowed))
	}
	return nil
}

// formatOptions formats a list of allowed values for error messages.
// E.g., ["a", "b", "c"] -> `"a", "b", or "c"`
func formatOptions(opts []string) string {
	quoted := make([]string, len(opts))
	for i, o := range opts {
		quoted[i] = fmt.Sprintf("%q", o)
	}
	if len(quoted) <= 2 {
		return strings.Join(quoted, " or ")
	}
	return strings.Join(quoted[:len(quoted)-1], ", ") + ", or " + quoted[len(quoted)-1]
}
