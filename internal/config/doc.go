// Package config handles loading and validation of onboard configuration.
//
// Configuration is read from ~/.config/onboard/config.toml with environment
// variable overrides for the theme and the default user.
//
// # Configuration Sources (highest priority first)
//
//   - ONBOARD_THEME / ONBOARD_THEME_MODE env vars: theme family and mode
//   - Config file settings
//   - ONBOARD_NAME / ONBOARD_EMAIL env vars: user fields the file left empty
//   - Default values
//
// Command-line flags on "onboard start" take precedence over all of these.
//
// # Key Settings
//
//   - [user] name, email: account shown on the review step and dashboard
//   - [wizard] show_complete_progress: show 100% progress on the final step
//   - [wizard] date_layout: Go time layout for date of birth input
//   - [theme] name, mode and color overrides
//
// A missing file is not an error. An invalid file yields Default() together
// with the error so callers can warn and continue.
package config
