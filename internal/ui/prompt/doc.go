// Package prompt provides simple interactive prompts.
//
// These are single-question prompts the CLI uses outside the onboarding
// wizard, such as asking for a missing name or email before the wizard
// starts. All prompts render to stderr.
//
// Available prompts:
//   - [Confirm]: Yes/No confirmation prompt
//   - [TextInput]: Single-line text input with optional validation
package prompt
