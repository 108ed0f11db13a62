// Package onboarding implements the identity-verification onboarding flow
// independently of any user interface.
//
// The flow walks a newly registered user through a fixed, linear sequence
// of steps:
//
//	Welcome → Personal → Address → Document → Review → Complete
//
// # Components
//
//   - [Step]: the ordered step enumeration and its transition table
//   - [Session]: the flat record of every field entered across all steps
//   - [Missing] / [StepComplete]: presence-only validators gating forward moves
//   - [Flow]: the state machine owning the current step and the session
//   - [NewSummary]: a read-only projection of the session for the review step
//
// # Navigation Rules
//
// Forward moves from Welcome are unconditional. From Personal, Address and
// Document they require every required field of the current step to be
// present. Backward moves are always allowed and never clear fields.
// Review is left forward only via [Flow.Submit], and Complete is left only
// via [Flow.Finish], which signals the host exactly once.
//
// A blocked move is not an error: [Flow.Forward] reports false and leaves
// the state untouched. UIs use [Flow.CanForward] and [Flow.Blockers] to
// disable their continue control ahead of time.
package onboarding
