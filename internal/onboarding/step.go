package onboarding

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrUnknownStep is returned by ParseStep for names outside the step set.
var ErrUnknownStep = errors.New("unknown step")

// Step is one stage of the onboarding flow.
type Step int

const (
	Welcome Step = iota
	Personal
	Address
	Document
	Review
	Complete
)

var stepNames = [...]string{
	Welcome:  "welcome",
	Personal: "personal",
	Address:  "address",
	Document: "document",
	Review:   "review",
	Complete: "complete",
}

var stepTitles = [...]string{
	Welcome:  "Welcome",
	Personal: "Personal Info",
	Address:  "Address",
	Document: "Documents",
	Review:   "Review",
	Complete: "Complete",
}

// Transition table. Review→Complete is a submit, not a forward move,
// so it is deliberately absent from nextStep.
var (
	nextStep = map[Step]Step{
		Welcome:  Personal,
		Personal: Address,
		Address:  Document,
		Document: Review,
	}
	prevStep = map[Step]Step{
		Personal: Welcome,
		Address:  Personal,
		Document: Address,
		Review:   Document,
	}
)

// Steps returns all steps in flow order.
func Steps() []Step {
	return []Step{Welcome, Personal, Address, Document, Review, Complete}
}

// StepCount returns the number of steps in the flow.
func StepCount() int {
	return len(stepNames)
}

// ParseStep returns the step with the given name (as produced by String).
func ParseStep(name string) (Step, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range stepNames {
		if n == name {
			return Step(i), nil
		}
	}
	return Welcome, fmt.Errorf("%w: %q", ErrUnknownStep, name)
}

// Valid reports whether s is one of the defined steps.
func (s Step) Valid() bool {
	return s >= Welcome && s <= Complete
}

// String returns the lowercase step name.
func (s Step) String() string {
	if !s.Valid() {
		return fmt.Sprintf("step(%d)", int(s))
	}
	return stepNames[s]
}

// Title returns the display title used for step tabs and headings.
func (s Step) Title() string {
	if !s.Valid() {
		return s.String()
	}
	return stepTitles[s]
}

// Index returns the zero-based position of s in the flow.
func (s Step) Index() int {
	return int(s)
}

// Next returns the forward neighbour of s, if a forward move exists.
func (s Step) Next() (Step, bool) {
	n, ok := nextStep[s]
	return n, ok
}

// Prev returns the backward neighbour of s, if a backward move exists.
func (s Step) Prev() (Step, bool) {
	p, ok := prevStep[s]
	return p, ok
}

// Progress returns round(100 * (index+1) / StepCount()) for s.
func (s Step) Progress() int {
	if !s.Valid() {
		return 0
	}
	return int(math.Round(100 * float64(s.Index()+1) / float64(StepCount())))
}
