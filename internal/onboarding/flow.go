package onboarding

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrFieldLocked is returned when a field is edited while its owning step
// is not the current step.
var ErrFieldLocked = errors.New("field is not editable on the current step")

// User is the account the host application hands to the flow.
type User struct {
	Name  string
	Email string
}

// TransitionKind classifies a successful step change.
type TransitionKind int

const (
	TransitionForward TransitionKind = iota
	TransitionBack
	TransitionSubmit
	TransitionFinish
)

func (k TransitionKind) String() string {
	switch k {
	case TransitionForward:
		return "forward"
	case TransitionBack:
		return "back"
	case TransitionSubmit:
		return "submit"
	case TransitionFinish:
		return "finish"
	}
	return fmt.Sprintf("transition(%d)", int(k))
}

// Transition describes a step change that has been applied.
// For TransitionFinish, From and To are both Complete.
type Transition struct {
	From Step
	To   Step
	Kind TransitionKind
}

// Option configures a Flow.
type Option func(*Flow)

// WithObserver registers fn to be called after every successful transition.
func WithObserver(fn func(Transition)) Option {
	return func(f *Flow) {
		f.observer = fn
	}
}

// WithCompleteProgress makes ShowProgress report true on the Complete step.
// By default progress is hidden on Welcome and Complete.
func WithCompleteProgress(show bool) Option {
	return func(f *Flow) {
		f.showCompleteProgress = show
	}
}

// Flow is the onboarding state machine. It exclusively owns the current
// step and the session; callers read copies and edit through the gated
// Set methods.
//
// Flow is driven from a single event loop and is not safe for concurrent
// use, except that Finish invokes the completion callback at most once even
// when called concurrently.
type Flow struct {
	user       *User
	onComplete func()

	current  Step
	session  Session
	finished bool
	once     sync.Once

	observer             func(Transition)
	showCompleteProgress bool
}

// New creates a flow positioned at Welcome with an empty session.
// user may be nil. onComplete may be nil; it is otherwise called exactly
// once, when Finish succeeds.
func New(user *User, onComplete func(), opts ...Option) *Flow {
	f := &Flow{
		onComplete: onComplete,
		current:    Welcome,
	}
	if user != nil {
		u := *user
		f.user = &u
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Current returns the current step.
func (f *Flow) Current() Step {
	return f.current
}

// Index returns the position of the current step.
func (f *Flow) Index() int {
	return f.current.Index()
}

// Count returns the total number of steps.
func (f *Flow) Count() int {
	return StepCount()
}

// Progress returns the progress percentage of the current step.
func (f *Flow) Progress() int {
	return f.current.Progress()
}

// ShowProgress reports whether a progress indicator should be displayed
// for the current step.
func (f *Flow) ShowProgress() bool {
	switch f.current {
	case Welcome:
		return false
	case Complete:
		return f.showCompleteProgress
	}
	return true
}

// Session returns a copy of the accumulated session.
func (f *Flow) Session() Session {
	return f.session
}

// User returns a copy of the host-supplied user. ok is false when the host
// supplied none.
func (f *Flow) User() (User, bool) {
	if f.user == nil {
		return User{}, false
	}
	return *f.user, true
}

// Summary returns the review projection of the current session.
func (f *Flow) Summary() Summary {
	return NewSummary(f.user, f.session)
}

// Finished reports whether Finish has run.
func (f *Flow) Finished() bool {
	return f.finished
}

// Blockers returns the required fields of the current step that are still
// missing. It is empty whenever a forward move is permitted.
func (f *Flow) Blockers() []Field {
	if f.finished {
		return nil
	}
	return Missing(f.current, f.session)
}

// CanForward reports whether Forward would succeed right now.
func (f *Flow) CanForward() bool {
	if f.finished {
		return false
	}
	if _, ok := f.current.Next(); !ok {
		return false
	}
	return StepComplete(f.current, f.session)
}

// Forward moves to the next step when the current step's required fields
// are present. It reports whether the move happened.
func (f *Flow) Forward() bool {
	if !f.CanForward() {
		return false
	}
	next, _ := f.current.Next()
	f.move(next, TransitionForward)
	return true
}

// Back moves to the previous step. Fields are never cleared.
func (f *Flow) Back() bool {
	if f.finished {
		return false
	}
	prev, ok := f.current.Prev()
	if !ok {
		return false
	}
	f.move(prev, TransitionBack)
	return true
}

// Submit moves from Review to Complete. Reaching Review already implies
// every gate passed, so no further validation runs.
func (f *Flow) Submit() bool {
	if f.finished || f.current != Review {
		return false
	}
	f.move(Complete, TransitionSubmit)
	return true
}

// Finish exits the flow from Complete and invokes the completion callback.
// Only the first successful call has any effect.
func (f *Flow) Finish() bool {
	if f.current != Complete {
		return false
	}
	fired := false
	f.once.Do(func() {
		fired = true
		f.finished = true
		if f.onComplete != nil {
			f.onComplete()
		}
	})
	if fired {
		f.notify(Transition{From: Complete, To: Complete, Kind: TransitionFinish})
	}
	return fired
}

// Set stores a text value for field. It fails with ErrFieldLocked unless
// the field's owning step is current.
func (f *Flow) Set(field Field, value string) error {
	if err := f.checkEditable(field); err != nil {
		return err
	}
	if field == FieldDateOfBirth {
		if value == "" {
			return f.ClearDateOfBirth()
		}
		t, err := time.Parse(DateLayout, value)
		if err != nil {
			return fmt.Errorf("parse %s: %w", field, err)
		}
		return f.SetDateOfBirth(t)
	}
	f.session.setText(field, value)
	return nil
}

// SetDateOfBirth stores the date of birth. Only the calendar date is kept.
func (f *Flow) SetDateOfBirth(t time.Time) error {
	if err := f.checkEditable(FieldDateOfBirth); err != nil {
		return err
	}
	y, m, d := t.Date()
	f.session.SetDateOfBirth(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	return nil
}

// ClearDateOfBirth unsets the date of birth.
func (f *Flow) ClearDateOfBirth() error {
	if err := f.checkEditable(FieldDateOfBirth); err != nil {
		return err
	}
	f.session.ClearDateOfBirth()
	return nil
}

func (f *Flow) checkEditable(field Field) error {
	owner, ok := field.Owner()
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	if f.finished || owner != f.current {
		return fmt.Errorf("%w: %s belongs to %s, current step is %s",
			ErrFieldLocked, field, owner, f.current)
	}
	return nil
}

func (f *Flow) move(to Step, kind TransitionKind) {
	from := f.current
	f.current = to
	f.notify(Transition{From: from, To: to, Kind: kind})
}

func (f *Flow) notify(t Transition) {
	if f.observer != nil {
		f.observer(t)
	}
}
