// Package suite provides ordered, duplicate-checked test
// registration with tag-based filtering and event-emitting
// execution. A Suite is populated with named test closures
// during its construction phase, then executed synchronously in
// registration order; lifecycle events are delivered to an
// event.Reporter. Registering a duplicate name, or registering
// once execution has started, is a registration error raised at
// the point of misuse, never a silent overwrite.
package suite

import (
	"errors"
	"fmt"
	"sync"

	"digital.vasic.spec/pkg/event"
	"digital.vasic.spec/pkg/logging"
)

// IgnoreTag is the reserved tag attached to tests registered via
// Ignore. The core gives it no meaning beyond filtering: an
// ignored test is reported as ignored instead of being run,
// unless it is requested by name.
const IgnoreTag = "Ignore"

// State is the lifecycle phase of a Suite.
type State int

const (
	// StateConstructing accepts test registrations.
	StateConstructing State = iota

	// StateReady means construction is finished; registrations
	// are rejected, execution has not started.
	StateReady

	// StateRunning means execution is in progress.
	StateRunning

	// StateDone means at least one run has completed.
	StateDone
)

// ErrRegistration is the sentinel for registration-phase
// violations: duplicate test names and registration after
// execution has started. Both are programmer errors, distinct
// from assertion failures.
var ErrRegistration = errors.New("registration error")

// RegistrationError reports a registration-phase violation. It
// is raised as a panic at the offending registration call, before
// any test body executes.
type RegistrationError struct {
	SuiteName string
	TestName  string
	Reason    string
}

func (e *RegistrationError) Error() string {
	return e.Reason
}

// Unwrap marks the error as a registration error for errors.Is.
func (e *RegistrationError) Unwrap() error {
	return ErrRegistration
}

// entry is a registered test.
type entry struct {
	name string
	body func()
	tags map[string]struct{}
}

func (e *entry) tagged(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Suite is an insertion-ordered, duplicate-checked registry of
// named test closures. The zero value is not usable; create
// suites with New.
type Suite struct {
	mu       sync.Mutex
	name     string
	state    State
	order    []string
	tests    map[string]*entry
	prefix   string
	logger   logging.Logger
	reporter event.Reporter // active reporter while running
}

// Option configures a Suite.
type Option func(*Suite)

// WithLogger attaches a logger used for framework-level debug
// output during registration and execution.
func WithLogger(l logging.Logger) Option {
	return func(s *Suite) { s.logger = l }
}

// New creates an empty Suite in the constructing state.
func New(name string, opts ...Option) *Suite {
	s := &Suite{
		name:   name,
		tests:  make(map[string]*entry),
		logger: logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the suite name.
func (s *Suite) Name() string { return s.name }

// State returns the current lifecycle state.
func (s *Suite) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Test registers a named test closure with optional tags.
// Duplicate names, including names already taken by ignored
// tests, panic with a *RegistrationError before any body runs.
func (s *Suite) Test(name string, body func(), tags ...string) {
	s.register(name, body, tags, false)
}

// Ignore registers a test that is reported as ignored instead of
// executed. The reserved Ignore tag is added to its tag set. The
// name shares a namespace with normal tests.
func (s *Suite) Ignore(name string, body func(), tags ...string) {
	s.register(name, body, tags, true)
}

// Describe runs the register callback with a name prefix applied
// to every registration made inside it. Nested calls chain their
// prefixes.
func (s *Suite) Describe(prefix string, register func()) {
	s.mu.Lock()
	previous := s.prefix
	if previous == "" {
		s.prefix = prefix
	} else {
		s.prefix = previous + " " + prefix
	}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.prefix = previous
		s.mu.Unlock()
	}()

	register()
}

func (s *Suite) register(
	name string,
	body func(),
	tags []string,
	ignored bool,
) {
	s.mu.Lock()
	defer s.mu.Unlock()

	full := name
	if s.prefix != "" {
		full = s.prefix + " " + name
	}

	if s.state != StateConstructing {
		panic(&RegistrationError{
			SuiteName: s.name,
			TestName:  full,
			Reason: fmt.Sprintf(
				"cannot register test %q: suite %q is no longer constructing",
				full, s.name,
			),
		})
	}

	if _, exists := s.tests[full]; exists {
		panic(&RegistrationError{
			SuiteName: s.name,
			TestName:  full,
			Reason: fmt.Sprintf(
				"duplicate test name: %q", full,
			),
		})
	}

	tagSet := make(map[string]struct{}, len(tags)+1)
	for _, t := range tags {
		tagSet[t] = struct{}{}
	}
	if ignored {
		tagSet[IgnoreTag] = struct{}{}
	}

	s.order = append(s.order, full)
	s.tests[full] = &entry{name: full, body: body, tags: tagSet}

	s.logger.Debug("test registered",
		logging.Field{Key: "suite", Value: s.name},
		logging.Field{Key: "test", Value: full},
	)
}

// Freeze finishes the construction phase. Further registrations
// are rejected. Freezing is optional; Run freezes implicitly.
func (s *Suite) Freeze() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateConstructing {
		s.state = StateReady
	}
}

// Names returns the registered test names in registration order.
func (s *Suite) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Count returns the number of registered tests.
func (s *Suite) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}

// Tags returns the derived view mapping each test name to its
// sorted tag list. Tests registered via Ignore always carry the
// reserved Ignore tag. The view is recomputed on each call and
// is not independently mutable.
func (s *Suite) Tags() map[string][]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string][]string, len(s.tests))
	for name, e := range s.tests {
		if len(e.tags) == 0 {
			continue
		}
		out[name] = sortedTags(e.tags)
	}
	return out
}
