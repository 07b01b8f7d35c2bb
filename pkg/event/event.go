// Package event defines the structured events emitted while a
// suite runs and the Reporter interface that consumes them. The
// core only constructs events; rendering them for display is the
// concern of downstream packages such as report and monitor.
package event

import "time"

// Type represents the kind of a run event.
type Type string

const (
	TestStarting  Type = "test_starting"
	TestSucceeded Type = "test_succeeded"
	TestFailed    Type = "test_failed"
	TestIgnored   Type = "test_ignored"
	InfoProvided  Type = "info_provided"
	SuiteAborted  Type = "suite_aborted"
	RunAborted    Type = "run_aborted"
)

// Event is a single structured occurrence during a run.
type Event struct {
	Type      Type          `json:"type"`
	SuiteName string        `json:"suite_name,omitempty"`
	TestName  string        `json:"test_name,omitempty"`
	Message   string        `json:"message,omitempty"`
	Duration  time.Duration `json:"duration,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Reporter consumes run events. Implementations must not assume
// any particular event ordering beyond what a single suite
// produces: starting/succeeded/failed/ignored per test, in
// registration order.
type Reporter interface {
	// Apply delivers one event to the reporter.
	Apply(e Event)
}

// ReporterFunc adapts a plain function to the Reporter
// interface.
type ReporterFunc func(e Event)

// Apply delivers the event to the wrapped function.
func (f ReporterFunc) Apply(e Event) { f(e) }

// Multi fans events out to several reporters in order.
type Multi []Reporter

// Apply delivers the event to every wrapped reporter.
func (m Multi) Apply(e Event) {
	for _, r := range m {
		r.Apply(e)
	}
}

// Discard is a Reporter that drops every event.
var Discard Reporter = ReporterFunc(func(Event) {})
