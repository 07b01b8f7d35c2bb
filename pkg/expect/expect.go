// Package expect provides the assertion entry points that bind
// matchers to test bodies. A failed expectation escapes as a
// typed *Failure panic, which suite.Run captures into a
// TestFailed event; outside a running suite the panic propagates
// to the caller directly.
package expect

import (
	"errors"

	"digital.vasic.spec/pkg/matcher"
)

// ErrFailure is the sentinel error for failed expectations,
// usable with errors.Is. It marks assertion failures as a class
// disjoint from configuration errors.
var ErrFailure = errors.New("expectation failed")

// Failure carries the rendered message of a failed expectation.
type Failure struct {
	Message string
}

// Error returns the rendered failure message verbatim.
func (f *Failure) Error() string {
	return f.Message
}

// Unwrap marks the failure for errors.Is(err, ErrFailure).
func (f *Failure) Unwrap() error {
	return ErrFailure
}

// That applies the matcher to the subject and panics with a
// *Failure carrying the failure message when it does not match.
func That[T any](subject T, m matcher.Matcher[T]) {
	r := m(subject)
	if !r.Matched {
		panic(&Failure{Message: r.FailureMessage})
	}
}

// NotThat applies the matcher to the subject and panics with a
// *Failure carrying the negated-failure message when it matches.
func NotThat[T any](subject T, m matcher.Matcher[T]) {
	r := m(subject)
	if r.Matched {
		panic(&Failure{Message: r.NegatedFailureMessage})
	}
}

// Check applies the matcher and returns the raw Result without
// panicking, for callers that want to inspect the outcome.
func Check[T any](subject T, m matcher.Matcher[T]) matcher.Result {
	return m(subject)
}
