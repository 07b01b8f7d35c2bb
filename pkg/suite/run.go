package suite

import (
	"fmt"
	"time"

	"digital.vasic.spec/pkg/event"
	"digital.vasic.spec/pkg/logging"
)

// Run executes every test selected by the filter, in
// registration order, synchronously on the caller's goroutine.
// For each selected test a TestStarting event is emitted, the
// body runs with panics captured, and a TestSucceeded or
// TestFailed event follows with the elapsed duration. Selected
// tests carrying the Ignore tag emit TestIgnored without
// executing. Registration is frozen from the first Run on.
func (s *Suite) Run(reporter event.Reporter, f Filter) {
	s.run(reporter, f, "")
}

// RunTest executes a single test by name, bypassing the tag
// filter entirely: an explicitly requested test runs even when
// it carries the Ignore tag. It returns an error if no test with
// that name is registered.
func (s *Suite) RunTest(
	name string,
	reporter event.Reporter,
) error {
	s.mu.Lock()
	_, known := s.tests[name]
	s.mu.Unlock()

	if !known {
		return fmt.Errorf(
			"suite %q has no test named %q", s.name, name,
		)
	}

	s.run(reporter, Filter{}, name)
	return nil
}

func (s *Suite) run(
	reporter event.Reporter,
	f Filter,
	only string,
) {
	s.mu.Lock()
	s.state = StateRunning
	s.reporter = reporter
	order := make([]string, len(s.order))
	copy(order, s.order)
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.state = StateDone
		s.reporter = nil
		s.mu.Unlock()
	}()

	for _, name := range order {
		s.mu.Lock()
		e := s.tests[name]
		s.mu.Unlock()

		if only != "" {
			if name != only {
				continue
			}
		} else {
			if !f.Selects(e.tags) {
				continue
			}
			if e.tagged(IgnoreTag) {
				reporter.Apply(event.Event{
					Type:      event.TestIgnored,
					SuiteName: s.name,
					TestName:  name,
					Timestamp: time.Now(),
				})
				continue
			}
		}

		reporter.Apply(event.Event{
			Type:      event.TestStarting,
			SuiteName: s.name,
			TestName:  name,
			Timestamp: time.Now(),
		})

		start := time.Now()
		err := runBody(e.body)
		elapsed := time.Since(start)

		if err != nil {
			s.logger.Debug("test failed",
				logging.Field{Key: "test", Value: name},
				logging.Field{Key: "error", Value: err.Error()},
			)
			reporter.Apply(event.Event{
				Type:      event.TestFailed,
				SuiteName: s.name,
				TestName:  name,
				Message:   err.Error(),
				Duration:  elapsed,
				Timestamp: time.Now(),
			})
			continue
		}

		reporter.Apply(event.Event{
			Type:      event.TestSucceeded,
			SuiteName: s.name,
			TestName:  name,
			Duration:  elapsed,
			Timestamp: time.Now(),
		})
	}
}

// runBody executes a test body, converting any panic into an
// error. Assertion failures and configuration errors both travel
// as typed error panics and surface here with their exact
// messages; the reporting layer does not distinguish the two.
func runBody(body func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			err = e
			return
		}
		err = fmt.Errorf("%v", r)
	}()

	body()
	return nil
}

// Info emits an InfoProvided event through the active reporter
// while the suite is running; outside a run it logs through the
// suite logger instead.
func (s *Suite) Info(message string) {
	s.mu.Lock()
	reporter := s.reporter
	s.mu.Unlock()

	if reporter == nil {
		s.logger.Info(message)
		return
	}

	reporter.Apply(event.Event{
		Type:      event.InfoProvided,
		SuiteName: s.name,
		Message:   message,
		Timestamp: time.Now(),
	})
}

// ExpectedTestCount computes, without running anything, how many
// tests the filter would actually execute: selected by tag
// filtering and not ignored. The count agrees exactly with the
// number of TestStarting events an equivalent Run emits.
func (s *Suite) ExpectedTestCount(f Filter) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, name := range s.order {
		e := s.tests[name]
		if f.Selects(e.tags) && !e.tagged(IgnoreTag) {
			n++
		}
	}
	return n
}

// RunAll executes several suites against one reporter. A panic
// escaping a single suite (for example from a misbehaving
// reporter) is reported as SuiteAborted and the remaining suites
// still run; a panic escaping the loop itself is reported as
// RunAborted.
func RunAll(
	reporter event.Reporter,
	f Filter,
	suites ...*Suite,
) {
	defer func() {
		if r := recover(); r != nil {
			reporter.Apply(event.Event{
				Type:      event.RunAborted,
				Message:   fmt.Sprint(r),
				Timestamp: time.Now(),
			})
		}
	}()

	for _, s := range suites {
		runGuarded(reporter, f, s)
	}
}

func runGuarded(
	reporter event.Reporter,
	f Filter,
	s *Suite,
) {
	defer func() {
		if r := recover(); r != nil {
			reporter.Apply(event.Event{
				Type:      event.SuiteAborted,
				SuiteName: s.Name(),
				Message:   fmt.Sprint(r),
				Timestamp: time.Now(),
			})
		}
	}()

	s.Run(reporter, f)
}
