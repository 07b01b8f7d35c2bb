// Package report builds human- and machine-readable summaries
// from the events of a completed run. It consumes collected
// events only; nothing here feeds back into execution, and
// nothing is persisted.
package report

import (
	"time"

	"github.com/google/uuid"

	"digital.vasic.spec/pkg/event"
)

// Outcome is the final status of one test.
type Outcome struct {
	Name     string        `json:"name"`
	Suite    string        `json:"suite,omitempty"`
	Status   string        `json:"status"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Statuses an Outcome can carry.
const (
	StatusPassed  = "passed"
	StatusFailed  = "failed"
	StatusIgnored = "ignored"
)

// Summary aggregates a full run.
type Summary struct {
	RunID     string        `json:"run_id"`
	Started   int           `json:"started"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Ignored   int           `json:"ignored"`
	Duration  time.Duration `json:"duration"`
	Outcomes  []Outcome     `json:"outcomes"`
	Infos     []string      `json:"infos,omitempty"`
	Aborted   []string      `json:"aborted,omitempty"`
	Timestamp time.Time     `json:"timestamp"`
}

// Build derives a Summary from the events a collector recorded.
// Each run gets a fresh random identifier.
func Build(c *event.Collector) *Summary {
	s := &Summary{
		RunID:     uuid.NewString(),
		Timestamp: time.Now(),
	}

	for _, e := range c.Events() {
		switch e.Type {
		case event.TestStarting:
			s.Started++
		case event.TestSucceeded:
			s.Passed++
			s.Duration += e.Duration
			s.Outcomes = append(s.Outcomes, Outcome{
				Name:     e.TestName,
				Suite:    e.SuiteName,
				Status:   StatusPassed,
				Duration: e.Duration,
			})
		case event.TestFailed:
			s.Failed++
			s.Duration += e.Duration
			s.Outcomes = append(s.Outcomes, Outcome{
				Name:     e.TestName,
				Suite:    e.SuiteName,
				Status:   StatusFailed,
				Message:  e.Message,
				Duration: e.Duration,
			})
		case event.TestIgnored:
			s.Ignored++
			s.Outcomes = append(s.Outcomes, Outcome{
				Name:   e.TestName,
				Suite:  e.SuiteName,
				Status: StatusIgnored,
			})
		case event.InfoProvided:
			s.Infos = append(s.Infos, e.Message)
		case event.SuiteAborted, event.RunAborted:
			s.Aborted = append(s.Aborted, e.Message)
		}
	}

	return s
}

// AllPassed reports whether every started test passed and
// nothing aborted.
func (s *Summary) AllPassed() bool {
	return s.Failed == 0 && len(s.Aborted) == 0
}
