package event

import (
	"sync"
	"time"
)

// Stats holds aggregate counts over the events a Collector has
// seen.
type Stats struct {
	Started   int           `json:"started"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Ignored   int           `json:"ignored"`
	StartTime time.Time     `json:"start_time"`
	Duration  time.Duration `json:"duration"`
}

// Collector is a Reporter that records every event, keeps
// aggregate statistics, and notifies registered handlers. It is
// safe for concurrent use.
type Collector struct {
	mu       sync.RWMutex
	events   []Event
	handlers []func(Event)
	stats    Stats
}

// NewCollector creates an empty Collector.
func NewCollector() *Collector {
	return &Collector{
		events: make([]Event, 0, 64),
		stats:  Stats{StartTime: time.Now()},
	}
}

// OnEvent registers a handler invoked for each subsequent event.
func (c *Collector) OnEvent(handler func(Event)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, handler)
}

// Apply records the event, updates statistics, and notifies
// handlers.
func (c *Collector) Apply(e Event) {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}

	c.mu.Lock()
	c.events = append(c.events, e)
	switch e.Type {
	case TestStarting:
		c.stats.Started++
	case TestSucceeded:
		c.stats.Succeeded++
	case TestFailed:
		c.stats.Failed++
	case TestIgnored:
		c.stats.Ignored++
	}
	c.stats.Duration = time.Since(c.stats.StartTime)
	handlers := make([]func(Event), len(c.handlers))
	copy(handlers, c.handlers)
	c.mu.Unlock()

	for _, h := range handlers {
		h(e)
	}
}

// Events returns a copy of all recorded events.
func (c *Collector) Events() []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// EventsOf returns a copy of the recorded events of one type.
func (c *Collector) EventsOf(t Type) []Event {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []Event
	for _, e := range c.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// Count returns how many events of the given type have been
// recorded.
func (c *Collector) Count(t Type) int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, e := range c.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Stats returns a snapshot of the aggregate statistics.
func (c *Collector) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.stats
}

// Reset discards all recorded events and statistics.
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = c.events[:0]
	c.stats = Stats{StartTime: time.Now()}
}
