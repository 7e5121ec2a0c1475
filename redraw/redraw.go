// Package redraw debounces geometry-edit events into render calls: a
// burst of edits while a user types a dimension collapses into one
// redraw after the window goes quiet. The pending slot holds a single
// render; a new request within the window discards it and restarts the
// timer.
package redraw

import (
	"sync"
	"time"

	"github.com/bep/debounce"

	"github.com/amitay1/partdraw/lib/env"
)

// DefaultWindow is the debounce window used when none is configured.
// Anywhere in 150-400ms feels responsive without redrawing per
// keystroke.
const DefaultWindow = 250 * time.Millisecond

// Window is the effective debounce window: the PARTDRAW_DEBOUNCE_MS
// override when set, DefaultWindow otherwise.
func Window() time.Duration {
	if ms, ok := env.DebounceMillis(); ok {
		return time.Duration(ms) * time.Millisecond
	}
	return DefaultWindow
}

// Scheduler owns one pending-redraw slot. Safe for concurrent use; the
// render callback runs on the timer goroutine.
type Scheduler struct {
	debounced func(func())

	mu      sync.Mutex
	stopped bool
}

// NewScheduler builds a scheduler with the given window; window <= 0
// uses Window().
func NewScheduler(window time.Duration) *Scheduler {
	if window <= 0 {
		window = Window()
	}
	return &Scheduler{debounced: debounce.New(window)}
}

// Request schedules render after the window elapses with no further
// requests. Each call replaces any pending render and restarts the
// timer, so only the latest snapshot ever draws.
func (s *Scheduler) Request(render func()) {
	s.debounced(func() {
		s.mu.Lock()
		stopped := s.stopped
		s.mu.Unlock()
		if stopped {
			return
		}
		render()
	})
}

// Stop discards any pending render and makes further requests no-ops.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()
}
