package tui

import (
	"time"

	"github.com/vovakirdan/flower-quest/internal/core"
)

// holdTracker infers key releases. Terminals deliver only presses, and a
// held key autorepeats, so a control counts as held until no repeat has
// arrived within the timeout.
type holdTracker struct {
	timeout time.Duration
	last    map[core.Control]time.Time
}

func newHoldTracker(timeout time.Duration) *holdTracker {
	return &holdTracker{
		timeout: timeout,
		last:    make(map[core.Control]time.Time),
	}
}

// touch records a press or repeat of c at now.
func (h *holdTracker) touch(c core.Control, now time.Time) {
	h.last[c] = now
}

// holding reports whether c is still considered held by the keyboard.
func (h *holdTracker) holding(c core.Control) bool {
	_, ok := h.last[c]
	return ok
}

// expire forgets and returns every control whose last press is older than
// the timeout.
func (h *holdTracker) expire(now time.Time) []core.Control {
	var released []core.Control
	for c, t := range h.last {
		if now.Sub(t) > h.timeout {
			released = append(released, c)
			delete(h.last, c)
		}
	}
	return released
}

func (h *holdTracker) reset() {
	clear(h.last)
}
