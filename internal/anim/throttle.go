package anim

import (
	"sync"
	"time"
)

// Throttle lets one trigger through and suppresses the rest until a fixed
// cooldown has elapsed.
type Throttle struct {
	mu    sync.Mutex
	wait  time.Duration
	until time.Time
	now   func() time.Time
}

// NewThrottle returns a Throttle with the given cooldown window.
func NewThrottle(wait time.Duration) *Throttle {
	return &Throttle{wait: wait, now: time.Now}
}

// Allow reports whether a trigger may run now. An allowed trigger starts a
// new cooldown window.
func (t *Throttle) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if now.Before(t.until) {
		return false
	}
	t.until = now.Add(t.wait)
	return true
}
