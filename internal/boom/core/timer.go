package core

// Timer is a simple countdown used for fuses, shields, cooldowns and
// removal delays. The zero value is an inactive timer.
type Timer struct {
	active    bool
	total     float64
	remaining float64
}

// Start activates the timer with the given duration in seconds.
// Restarting an active timer replaces its remaining time.
func (t *Timer) Start(seconds float64) {
	t.active = true
	t.total = seconds
	t.remaining = seconds
}

// Active reports whether the timer is counting down.
func (t *Timer) Active() bool {
	return t.active
}

// Remaining returns the seconds left, or 0 for an inactive timer.
func (t *Timer) Remaining() float64 {
	if !t.active {
		return 0
	}
	return t.remaining
}

// Frac returns the elapsed fraction in [0, 1], used by observers for
// interpolation. Inactive timers report 0.
func (t *Timer) Frac() float64 {
	if !t.active || t.total <= 0 {
		return 0
	}
	f := 1 - t.remaining/t.total
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Tick advances the timer by dt seconds. It returns true exactly once,
// on the tick the timer expires, and deactivates the timer.
func (t *Timer) Tick(dt float64) bool {
	if !t.active {
		return false
	}
	t.remaining -= dt
	if t.remaining <= 0 {
		t.active = false
		t.remaining = 0
		return true
	}
	return false
}

// Reset deactivates the timer without firing.
func (t *Timer) Reset() {
	t.active = false
	t.remaining = 0
}
