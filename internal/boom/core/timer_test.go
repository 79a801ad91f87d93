package core

import "testing"

func TestTimerZeroValueInactive(t *testing.T) {
	var tm Timer
	if tm.Active() {
		t.Error("zero-value timer should be inactive")
	}
	if tm.Remaining() != 0 || tm.Frac() != 0 {
		t.Error("inactive timer should report zero remaining and frac")
	}
	if tm.Tick(1) {
		t.Error("ticking an inactive timer should not fire")
	}
}

func TestTimerFiresExactlyOnce(t *testing.T) {
	var tm Timer
	tm.Start(0.1)

	fired := 0
	for i := 0; i < 10; i++ {
		if tm.Tick(0.05) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("timer fired %d times, want exactly 1", fired)
	}
	if tm.Active() {
		t.Error("timer should be inactive after expiry")
	}
}

func TestTimerFrac(t *testing.T) {
	var tm Timer
	tm.Start(2)
	tm.Tick(1)
	if got := tm.Frac(); got != 0.5 {
		t.Errorf("Frac() = %v, want 0.5", got)
	}
}

func TestTimerRestartReplacesRemaining(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Tick(0.9)
	tm.Start(1)
	if tm.Tick(0.5) {
		t.Error("restarted timer fired early")
	}
}

func TestTimerReset(t *testing.T) {
	var tm Timer
	tm.Start(1)
	tm.Reset()
	if tm.Active() {
		t.Error("reset timer should be inactive")
	}
	if tm.Tick(5) {
		t.Error("reset timer should never fire")
	}
}
