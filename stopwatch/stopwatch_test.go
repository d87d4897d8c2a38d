package stopwatch

import (
	"errors"
	"testing"
	"time"
)

// fakeClock returns a controllable clock for deterministic elapsed times
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	now := start
	clock := func() time.Time { return now }
	advance := func(d time.Duration) { now = now.Add(d) }
	return clock, advance
}

func TestStopwatch_Transitions(t *testing.T) {
	clock, advance := fakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	sw := NewWithClock(clock)

	if sw.State() != Idle {
		t.Fatalf("expected initial state Idle, got %s", sw.State())
	}
	if sw.Elapsed() != 0 {
		t.Errorf("expected zero elapsed while idle, got %v", sw.Elapsed())
	}

	if err := sw.Tap(); err != nil {
		t.Fatalf("unexpected error starting: %v", err)
	}
	if sw.State() != Running {
		t.Fatalf("expected state Running after first tap, got %s", sw.State())
	}

	advance(9500 * time.Millisecond)

	if err := sw.Tap(); err != nil {
		t.Fatalf("unexpected error stopping: %v", err)
	}
	if sw.State() != Stopped {
		t.Fatalf("expected state Stopped after second tap, got %s", sw.State())
	}
	if sw.ElapsedMillis() != 9500 {
		t.Errorf("expected frozen duration 9500ms, got %d", sw.ElapsedMillis())
	}
}

func TestStopwatch_ElapsedWhileRunning(t *testing.T) {
	clock, advance := fakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	sw := NewWithClock(clock)

	if err := sw.Tap(); err != nil {
		t.Fatalf("unexpected error starting: %v", err)
	}

	// Display samples recompute from the start instant on every call
	advance(100 * time.Millisecond)
	if sw.ElapsedMillis() != 100 {
		t.Errorf("expected 100ms elapsed, got %d", sw.ElapsedMillis())
	}
	advance(100 * time.Millisecond)
	if sw.ElapsedMillis() != 200 {
		t.Errorf("expected 200ms elapsed, got %d", sw.ElapsedMillis())
	}
}

func TestStopwatch_StoppedIsTerminal(t *testing.T) {
	clock, advance := fakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))
	sw := NewWithClock(clock)

	_ = sw.Tap()
	advance(12345 * time.Millisecond)
	_ = sw.Tap()

	err := sw.Tap()
	if !errors.Is(err, ErrAttemptFinished) {
		t.Fatalf("expected ErrAttemptFinished tapping a stopped watch, got %v", err)
	}

	// The frozen duration must survive further taps and clock movement
	advance(5 * time.Second)
	if sw.ElapsedMillis() != 12345 {
		t.Errorf("expected frozen duration 12345ms, got %d", sw.ElapsedMillis())
	}
	if sw.State() != Stopped {
		t.Errorf("expected state to remain Stopped, got %s", sw.State())
	}
}

func TestStopwatch_FreshInstancePerAttempt(t *testing.T) {
	clock, advance := fakeClock(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC))

	first := NewWithClock(clock)
	_ = first.Tap()
	advance(8 * time.Second)
	_ = first.Tap()

	// A new attempt starts from a fresh instance; the old start instant is gone
	second := NewWithClock(clock)
	if second.State() != Idle {
		t.Fatalf("expected fresh stopwatch to be Idle, got %s", second.State())
	}
	_ = second.Tap()
	advance(3 * time.Second)
	_ = second.Tap()

	if second.ElapsedMillis() != 3000 {
		t.Errorf("expected 3000ms for the new attempt, got %d", second.ElapsedMillis())
	}
	if first.ElapsedMillis() != 8000 {
		t.Errorf("expected first attempt to remain 8000ms, got %d", first.ElapsedMillis())
	}
}

func TestStateString(t *testing.T) {
	cases := []struct {
		state State
		want  string
	}{
		{Idle, "idle"},
		{Running, "running"},
		{Stopped, "stopped"},
		{State(99), "unknown"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("State(%d).String() = %q, want %q", c.state, got, c.want)
		}
	}
}
