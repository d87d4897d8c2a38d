// Package stopwatch implements the client-side solve timer as a three-state
// machine. The elapsed duration is measured against a monotonic start instant,
// never wall-clock arithmetic, so clock adjustments while a solve runs cannot
// skew the recorded time. A stopwatch is single-use: once stopped it stays
// stopped, and a new attempt needs a fresh instance.
package stopwatch

import (
	"errors"
	"time"
)

type State int

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// ErrAttemptFinished signals a tap on a stopped watch; the old start instant is
// never reused
var ErrAttemptFinished = errors.New("attempt already finished, start a new one")

type Stopwatch struct {
	clock   func() time.Time
	state   State
	startAt time.Time
	elapsed time.Duration
}

// New creates an idle stopwatch driven by the system clock
func New() *Stopwatch {
	return NewWithClock(time.Now)
}

// NewWithClock creates an idle stopwatch with an injectable clock for tests
func NewWithClock(clock func() time.Time) *Stopwatch {
	return &Stopwatch{clock: clock, state: Idle}
}

func (s *Stopwatch) State() State {
	return s.state
}

// Tap advances the machine: the first tap starts the timer, the second freezes
// the authoritative duration. Tapping a stopped watch returns ErrAttemptFinished
// and leaves the recorded duration untouched.
func (s *Stopwatch) Tap() error {
	switch s.state {
	case Idle:
		s.startAt = s.clock()
		s.state = Running
		return nil
	case Running:
		s.elapsed = s.clock().Sub(s.startAt)
		s.state = Stopped
		return nil
	default:
		return ErrAttemptFinished
	}
}

// Elapsed returns the time measured so far. While running this is a display
// value recomputed on each call; only the duration frozen by the stopping tap
// is authoritative.
func (s *Stopwatch) Elapsed() time.Duration {
	switch s.state {
	case Running:
		return s.clock().Sub(s.startAt)
	case Stopped:
		return s.elapsed
	}
	return 0
}

// ElapsedMillis returns Elapsed as integer milliseconds, the unit the
// submission ledger stores
func (s *Stopwatch) ElapsedMillis() int64 {
	return s.Elapsed().Milliseconds()
}
