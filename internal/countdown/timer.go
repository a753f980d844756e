package countdown

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// DefaultInterval is the tick cadence of a mounted Timer.
const DefaultInterval = time.Second

// ErrMounted is returned when Mount is called on a Timer that is already running.
var ErrMounted = errors.New("timer already mounted")

// Timer owns a Countdown and the periodic schedule that decrements it.
// The schedule lives between Mount and Unmount, and ends early once the
// countdown reaches zero.
type Timer struct {
	id       string
	start    Countdown
	clock    Clock
	interval time.Duration
	onChange func(Countdown)

	mu      sync.Mutex
	state   Countdown
	mounted bool
	stop    chan struct{}
	done    chan struct{}
}

// Option configures a Timer.
type Option func(*Timer)

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(t *Timer) { t.clock = c }
}

// WithInterval overrides the one-second cadence.
func WithInterval(d time.Duration) Option {
	return func(t *Timer) {
		if d > 0 {
			t.interval = d
		}
	}
}

// WithOnChange registers fn to receive every new value after a tick.
// fn runs on the schedule goroutine and is never called after Unmount returns.
func WithOnChange(fn func(Countdown)) Option {
	return func(t *Timer) { t.onChange = fn }
}

// NewTimer returns an unmounted Timer that will start from start.
func NewTimer(start Countdown, opts ...Option) *Timer {
	t := &Timer{
		id:       uuid.NewString(),
		start:    start,
		clock:    SystemClock,
		interval: DefaultInterval,
		state:    start,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// ID identifies this timer instance in logs and rendered output.
func (t *Timer) ID() string { return t.id }

// Snapshot returns the current value.
func (t *Timer) Snapshot() Countdown {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Running reports whether the schedule is still active.
func (t *Timer) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.mounted {
		return false
	}
	select {
	case <-t.done:
		return false
	default:
		return true
	}
}

// Mount resets the countdown to its start value and begins ticking.
// The schedule stops when ctx is cancelled, when Unmount is called, or when
// the countdown is exhausted.
func (t *Timer) Mount(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.mounted {
		return ErrMounted
	}
	t.state = t.start
	t.mounted = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})

	ticker := t.clock.NewTicker(t.interval)
	go t.run(ctx, ticker, t.stop, t.done)

	t.logger().WithField("start", t.start.String()).Debug("timer mounted")
	return nil
}

// Unmount cancels the schedule and waits for it to finish. It is safe to call
// more than once and on a Timer that was never mounted.
func (t *Timer) Unmount() {
	t.mu.Lock()
	if !t.mounted {
		t.mu.Unlock()
		return
	}
	t.mounted = false
	stop, done := t.stop, t.done
	t.mu.Unlock()

	close(stop)
	<-done
	t.logger().Debug("timer unmounted")
}

func (t *Timer) run(ctx context.Context, ticker Ticker, stop <-chan struct{}, done chan<- struct{}) {
	defer ticker.Stop()
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			t.logger().WithField("reason", ctx.Err()).Debug("timer schedule cancelled")
			return
		case <-stop:
			return
		case <-ticker.C():
			t.mu.Lock()
			next, ok := Tick(t.state)
			t.state = next
			t.mu.Unlock()

			if !ok {
				t.logger().Info("countdown finished")
				return
			}
			if t.onChange != nil {
				t.onChange(next)
			}
		}
	}
}

func (t *Timer) logger() *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"component": "timer", "timer_id": t.id})
}
