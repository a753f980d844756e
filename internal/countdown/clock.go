package countdown

import (
	"context"
	"sync"
	"time"
)

// Clock creates the periodic schedule a Timer ticks on.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

// Ticker wraps time.Ticker so tests can drive it.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// SystemClock is backed by the standard library ticker.
//
//nolint:gochecknoglobals // stateless default implementation.
var SystemClock Clock = systemClock{}

type systemClock struct{}

func (systemClock) NewTicker(d time.Duration) Ticker {
	return &systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct{ t *time.Ticker }

func (s *systemTicker) C() <-chan time.Time { return s.t.C }
func (s *systemTicker) Stop()               { s.t.Stop() }

// ManualClock is a Clock whose tickers only fire when Fire is called.
type ManualClock struct {
	mu      sync.Mutex
	tickers []*manualTicker
}

// NewManualClock returns a ManualClock with no tickers.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) NewTicker(time.Duration) Ticker {
	t := &manualTicker{
		ch:      make(chan time.Time),
		stopped: make(chan struct{}),
	}
	c.mu.Lock()
	c.tickers = append(c.tickers, t)
	c.mu.Unlock()
	return t
}

// Fire delivers one tick to the most recently created ticker and blocks until
// it is received. It returns false when that ticker has been stopped, or when
// ctx ends first. A successful Fire also means every earlier tick has been
// fully handled, since the receiver only reads again after finishing one.
func (c *ManualClock) Fire(ctx context.Context) bool {
	c.mu.Lock()
	if len(c.tickers) == 0 {
		c.mu.Unlock()
		return false
	}
	t := c.tickers[len(c.tickers)-1]
	c.mu.Unlock()

	select {
	case t.ch <- time.Now():
		return true
	case <-t.stopped:
		return false
	case <-ctx.Done():
		return false
	}
}

// Tickers returns how many tickers have been created.
func (c *ManualClock) Tickers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.tickers)
}

type manualTicker struct {
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (t *manualTicker) C() <-chan time.Time { return t.ch }

func (t *manualTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}
