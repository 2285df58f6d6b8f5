// Package clock provides the time source used by page components. The
// default implementation uses system time; tests inject a Fake to drive
// repeating timers deterministically.
package clock

import (
	"sync"
	"time"
)

// Clock creates repeating timers.
type Clock interface {
	Now() time.Time
	// Every calls fn once per period until the returned Timer is stopped.
	Every(period time.Duration, fn func()) Timer
}

// Timer is an owned handle to a repeating callback.
type Timer interface {
	// Stop cancels the timer. After Stop returns the callback will not run
	// again. Stop must not be called from inside the callback.
	Stop()
}

// Real returns a Clock backed by the runtime timer.
func Real() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Every(period time.Duration, fn func()) Timer {
	t := &realTimer{
		ticker: time.NewTicker(period),
		done:   make(chan struct{}),
	}
	go t.run(fn)
	return t
}

type realTimer struct {
	ticker *time.Ticker
	done   chan struct{}

	mu      sync.Mutex
	stopped bool
}

func (t *realTimer) run(fn func()) {
	for {
		select {
		case <-t.done:
			return
		case <-t.ticker.C:
			t.mu.Lock()
			if !t.stopped {
				fn()
			}
			t.mu.Unlock()
		}
	}
}

func (t *realTimer) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return
	}
	t.stopped = true
	t.ticker.Stop()
	close(t.done)
}
