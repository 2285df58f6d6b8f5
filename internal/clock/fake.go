package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a manually advanced Clock. Timer callbacks fire synchronously
// from Advance, in deadline order. All methods are safe for concurrent use.
type Fake struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

// NewFake returns a Fake starting at a fixed epoch.
func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *Fake) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Every registers a repeating timer whose first deadline is one period
// from the current fake time.
func (c *Fake) Every(period time.Duration, fn func()) Timer {
	if period <= 0 {
		panic("clock: non-positive period")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, period: period, next: c.now.Add(period), fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Active returns the number of timers that have not been stopped.
func (c *Fake) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}

// Advance moves the clock forward by d, firing every timer deadline that
// falls inside the window.
func (c *Fake) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	c.mu.Unlock()

	for {
		c.mu.Lock()
		t := c.earliestLocked(target)
		if t == nil {
			c.now = target
			c.mu.Unlock()
			return
		}
		c.now = t.next
		t.next = t.next.Add(t.period)
		fn := t.fn
		c.mu.Unlock()

		fn()
	}
}

func (c *Fake) earliestLocked(target time.Time) *fakeTimer {
	if len(c.timers) == 0 {
		return nil
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		return c.timers[i].next.Before(c.timers[j].next)
	})
	if t := c.timers[0]; !t.next.After(target) {
		return t
	}
	return nil
}

func (c *Fake) remove(t *fakeTimer) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, other := range c.timers {
		if other == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

type fakeTimer struct {
	clock  *Fake
	period time.Duration
	next   time.Time
	fn     func()
}

func (t *fakeTimer) Stop() { t.clock.remove(t) }
