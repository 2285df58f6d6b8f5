// Package carousel cycles a displayed index through a fixed sequence of
// items, either on a repeating timer or on explicit navigation.
//
// A Controller is created with index 0 and must be closed when its page is
// torn down; Close cancels the auto-advance timer so no transition happens
// after teardown.
package carousel

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/pnaconstructions/pnasite/internal/clock"
)

var (
	// ErrNoItems is returned when a controller is built over an empty sequence.
	ErrNoItems = errors.New("carousel: at least one item is required")
	// ErrIndexOutOfRange is returned by GoTo for an index outside [0, Len).
	ErrIndexOutOfRange = errors.New("carousel: index out of range")
)

// Option configures a Controller.
type Option func(*options)

type options struct {
	interval        time.Duration
	clock           clock.Clock
	resetOnNavigate bool
}

// WithAutoAdvance enables advancing to the next item every interval.
// A zero interval disables auto-advance.
func WithAutoAdvance(interval time.Duration) Option {
	return func(o *options) { o.interval = interval }
}

// WithClock sets the clock that drives auto-advance.
func WithClock(c clock.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithResetOnNavigate restarts the auto-advance phase whenever the index
// changes through Next, Previous or GoTo. By default manual navigation
// leaves the timer on its original schedule.
func WithResetOnNavigate() Option {
	return func(o *options) { o.resetOnNavigate = true }
}

// Controller maintains the current index over a fixed sequence of items.
// It is safe for concurrent use.
type Controller[T any] struct {
	items []T
	opts  options

	mu        sync.Mutex
	index     int
	timer     clock.Timer
	closed    bool
	listeners []func(index int)

	// notifyMu keeps listener calls in transition order.
	notifyMu sync.Mutex
}

// New creates a controller over a snapshot of items. The auto-advance timer,
// if configured, starts immediately.
func New[T any](items []T, opts ...Option) (*Controller[T], error) {
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	o := options{clock: clock.Real()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.interval < 0 {
		return nil, fmt.Errorf("carousel: negative interval %s", o.interval)
	}

	snapshot := make([]T, len(items))
	copy(snapshot, items)

	c := &Controller[T]{items: snapshot, opts: o}
	if o.interval > 0 {
		c.timer = o.clock.Every(o.interval, c.tick)
	}
	return c, nil
}

// Len returns the number of items.
func (c *Controller[T]) Len() int { return len(c.items) }

// Items returns a copy of the item sequence.
func (c *Controller[T]) Items() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Interval returns the auto-advance period, or zero when disabled.
func (c *Controller[T]) Interval() time.Duration { return c.opts.interval }

// Index returns the current index.
func (c *Controller[T]) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Current returns the active item.
func (c *Controller[T]) Current() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items[c.index]
}

// Position returns the human readable counter, e.g. "2 / 4".
func (c *Controller[T]) Position() string {
	return Position(c.Index(), c.Len())
}

// Indicators returns one flag per item with only the active item set.
func (c *Controller[T]) Indicators() []bool {
	return Indicators(c.Index(), c.Len())
}

// OnChange registers fn to be called with the new index after every
// transition. Listeners run outside the controller lock.
func (c *Controller[T]) OnChange(fn func(index int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, fn)
}

// Next advances to the following item, wrapping to the first.
func (c *Controller[T]) Next() {
	c.navigate(func(i, n int) int { return (i + 1) % n })
}

// Previous steps back to the preceding item, wrapping to the last.
func (c *Controller[T]) Previous() {
	c.navigate(func(i, n int) int { return (i - 1 + n) % n })
}

// GoTo jumps directly to index. An index outside [0, Len) is a caller
// defect: the state is left unchanged and ErrIndexOutOfRange is returned.
func (c *Controller[T]) GoTo(index int) error {
	if index < 0 || index >= len(c.items) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, len(c.items))
	}
	c.navigate(func(int, int) int { return index })
	return nil
}

// Close cancels the auto-advance timer. It is safe to call more than once.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	timer := c.timer
	c.timer = nil
	c.listeners = nil
	c.mu.Unlock()

	if timer != nil {
		timer.Stop()
	}
}

// Closed reports whether Close has been called.
func (c *Controller[T]) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

func (c *Controller[T]) tick() {
	c.transition(func(i, n int) int { return (i + 1) % n })
}

func (c *Controller[T]) navigate(step func(i, n int) int) {
	if !c.transition(step) || !c.opts.resetOnNavigate {
		return
	}
	c.restartTimer()
}

// transition applies step under the lock and notifies listeners. It reports
// whether a transition happened.
func (c *Controller[T]) transition(step func(i, n int) int) bool {
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	c.index = step(c.index, len(c.items))
	index := c.index
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn(index)
	}
	return true
}

func (c *Controller[T]) restartTimer() {
	c.mu.Lock()
	if c.closed || c.timer == nil {
		c.mu.Unlock()
		return
	}
	old := c.timer
	c.timer = nil
	c.mu.Unlock()

	old.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed || c.timer != nil {
		return
	}
	c.timer = c.opts.clock.Every(c.opts.interval, c.tick)
}

// Position formats a one-based position counter.
func Position(index, n int) string {
	return fmt.Sprintf("%d / %d", index+1, n)
}

// Indicators returns n flags with only index set.
func Indicators(index, n int) []bool {
	out := make([]bool, n)
	if index >= 0 && index < n {
		out[index] = true
	}
	return out
}
