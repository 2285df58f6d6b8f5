// Package reveal marks page elements visible the first time they scroll
// into the viewport.
//
// An Observer is mounted over a fixed watch set, usually produced by Scan
// from the page's rendered HTML, and fed batches of intersection entries by
// an IntersectionSource. Each element moves pending -> visible at most once.
// Close cancels every observation.
package reveal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Variant is the marker class that tags an element as animatable.
type Variant string

const (
	Fade      Variant = "fade-in-on-scroll"
	FadeUp    Variant = "fade-in-up-on-scroll"
	FadeLeft  Variant = "fade-in-left-on-scroll"
	FadeRight Variant = "fade-in-right-on-scroll"
	ScaleIn   Variant = "scale-in-on-scroll"
)

// Variants lists every marker class in lookup order.
var Variants = []Variant{Fade, FadeUp, FadeLeft, FadeRight, ScaleIn}

// VisibleClass is added to an element once it is revealed.
const VisibleClass = "visible"

// Options are fixed at mount time.
type Options struct {
	// Threshold is the fraction of the element that must be on screen.
	Threshold float64 `json:"threshold"`
	// RootMarginBottom adjusts the bottom edge of the viewport in pixels.
	// Negative values shrink the trigger region.
	RootMarginBottom float64 `json:"root_margin_bottom"`
}

// DefaultOptions matches the site's scroll animation settings.
func DefaultOptions() Options {
	return Options{Threshold: 0.1, RootMarginBottom: -50}
}

// Element is an opaque handle to a watched element.
type Element struct {
	ID      string  `json:"id"`
	Variant Variant `json:"variant"`
}

// Entry is one intersection notification.
type Entry struct {
	ElementID    string  `json:"id"`
	Intersecting bool    `json:"intersecting"`
	Ratio        float64 `json:"ratio"`
}

// IntersectionSource is the viewport capability the observer depends on.
type IntersectionSource interface {
	Observe(el Element, opts Options) error
	Unobserve(id string)
	// Entries delivers batches of notifications for observed elements.
	Entries() <-chan []Entry
}

// ErrDuplicateElement is returned when the watch set repeats an id.
var ErrDuplicateElement = errors.New("reveal: duplicate element id")

// Observer tracks the visibility state of a fixed watch set.
type Observer struct {
	source IntersectionSource
	opts   Options

	mu       sync.Mutex
	elements []Element
	visible  map[string]bool
	closed   bool
	onReveal []func([]Element)

	done      chan struct{}
	closeOnce sync.Once
}

// Mount registers every element with source and returns the observer.
// An empty watch set is valid.
func Mount(source IntersectionSource, elements []Element, opts Options) (*Observer, error) {
	o := &Observer{
		source:  source,
		opts:    opts,
		visible: make(map[string]bool, len(elements)),
		done:    make(chan struct{}),
	}
	for _, el := range elements {
		if _, dup := o.visible[el.ID]; dup {
			o.Close()
			return nil, fmt.Errorf("%w: %q", ErrDuplicateElement, el.ID)
		}
		if err := source.Observe(el, opts); err != nil {
			o.Close()
			return nil, fmt.Errorf("observing %q: %w", el.ID, err)
		}
		o.elements = append(o.elements, el)
		o.visible[el.ID] = false
	}
	return o, nil
}

// Options returns the mount-time options.
func (o *Observer) Options() Options { return o.opts }

// Elements returns the watch set in registration order.
func (o *Observer) Elements() []Element {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]Element(nil), o.elements...)
}

// Visible reports whether the element has been revealed.
func (o *Observer) Visible(id string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.visible[id]
}

// Pending returns the elements not yet revealed.
func (o *Observer) Pending() []Element {
	o.mu.Lock()
	defer o.mu.Unlock()
	var out []Element
	for _, el := range o.elements {
		if !o.visible[el.ID] {
			out = append(out, el)
		}
	}
	return out
}

// OnReveal registers fn to receive each non-empty set of newly revealed
// elements produced by Run.
func (o *Observer) OnReveal(fn func([]Element)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.onReveal = append(o.onReveal, fn)
}

// Process applies one batch and returns the elements that became visible.
// Entries that are not intersecting, unknown, or already visible are
// ignored. After Close it returns nil.
func (o *Observer) Process(batch []Entry) []Element {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.closed {
		return nil
	}
	var revealed []Element
	for _, e := range batch {
		if !e.Intersecting {
			continue
		}
		seen, watched := o.visible[e.ElementID]
		if !watched || seen {
			continue
		}
		o.visible[e.ElementID] = true
		for _, el := range o.elements {
			if el.ID == e.ElementID {
				revealed = append(revealed, el)
				break
			}
		}
	}
	return revealed
}

// Run consumes batches from the source until ctx is done or the observer
// is closed.
func (o *Observer) Run(ctx context.Context) {
	entries := o.source.Entries()
	for {
		select {
		case <-ctx.Done():
			return
		case <-o.done:
			return
		case batch, ok := <-entries:
			if !ok {
				return
			}
			revealed := o.Process(batch)
			if len(revealed) == 0 {
				continue
			}
			o.mu.Lock()
			listeners := slices.Clone(o.onReveal)
			o.mu.Unlock()
			for _, fn := range listeners {
				fn(revealed)
			}
		}
	}
}

// Close cancels every observation. Visibility flags are kept.
func (o *Observer) Close() {
	o.closeOnce.Do(func() {
		o.mu.Lock()
		o.closed = true
		elements := o.elements
		o.onReveal = nil
		o.mu.Unlock()

		for _, el := range elements {
			o.source.Unobserve(el.ID)
		}
		close(o.done)
	})
}
