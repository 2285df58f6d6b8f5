package reveal

import (
	"context"
	"sort"
	"sync"
)

// GeometrySource is an IntersectionSource driven by layout reports: the
// viewport rectangle plus the bounding rectangle of each element. It
// computes intersection with the observed options and emits a batch for
// every report that changes some element's state.
type GeometrySource struct {
	mu       sync.Mutex
	observed map[string]Options
	last     map[string]bool
	entries  chan []Entry
}

// NewGeometrySource returns a source whose entry channel buffers up to
// buffer batches.
func NewGeometrySource(buffer int) *GeometrySource {
	return &GeometrySource{
		observed: make(map[string]Options),
		last:     make(map[string]bool),
		entries:  make(chan []Entry, buffer),
	}
}

// Observe starts computing intersection for el.
func (s *GeometrySource) Observe(el Element, opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observed[el.ID] = opts
	return nil
}

// Unobserve stops reporting on the element.
func (s *GeometrySource) Unobserve(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observed, id)
	delete(s.last, id)
}

// Observed returns the number of elements currently observed.
func (s *GeometrySource) Observed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observed)
}

// Entries returns the batch channel.
func (s *GeometrySource) Entries() <-chan []Entry { return s.entries }

// Compute returns the entries for observed elements in rects whose
// intersecting state changed since the previous report. Elements first
// seen are always reported. Entries are sorted by element id.
func (s *GeometrySource) Compute(viewport Rect, rects map[string]Rect) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var batch []Entry
	for id, r := range rects {
		opts, ok := s.observed[id]
		if !ok {
			continue
		}
		ratio := opts.Ratio(r, viewport)
		in := opts.Intersecting(r, viewport)
		if prev, seen := s.last[id]; seen && prev == in {
			continue
		}
		s.last[id] = in
		batch = append(batch, Entry{ElementID: id, Intersecting: in, Ratio: ratio})
	}
	sort.Slice(batch, func(i, j int) bool { return batch[i].ElementID < batch[j].ElementID })
	return batch
}

// Report computes a batch and delivers it on the entry channel. It blocks
// while the channel is full until ctx is done.
func (s *GeometrySource) Report(ctx context.Context, viewport Rect, rects map[string]Rect) error {
	batch := s.Compute(viewport, rects)
	if len(batch) == 0 {
		return nil
	}
	select {
	case s.entries <- batch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
