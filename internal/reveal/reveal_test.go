package reveal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fakeSource records observations and lets tests push batches.
type fakeSource struct {
	mu         sync.Mutex
	observed   map[string]Options
	unobserved []string
	failOn     string
	entries    chan []Entry
}

func newFakeSource() *fakeSource {
	return &fakeSource{observed: make(map[string]Options), entries: make(chan []Entry, 8)}
}

func (s *fakeSource) Observe(el Element, opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el.ID == s.failOn {
		return errors.New("boom")
	}
	s.observed[el.ID] = opts
	return nil
}

func (s *fakeSource) Unobserve(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.observed, id)
	s.unobserved = append(s.unobserved, id)
}

func (s *fakeSource) Entries() <-chan []Entry { return s.entries }

func (s *fakeSource) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.observed)
}

func testElements() []Element {
	return []Element{
		{ID: "about", Variant: FadeLeft},
		{ID: "stats", Variant: ScaleIn},
		{ID: "contact", Variant: FadeUp},
	}
}

func TestMountRegistersEveryElement(t *testing.T) {
	src := newFakeSource()
	o, err := Mount(src, testElements(), DefaultOptions())
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer o.Close()

	if src.count() != 3 {
		t.Errorf("observed %d elements, want 3", src.count())
	}
	for _, el := range testElements() {
		if o.Visible(el.ID) {
			t.Errorf("%s visible at mount", el.ID)
		}
	}
	if got := src.observed["about"]; got != DefaultOptions() {
		t.Errorf("options = %+v, want defaults", got)
	}
}

func TestMountEmptyIsNoop(t *testing.T) {
	src := newFakeSource()
	o, err := Mount(src, nil, DefaultOptions())
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	if len(o.Pending()) != 0 {
		t.Errorf("Pending = %v, want none", o.Pending())
	}
	if got := o.Process([]Entry{{ElementID: "x", Intersecting: true}}); got != nil {
		t.Errorf("Process revealed %v on empty watch set", got)
	}
	o.Close()
}

func TestMountDuplicate(t *testing.T) {
	src := newFakeSource()
	els := append(testElements(), Element{ID: "about", Variant: Fade})
	_, err := Mount(src, els, DefaultOptions())
	if !errors.Is(err, ErrDuplicateElement) {
		t.Fatalf("err = %v, want ErrDuplicateElement", err)
	}
	if src.count() != 0 {
		t.Errorf("%d observations leaked after failed mount", src.count())
	}
}

func TestMountObserveFailureReleases(t *testing.T) {
	src := newFakeSource()
	src.failOn = "contact"
	if _, err := Mount(src, testElements(), DefaultOptions()); err == nil {
		t.Fatal("expected error")
	}
	if src.count() != 0 {
		t.Errorf("%d observations leaked after failed mount", src.count())
	}
}

func TestProcessRevealsOnce(t *testing.T) {
	src := newFakeSource()
	o, err := Mount(src, testElements(), DefaultOptions())
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	defer o.Close()

	got := o.Process([]Entry{
		{ElementID: "about", Intersecting: true},
		{ElementID: "stats", Intersecting: false},
	})
	if len(got) != 1 || got[0].ID != "about" {
		t.Fatalf("revealed %v, want [about]", got)
	}

	for i := 0; i < 3; i++ {
		if again := o.Process([]Entry{{ElementID: "about", Intersecting: true}}); len(again) != 0 {
			t.Fatalf("about revealed again: %v", again)
		}
	}

	o.Process([]Entry{{ElementID: "about", Intersecting: false}})
	if !o.Visible("about") {
		t.Error("about hidden by a non-intersecting entry")
	}
	if o.Visible("stats") {
		t.Error("stats revealed without intersecting")
	}
	if len(o.Pending()) != 2 {
		t.Errorf("Pending = %v, want 2 elements", o.Pending())
	}
}

func TestProcessIgnoresUnknown(t *testing.T) {
	src := newFakeSource()
	o, _ := Mount(src, testElements(), DefaultOptions())
	defer o.Close()
	if got := o.Process([]Entry{{ElementID: "footer", Intersecting: true}}); len(got) != 0 {
		t.Errorf("revealed unknown element: %v", got)
	}
}

func TestCloseUnobservesAll(t *testing.T) {
	src := newFakeSource()
	o, _ := Mount(src, testElements(), DefaultOptions())
	o.Process([]Entry{{ElementID: "stats", Intersecting: true}})

	o.Close()
	o.Close()

	if src.count() != 0 {
		t.Errorf("%d elements still observed", src.count())
	}
	if len(src.unobserved) != 3 {
		t.Errorf("unobserved %v, want 3 ids", src.unobserved)
	}
	if got := o.Process([]Entry{{ElementID: "about", Intersecting: true}}); got != nil {
		t.Errorf("Process after Close revealed %v", got)
	}
	if !o.Visible("stats") {
		t.Error("Close reset the visible flag")
	}
}

func TestRunDeliversReveals(t *testing.T) {
	src := newFakeSource()
	o, _ := Mount(src, testElements(), DefaultOptions())

	revealed := make(chan []Element, 4)
	o.OnReveal(func(els []Element) { revealed <- els })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		o.Run(ctx)
		close(done)
	}()

	src.entries <- []Entry{{ElementID: "contact", Intersecting: true}}
	src.entries <- []Entry{{ElementID: "contact", Intersecting: true}}
	src.entries <- []Entry{{ElementID: "stats", Intersecting: true}}

	first := <-revealed
	second := <-revealed
	if first[0].ID != "contact" || second[0].ID != "stats" {
		t.Errorf("reveals = %v, %v", first, second)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	o.Close()
}

func TestRunReturnsOnClose(t *testing.T) {
	src := newFakeSource()
	o, _ := Mount(src, testElements(), DefaultOptions())
	done := make(chan struct{})
	go func() {
		o.Run(context.Background())
		close(done)
	}()
	o.Close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after Close")
	}
}
