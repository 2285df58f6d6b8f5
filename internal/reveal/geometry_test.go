package reveal

import (
	"context"
	"math"
	"testing"
)

func TestIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 5, Y: 5, Width: 10, Height: 10}
	got := a.Intersect(b)
	if got != (Rect{X: 5, Y: 5, Width: 5, Height: 5}) {
		t.Errorf("Intersect = %+v", got)
	}
	far := Rect{X: 50, Y: 50, Width: 1, Height: 1}
	if a.Intersect(far).Area() != 0 {
		t.Error("disjoint rects should not overlap")
	}
}

func TestIntersecting(t *testing.T) {
	viewport := Rect{Width: 1000, Height: 800}
	opts := DefaultOptions()

	tests := []struct {
		name string
		el   Rect
		want bool
	}{
		{"fully inside", Rect{X: 0, Y: 100, Width: 200, Height: 200}, true},
		{"below viewport", Rect{X: 0, Y: 900, Width: 200, Height: 200}, false},
		{"above viewport", Rect{X: 0, Y: -300, Width: 200, Height: 200}, false},
		// 100px tall, top at 740: only 10px above the margin line at 750.
		{"just inside margin at threshold", Rect{X: 0, Y: 740, Width: 100, Height: 100}, true},
		// top at 745: 5% inside the adjusted root.
		{"under threshold", Rect{X: 0, Y: 745, Width: 100, Height: 100}, false},
		// inside the raw viewport but below the margin line.
		{"inside margin band", Rect{X: 0, Y: 760, Width: 100, Height: 30}, false},
		{"zero size inside", Rect{X: 10, Y: 10}, true},
		{"zero size outside", Rect{X: 10, Y: 790}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := opts.Intersecting(tt.el, viewport); got != tt.want {
				t.Errorf("Intersecting = %v (ratio %.3f), want %v", got, opts.Ratio(tt.el, viewport), tt.want)
			}
		})
	}
}

func TestRatio(t *testing.T) {
	opts := Options{Threshold: 0.5}
	viewport := Rect{Width: 100, Height: 100}
	got := opts.Ratio(Rect{X: 0, Y: 75, Width: 100, Height: 50}, viewport)
	if math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Ratio = %v, want 0.5", got)
	}
	if !opts.Intersecting(Rect{X: 0, Y: 75, Width: 100, Height: 50}, viewport) {
		t.Error("expected intersecting at exactly the threshold")
	}
}

func TestRootClampsHeight(t *testing.T) {
	opts := Options{RootMarginBottom: -500}
	if h := opts.Root(Rect{Width: 10, Height: 100}).Height; h != 0 {
		t.Errorf("root height = %v, want 0", h)
	}
}

func TestGeometrySourceComputeReportsChanges(t *testing.T) {
	src := NewGeometrySource(1)
	opts := DefaultOptions()
	_ = src.Observe(Element{ID: "a"}, opts)
	_ = src.Observe(Element{ID: "b"}, opts)

	viewport := Rect{Width: 1000, Height: 800}
	rects := map[string]Rect{
		"a":     {Y: 100, Width: 100, Height: 100},
		"b":     {Y: 2000, Width: 100, Height: 100},
		"other": {Y: 0, Width: 100, Height: 100},
	}

	batch := src.Compute(viewport, rects)
	if len(batch) != 2 {
		t.Fatalf("first batch = %v, want 2 entries", batch)
	}
	if batch[0].ElementID != "a" || !batch[0].Intersecting {
		t.Errorf("batch[0] = %+v", batch[0])
	}
	if batch[1].ElementID != "b" || batch[1].Intersecting {
		t.Errorf("batch[1] = %+v", batch[1])
	}

	if again := src.Compute(viewport, rects); len(again) != 0 {
		t.Errorf("unchanged report produced %v", again)
	}

	rects["b"] = Rect{Y: 300, Width: 100, Height: 100}
	changed := src.Compute(viewport, rects)
	if len(changed) != 1 || changed[0].ElementID != "b" || !changed[0].Intersecting {
		t.Errorf("changed batch = %v", changed)
	}
}

func TestGeometrySourceUnobserve(t *testing.T) {
	src := NewGeometrySource(1)
	_ = src.Observe(Element{ID: "a"}, DefaultOptions())
	src.Unobserve("a")
	if src.Observed() != 0 {
		t.Fatalf("Observed = %d, want 0", src.Observed())
	}
	batch := src.Compute(Rect{Width: 10, Height: 100}, map[string]Rect{"a": {Width: 1, Height: 1}})
	if len(batch) != 0 {
		t.Errorf("unobserved element reported: %v", batch)
	}
}

func TestGeometrySourceReport(t *testing.T) {
	src := NewGeometrySource(1)
	_ = src.Observe(Element{ID: "a"}, DefaultOptions())
	ctx := context.Background()

	if err := src.Report(ctx, Rect{Width: 100, Height: 800}, map[string]Rect{"a": {Y: 10, Width: 10, Height: 10}}); err != nil {
		t.Fatalf("Report: %v", err)
	}
	batch := <-src.Entries()
	if len(batch) != 1 || !batch[0].Intersecting {
		t.Errorf("batch = %v", batch)
	}

	// Full channel and a cancelled context.
	_ = src.Report(ctx, Rect{Width: 100, Height: 800}, map[string]Rect{"a": {Y: 5000, Width: 10, Height: 10}})
	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	err := src.Report(cancelled, Rect{Width: 100, Height: 800}, map[string]Rect{"a": {Y: 10, Width: 10, Height: 10}})
	if err == nil {
		t.Error("expected context error when channel is full")
	}
}
