package reveal

import (
	"bytes"
	"strings"
	"testing"
)

const scanPage = `<!DOCTYPE html>
<html><head><title>t</title></head>
<body>
  <section id="about" class="py-20 fade-in-left-on-scroll">About</section>
  <div class="grid">
    <div class="text-center scale-in-on-scroll stagger-1">60+</div>
    <div class="text-center scale-in-on-scroll stagger-2">40+</div>
  </div>
  <h2 class="fade-in-up-on-scroll">Signature Work</h2>
  <p class="fade-in-right-on-scroll">Right</p>
  <p class="fade-in-on-scroll">Plain</p>
  <p class="fade-in-on-scrolling">Not a marker</p>
  <p class="visible">Not a marker either</p>
</body></html>`

func TestScanFindsAllVariants(t *testing.T) {
	els, err := Scan(strings.NewReader(scanPage))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	want := []Element{
		{ID: "about", Variant: FadeLeft},
		{ID: "reveal-2", Variant: ScaleIn},
		{ID: "reveal-3", Variant: ScaleIn},
		{ID: "reveal-4", Variant: FadeUp},
		{ID: "reveal-5", Variant: FadeRight},
		{ID: "reveal-6", Variant: Fade},
	}
	if len(els) != len(want) {
		t.Fatalf("Scan = %v, want %v", els, want)
	}
	for i := range want {
		if els[i] != want[i] {
			t.Errorf("els[%d] = %+v, want %+v", i, els[i], want[i])
		}
	}
}

func TestScanNoMarkers(t *testing.T) {
	els, err := Scan(strings.NewReader(`<html><body><p>plain</p></body></html>`))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(els) != 0 {
		t.Errorf("Scan = %v, want none", els)
	}
}

func TestAnnotateAssignsIDs(t *testing.T) {
	var buf bytes.Buffer
	els, err := Annotate(&buf, strings.NewReader(scanPage))
	if err != nil {
		t.Fatalf("Annotate: %v", err)
	}
	out := buf.String()
	for _, el := range els {
		if !strings.Contains(out, `id="`+el.ID+`"`) {
			t.Errorf("output missing id %q", el.ID)
		}
	}

	// Scanning the annotated output yields the same watch set.
	again, err := Scan(strings.NewReader(out))
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(again) != len(els) {
		t.Fatalf("rescan = %v, want %v", again, els)
	}
	for i := range els {
		if again[i] != els[i] {
			t.Errorf("rescan[%d] = %+v, want %+v", i, again[i], els[i])
		}
	}
}

func TestAnnotateBytes(t *testing.T) {
	out, els, err := AnnotateBytes([]byte(scanPage))
	if err != nil {
		t.Fatalf("AnnotateBytes: %v", err)
	}
	if len(els) != 6 {
		t.Errorf("len(els) = %d, want 6", len(els))
	}
	if !bytes.Contains(out, []byte(`id="reveal-6"`)) {
		t.Error("missing assigned id in output")
	}
}
