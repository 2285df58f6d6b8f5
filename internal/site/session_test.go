package site

import (
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pnaconstructions/pnasite/internal/reveal"
)

// testFrame decodes any server frame.
type testFrame struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Carousels map[string]int `json:"carousels"`
	Elements  []string       `json:"elements"`
	Carousel  string         `json:"carousel"`
	Index     int            `json:"index"`
	Position  string         `json:"position"`
	IDs       []string       `json:"ids"`
	Message   string         `json:"message"`
}

func dialSession(t *testing.T, env *testEnv) *websocket.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(env.server.URL, "http") + "/ws/page"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) testFrame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var f testFrame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("read: %v", err)
	}
	return f
}

func writeFrame(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	if err := conn.WriteJSON(v); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func mount(t *testing.T, conn *websocket.Conn, page string) testFrame {
	t.Helper()
	writeFrame(t, conn, clientFrame{Type: "mount", Page: page})
	f := readFrame(t, conn)
	if f.Type != "mounted" {
		t.Fatalf("frame type = %q (%s), want mounted", f.Type, f.Message)
	}
	return f
}

func TestSessionMount(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)

	f := mount(t, conn, "/")
	if f.SessionID == "" {
		t.Error("expected a session id")
	}
	if idx, ok := f.Carousels[HeroCarousel]; !ok || idx != 0 {
		t.Errorf("carousels = %v, want %s at 0", f.Carousels, HeroCarousel)
	}
	if len(f.Elements) == 0 || f.Elements[0] != "reveal-1" {
		t.Errorf("elements = %v", f.Elements)
	}
	if got := env.site.Sessions(); got != 1 {
		t.Errorf("Sessions() = %d, want 1", got)
	}
	if got := env.clock.Active(); got != 1 {
		t.Errorf("active timers = %d, want 1", got)
	}
}

func TestSessionAboutHasNoCarousel(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)

	f := mount(t, conn, "/about")
	if len(f.Carousels) != 0 {
		t.Errorf("carousels = %v, want none", f.Carousels)
	}
	if env.clock.Active() != 0 {
		t.Error("about page should not start a timer")
	}
}

func TestSessionAutoAdvancePushesSlides(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)
	mount(t, conn, "/")

	env.clock.Advance(4 * time.Second)
	f := readFrame(t, conn)
	if f.Type != "slide" || f.Carousel != HeroCarousel || f.Index != 1 || f.Position != "2 / 4" {
		t.Fatalf("frame = %+v, want slide to 1", f)
	}

	env.clock.Advance(12 * time.Second)
	for _, want := range []int{2, 3, 0} {
		f := readFrame(t, conn)
		if f.Index != want {
			t.Errorf("index = %d, want %d", f.Index, want)
		}
	}
}

func TestSessionCarouselNavigation(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)
	mount(t, conn, "/projects")

	steps := []struct {
		frame clientFrame
		want  int
	}{
		{clientFrame{Type: "carousel", Carousel: ShowcaseCarousel, Action: "previous"}, 7},
		{clientFrame{Type: "carousel", Carousel: ShowcaseCarousel, Action: "next"}, 0},
		{clientFrame{Type: "carousel", Carousel: ShowcaseCarousel, Action: "goto", Index: 5}, 5},
	}
	for _, s := range steps {
		writeFrame(t, conn, s.frame)
		f := readFrame(t, conn)
		if f.Type != "slide" || f.Index != s.want {
			t.Errorf("%s: frame = %+v, want index %d", s.frame.Action, f, s.want)
		}
	}

	writeFrame(t, conn, clientFrame{Type: "carousel", Carousel: ShowcaseCarousel, Action: "goto", Index: 8})
	if f := readFrame(t, conn); f.Type != "error" {
		t.Errorf("out of range goto: frame = %+v, want error", f)
	}
	writeFrame(t, conn, clientFrame{Type: "carousel", Carousel: "nope", Action: "next"})
	if f := readFrame(t, conn); f.Type != "error" {
		t.Errorf("unknown carousel: frame = %+v, want error", f)
	}

	// The rejected goto left the index alone.
	writeFrame(t, conn, clientFrame{Type: "carousel", Carousel: ShowcaseCarousel, Action: "next"})
	if f := readFrame(t, conn); f.Index != 6 {
		t.Errorf("index = %d, want 6", f.Index)
	}
}

func TestSessionRevealsOnViewport(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)
	m := mount(t, conn, "/")
	if len(m.Elements) < 2 {
		t.Fatalf("need two elements, got %v", m.Elements)
	}
	first, second := m.Elements[0], m.Elements[1]
	viewport := reveal.Rect{Width: 1000, Height: 800}

	writeFrame(t, conn, clientFrame{
		Type:     "viewport",
		Viewport: viewport,
		Elements: []elementRect{
			{ID: first, Rect: reveal.Rect{Y: 100, Width: 200, Height: 100}},
			{ID: second, Rect: reveal.Rect{Y: 2000, Width: 200, Height: 100}},
		},
	})
	f := readFrame(t, conn)
	if f.Type != "reveal" || len(f.IDs) != 1 || f.IDs[0] != first {
		t.Fatalf("frame = %+v, want reveal of %s", f, first)
	}

	writeFrame(t, conn, clientFrame{
		Type:     "viewport",
		Viewport: viewport,
		Elements: []elementRect{
			{ID: first, Rect: reveal.Rect{Y: -500, Width: 200, Height: 100}},
			{ID: second, Rect: reveal.Rect{Y: 300, Width: 200, Height: 100}},
		},
	})
	f = readFrame(t, conn)
	if f.Type != "reveal" || len(f.IDs) != 1 || f.IDs[0] != second {
		t.Fatalf("frame = %+v, want reveal of %s only", f, second)
	}
}

func TestSessionRequiresMount(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)

	writeFrame(t, conn, clientFrame{Type: "viewport"})
	if f := readFrame(t, conn); f.Type != "error" || f.Message != "session not mounted" {
		t.Errorf("frame = %+v", f)
	}

	writeFrame(t, conn, clientFrame{Type: "mount", Page: "/missing"})
	if f := readFrame(t, conn); f.Type != "error" {
		t.Errorf("unknown page: frame = %+v", f)
	}

	mount(t, conn, "/")
	writeFrame(t, conn, clientFrame{Type: "mount", Page: "/"})
	if f := readFrame(t, conn); f.Type != "error" || f.Message != "session already mounted" {
		t.Errorf("second mount: frame = %+v", f)
	}
}

func TestSessionUnmountReleasesTimers(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)
	mount(t, conn, "/projects")

	if env.clock.Active() != 1 {
		t.Fatalf("active timers = %d, want 1", env.clock.Active())
	}
	conn.Close()

	deadline := time.Now().Add(5 * time.Second)
	for env.site.Sessions() != 0 || env.clock.Active() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("sessions = %d, timers = %d after disconnect", env.site.Sessions(), env.clock.Active())
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func TestCloseEndsSessions(t *testing.T) {
	env := setupTest(t, nil)
	conn := dialSession(t, env)
	mount(t, conn, "/")

	env.site.Close()

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Fatal("expected the connection to be closed")
	}
}
