package site

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pnaconstructions/pnasite/internal/carousel"
	"github.com/pnaconstructions/pnasite/internal/contact"
	"github.com/pnaconstructions/pnasite/internal/reveal"
)

const writeWait = 10 * time.Second

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// clientFrame is the incoming WebSocket message format.
type clientFrame struct {
	Type     string        `json:"type"` // "mount", "viewport" or "carousel"
	Page     string        `json:"page,omitempty"`
	Viewport reveal.Rect   `json:"viewport"`
	Elements []elementRect `json:"elements,omitempty"`
	Carousel string        `json:"carousel,omitempty"`
	Action   string        `json:"action,omitempty"` // "next", "previous" or "goto"
	Index    int           `json:"index,omitempty"`
}

type elementRect struct {
	ID   string      `json:"id"`
	Rect reveal.Rect `json:"rect"`
}

type mountedFrame struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Carousels map[string]int `json:"carousels"`
	Elements  []string       `json:"elements"`
}

type slideFrame struct {
	Type     string `json:"type"`
	Carousel string `json:"carousel"`
	Index    int    `json:"index"`
	Position string `json:"position"`
}

type revealFrame struct {
	Type string   `json:"type"`
	IDs  []string `json:"ids"`
}

type errorFrame struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// session is one mounted page: its slideshows, its reveal observer and its
// contact form. It lives exactly as long as the WebSocket connection.
type session struct {
	id   string
	page string
	conn *websocket.Conn

	writeMu sync.Mutex

	carousels map[string]*carousel.Controller[Slide]
	source    *reveal.GeometrySource
	observer  *reveal.Observer
	form      *contact.Form

	cancel  context.CancelFunc
	runDone chan struct{}
}

func (s *Site) handleSession(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("site: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var sess *session
	defer func() {
		if sess != nil {
			s.unmount(sess)
		}
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) && s.opts.Verbose {
				log.Printf("site: websocket read: %v", err)
			}
			return
		}

		var f clientFrame
		if err := json.Unmarshal(msg, &f); err != nil {
			s.sendError(conn, sess, "invalid message format")
			continue
		}

		if f.Type == "mount" {
			if sess != nil {
				s.sendError(conn, sess, "session already mounted")
				continue
			}
			sess, err = s.mount(ctx, conn, f.Page)
			if err != nil {
				s.sendError(conn, nil, err.Error())
			}
			continue
		}
		if sess == nil {
			s.sendError(conn, nil, "session not mounted")
			continue
		}

		switch f.Type {
		case "viewport":
			rects := make(map[string]reveal.Rect, len(f.Elements))
			for _, el := range f.Elements {
				rects[el.ID] = el.Rect
			}
			if err := sess.source.Report(ctx, f.Viewport, rects); err != nil {
				return
			}
		case "carousel":
			if err := sess.navigate(f.Carousel, f.Action, f.Index); err != nil {
				sess.send(errorFrame{Type: "error", Message: err.Error()})
			}
		default:
			sess.send(errorFrame{Type: "error", Message: "unknown message type: " + f.Type})
		}
	}
}

// mount builds the page session for page and announces it to the client.
func (s *Site) mount(ctx context.Context, conn *websocket.Conn, page string) (*session, error) {
	if !s.renderer.Has(page) {
		return nil, fmt.Errorf("unknown page: %q", page)
	}

	sess := &session{
		id:        uuid.New().String(),
		page:      page,
		conn:      conn,
		carousels: make(map[string]*carousel.Controller[Slide]),
		source:    reveal.NewGeometrySource(16),
		form:      contact.NewForm(),
		runDone:   make(chan struct{}),
	}
	sess.form.SetVerbose(s.opts.Verbose)

	opts := []carousel.Option{
		carousel.WithAutoAdvance(s.opts.Interval),
		carousel.WithClock(s.opts.Clock),
	}
	if s.opts.ResetOnNavigate {
		opts = append(opts, carousel.WithResetOnNavigate())
	}
	for _, spec := range s.renderer.carousels[page] {
		c, err := carousel.New(spec.Slides, opts...)
		if err != nil {
			sess.closeCarousels()
			return nil, fmt.Errorf("carousel %s: %w", spec.ID, err)
		}
		id, n := spec.ID, c.Len()
		c.OnChange(func(index int) {
			sess.send(slideFrame{Type: "slide", Carousel: id, Index: index, Position: carousel.Position(index, n)})
		})
		sess.carousels[id] = c
	}

	obs, err := reveal.Mount(sess.source, s.renderer.Elements(page), s.opts.Reveal)
	if err != nil {
		sess.closeCarousels()
		return nil, err
	}
	obs.OnReveal(func(els []reveal.Element) {
		ids := make([]string, len(els))
		for i, el := range els {
			ids[i] = el.ID
		}
		sess.send(revealFrame{Type: "reveal", IDs: ids})
	})
	sess.observer = obs

	runCtx, cancel := context.WithCancel(ctx)
	sess.cancel = cancel
	go func() {
		defer close(sess.runDone)
		obs.Run(runCtx)
	}()

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		s.teardown(sess)
		return nil, fmt.Errorf("server shutting down")
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	if s.opts.Verbose {
		log.Printf("site: session %s mounted %s", sess.id, page)
	}

	frame := mountedFrame{
		Type:      "mounted",
		SessionID: sess.id,
		Carousels: make(map[string]int, len(sess.carousels)),
		Elements:  make([]string, 0, len(obs.Elements())),
	}
	for id, c := range sess.carousels {
		frame.Carousels[id] = c.Index()
	}
	for _, el := range obs.Elements() {
		frame.Elements = append(frame.Elements, el.ID)
	}
	sess.send(frame)
	return sess, nil
}

// unmount discards the session and releases its timers and observations.
func (s *Site) unmount(sess *session) {
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	s.teardown(sess)
	if s.opts.Verbose {
		log.Printf("site: session %s unmounted", sess.id)
	}
}

func (s *Site) teardown(sess *session) {
	sess.cancel()
	<-sess.runDone
	sess.closeCarousels()
	sess.observer.Close()
}

func (s *Site) sendError(conn *websocket.Conn, sess *session, message string) {
	if sess != nil {
		sess.send(errorFrame{Type: "error", Message: message})
		return
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(errorFrame{Type: "error", Message: message}); err != nil && s.opts.Verbose {
		log.Printf("site: websocket write: %v", err)
	}
}

func (sess *session) navigate(id, action string, index int) error {
	c, ok := sess.carousels[id]
	if !ok {
		return fmt.Errorf("unknown carousel: %q", id)
	}
	switch action {
	case "next":
		c.Next()
	case "previous":
		c.Previous()
	case "goto":
		return c.GoTo(index)
	default:
		return fmt.Errorf("unknown carousel action: %q", action)
	}
	return nil
}

func (sess *session) closeCarousels() {
	for _, c := range sess.carousels {
		c.Close()
	}
}

// send writes one frame. Writes from the read loop, the carousel timers
// and the observer are serialized here.
func (sess *session) send(v any) {
	sess.writeMu.Lock()
	defer sess.writeMu.Unlock()
	sess.conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := sess.conn.WriteJSON(v); err != nil {
		log.Printf("site: session %s write: %v", sess.id, err)
	}
}
