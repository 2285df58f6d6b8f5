package site

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pnaconstructions/pnasite/internal/clock"
	"github.com/pnaconstructions/pnasite/internal/contact"
	"github.com/pnaconstructions/pnasite/internal/reveal"
)

// siteJS is the browser script with the banner messages filled in.
var siteJS = strings.NewReplacer(
	"{{SUCCESS}}", contact.SuccessMessage,
	"{{ERROR}}", contact.ErrorMessage,
).Replace(jsContent)

// Options configures page sessions and asset serving.
type Options struct {
	Interval        time.Duration // carousel auto-advance period; zero disables
	ResetOnNavigate bool
	Reveal          reveal.Options
	Clock           clock.Clock
	AssetsDir       string // served under /images/
	Verbose         bool
}

// Site serves the pages, the contact endpoints and the page-session
// WebSocket.
type Site struct {
	renderer *Renderer
	sender   contact.Sender
	opts     Options

	mu       sync.Mutex
	sessions map[string]*session
	closed   bool
}

// New creates a Site. sender delivers contact form submissions.
func New(renderer *Renderer, sender contact.Sender, opts Options) *Site {
	if opts.Clock == nil {
		opts.Clock = clock.Real()
	}
	if opts.Reveal == (reveal.Options{}) {
		opts.Reveal = reveal.DefaultOptions()
	}
	return &Site{
		renderer: renderer,
		sender:   sender,
		opts:     opts,
		sessions: make(map[string]*session),
	}
}

// RegisterRoutes mounts the site on the given router.
func (s *Site) RegisterRoutes(r chi.Router) {
	for _, p := range Pages {
		r.Get(p.Path, s.pageHandler(p.Path))
	}
	r.Post("/contact", s.handleContactForm)
	r.Post("/api/contact", s.handleContactAPI)
	r.Get("/ws/page", s.handleSession)

	r.Get("/static/style.css", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/css; charset=utf-8")
		w.Write([]byte(cssContent))
	})
	r.Get("/static/site.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Write([]byte(siteJS))
	})
	if s.opts.AssetsDir != "" {
		r.Handle("/images/*", http.FileServer(http.Dir(s.opts.AssetsDir)))
	}
}

// Sessions returns the number of mounted page sessions.
func (s *Site) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Close ends every page session. New sessions are refused afterwards.
func (s *Site) Close() {
	s.mu.Lock()
	s.closed = true
	sessions := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		sessions = append(sessions, sess)
	}
	s.mu.Unlock()

	for _, sess := range sessions {
		sess.conn.Close()
	}
}

func (s *Site) pageHandler(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.writePage(w, path, contact.Fields{}, contact.Status{})
	}
}

func (s *Site) writePage(w http.ResponseWriter, path string, fields contact.Fields, status contact.Status) {
	var buf bytes.Buffer
	if err := s.renderer.Render(&buf, path, fields, status); err != nil {
		log.Printf("site: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// handleContactForm is the no-script path: the form posts here and the
// page it came from is rendered again with the outcome banner.
func (s *Site) handleContactForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	page := r.PostForm.Get("page")
	if !s.renderer.Has(page) {
		page = "/"
	}

	form := contact.NewForm()
	form.SetVerbose(s.opts.Verbose)
	for _, name := range []string{"name", "email", "phone", "message"} {
		form.Set(name, r.PostForm.Get(name))
	}
	if err := form.Submit(r.Context(), s.sender); err != nil && s.opts.Verbose {
		log.Printf("site: contact form on %s: %v", page, err)
	}

	s.writePage(w, page, form.Fields(), form.Status())
}

// contactRequest is the JSON body for POST /api/contact.
type contactRequest struct {
	SessionID string `json:"session_id,omitempty"`
	contact.Fields
}

// contactResponse is the JSON response for POST /api/contact.
type contactResponse struct {
	Status  contact.StatusKind `json:"status"`
	Message string             `json:"message"`
}

func (s *Site) handleContactAPI(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	form := s.sessionForm(req.SessionID)
	if form == nil {
		form = contact.NewForm()
		form.SetVerbose(s.opts.Verbose)
	}
	err := form.SubmitFields(r.Context(), s.sender, req.Fields)
	switch {
	case errors.Is(err, contact.ErrSubmitInProgress):
		writeJSON(w, http.StatusConflict, contactResponse{Status: contact.StatusError, Message: err.Error()})
		return
	case err != nil:
		st := form.Status()
		writeJSON(w, http.StatusBadGateway, contactResponse{Status: st.Kind, Message: st.Message})
		return
	}
	st := form.Status()
	writeJSON(w, http.StatusOK, contactResponse{Status: st.Kind, Message: st.Message})
}

// sessionForm returns the contact form of a mounted session, or nil.
func (s *Site) sessionForm(id string) *contact.Form {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		return sess.form
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
