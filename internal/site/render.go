package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/pnaconstructions/pnasite/internal/carousel"
	"github.com/pnaconstructions/pnasite/internal/clock"
	"github.com/pnaconstructions/pnasite/internal/contact"
	"github.com/pnaconstructions/pnasite/internal/content"
	"github.com/pnaconstructions/pnasite/internal/mailrelay"
	"github.com/pnaconstructions/pnasite/internal/reveal"
)

// Carousel ids used in markup and page-session frames.
const (
	HeroCarousel     = "hero-gallery"
	ShowcaseCarousel = "project-showcase"
)

// Page is one routable page of the site.
type Page struct {
	Path  string
	Title string
	File  string // export path relative to the output dir

	body string
}

// Pages lists the site pages in navigation order.
var Pages = []Page{
	{Path: "/", Title: "Home", File: "index.html", body: homeTemplate},
	{Path: "/about", Title: "About Us", File: "about/index.html", body: aboutTemplate},
	{Path: "/projects", Title: "Projects", File: "projects/index.html", body: projectsTemplate},
}

// Slide is one carousel item as rendered.
type Slide struct {
	Src     string `json:"src"`
	Alt     string `json:"alt"`
	Title   string `json:"title,omitempty"`
	Caption string `json:"caption,omitempty"`
}

// carouselSpec is the slideshow a page mounts.
type carouselSpec struct {
	ID         string
	Slides     []Slide
	Thumbnails bool
}

type carouselView struct {
	carouselSpec
	Index      int
	Position   string
	Indicators []bool
	IntervalMS int64
}

type relayView struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// pageData holds the data passed to the layout template.
type pageData struct {
	Site     *content.Site
	Page     string
	Title    string
	Carousel *carouselView
	Groups   []content.ProjectGroup
	Form     contact.Fields
	Status   contact.Status
	Relay    *relayView
	Year     int
}

// Renderer renders the site pages. Every rendered page is annotated so
// each scroll-reveal target carries a stable id.
type Renderer struct {
	site      *content.Site
	interval  time.Duration
	clock     clock.Clock
	relay     *relayView
	tmpls     map[string]*template.Template
	elements  map[string][]reveal.Element
	carousels map[string][]carouselSpec
}

var funcs = template.FuncMap{
	"inc":  func(i int) int { return i + 1 },
	"icon": icon,
}

// NewRenderer parses the page templates and computes each page's reveal
// watch set. interval is the carousel auto-advance period advertised to
// the browser.
func NewRenderer(site *content.Site, interval time.Duration, clk clock.Clock) (*Renderer, error) {
	if clk == nil {
		clk = clock.Real()
	}
	base, err := template.New("layout").Funcs(funcs).Parse(layoutTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}
	for _, partial := range []string{carouselTemplate, contactTemplate} {
		if _, err := base.Parse(partial); err != nil {
			return nil, fmt.Errorf("parsing partial template: %w", err)
		}
	}

	r := &Renderer{
		site:      site,
		interval:  interval,
		clock:     clk,
		tmpls:     make(map[string]*template.Template),
		elements:  make(map[string][]reveal.Element),
		carousels: make(map[string][]carouselSpec),
	}
	for _, p := range Pages {
		t, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := t.Parse(p.body); err != nil {
			return nil, fmt.Errorf("parsing %s template: %w", p.Path, err)
		}
		r.tmpls[p.Path] = t
		r.carousels[p.Path] = carouselsFor(site, p.Path)

		var buf bytes.Buffer
		if err := r.execute(&buf, p.Path, contact.Fields{}, contact.Status{}); err != nil {
			return nil, err
		}
		els, err := reveal.Scan(&buf)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", p.Path, err)
		}
		r.elements[p.Path] = els
	}
	return r, nil
}

// WithRelay returns a renderer whose pages submit the contact form
// straight to the mail relay. Used for static exports, which have no
// server behind them.
func (r *Renderer) WithRelay(endpoint string, creds mailrelay.Credentials) *Renderer {
	cp := *r
	cp.relay = &relayView{
		Endpoint:   endpoint,
		ServiceID:  creds.ServiceID,
		TemplateID: creds.TemplateID,
		PublicKey:  creds.PublicKey,
	}
	return &cp
}

// Has reports whether path is a site page.
func (r *Renderer) Has(path string) bool {
	_, ok := r.tmpls[path]
	return ok
}

// Elements returns the scroll-reveal watch set of the page at path.
func (r *Renderer) Elements(path string) []reveal.Element {
	return append([]reveal.Element(nil), r.elements[path]...)
}

// Render writes the page at path with the given form state.
func (r *Renderer) Render(w io.Writer, path string, fields contact.Fields, status contact.Status) error {
	var buf bytes.Buffer
	if err := r.execute(&buf, path, fields, status); err != nil {
		return err
	}
	if _, err := reveal.Annotate(w, &buf); err != nil {
		return fmt.Errorf("annotating %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) execute(w io.Writer, path string, fields contact.Fields, status contact.Status) error {
	t, ok := r.tmpls[path]
	if !ok {
		return fmt.Errorf("unknown page %q", path)
	}
	data := pageData{
		Site:   r.site,
		Page:   path,
		Title:  pageTitle(path),
		Form:   fields,
		Status: status,
		Relay:  r.relay,
		Year:   r.clock.Now().Year(),
	}
	if specs := r.carousels[path]; len(specs) > 0 {
		spec := specs[0]
		data.Carousel = &carouselView{
			carouselSpec: spec,
			Position:     carousel.Position(0, len(spec.Slides)),
			Indicators:   carousel.Indicators(0, len(spec.Slides)),
			IntervalMS:   r.interval.Milliseconds(),
		}
	}
	if path == "/projects" {
		data.Groups = content.Categories(r.site.Portfolio)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return nil
}

func pageTitle(path string) string {
	for _, p := range Pages {
		if p.Path == path {
			return p.Title
		}
	}
	return ""
}

// carouselsFor returns the slideshows mounted by the page at path. The
// projects showcase only includes portfolio entries that have a photo.
func carouselsFor(site *content.Site, path string) []carouselSpec {
	switch path {
	case "/":
		slides := make([]Slide, 0, len(site.Slides))
		for _, img := range site.Slides {
			slides = append(slides, Slide{Src: img.Src, Alt: img.Alt})
		}
		return []carouselSpec{{ID: HeroCarousel, Slides: slides}}
	case "/projects":
		var slides []Slide
		for _, p := range content.WithImages(site.Portfolio) {
			slides = append(slides, Slide{Src: p.Image, Alt: p.Name, Title: p.Name, Caption: p.Location})
		}
		if len(slides) == 0 {
			return nil
		}
		return []carouselSpec{{ID: ShowcaseCarousel, Slides: slides, Thumbnails: true}}
	}
	return nil
}

var icons = map[string]string{
	content.IconLocation: `<path d="M12 22s-8-7.5-8-13a8 8 0 0 1 16 0c0 5.5-8 13-8 13z"/><circle cx="12" cy="9" r="3"/>`,
	content.IconPerson:   `<circle cx="12" cy="8" r="4"/><path d="M4 22c0-4.4 3.6-8 8-8s8 3.6 8 8"/>`,
	content.IconBuilding: `<rect x="4" y="2" width="16" height="20" rx="1"/><path d="M9 6h1M14 6h1M9 10h1M14 10h1M9 14h1M14 14h1M10 22v-4h4v4"/>`,
	content.IconShield:   `<path d="M12 2l8 4v6c0 5-3.5 9-8 10-4.5-1-8-5-8-10V6z"/>`,
	content.IconStar:     `<path d="M12 2l3 7 7 .6-5.3 4.7 1.6 7.2L12 17.8 5.7 21.5l1.6-7.2L2 9.6 9 9z"/>`,
	"phone":              `<path d="M22 16.9v3a2 2 0 0 1-2.2 2A19.8 19.8 0 0 1 2.1 4.2 2 2 0 0 1 4.1 2h3a2 2 0 0 1 2 1.7c.1 1 .4 1.9.7 2.8a2 2 0 0 1-.5 2.1L8 9.9a16 16 0 0 0 6 6l1.3-1.3a2 2 0 0 1 2.1-.4c.9.3 1.8.6 2.8.7a2 2 0 0 1 1.7 2z"/>`,
	"mail":               `<rect x="2" y="4" width="20" height="16" rx="2"/><path d="M22 6l-10 7L2 6"/>`,
	"clock":              `<circle cx="12" cy="12" r="10"/><path d="M12 6v6l4 2"/>`,
}

// icon returns the inline SVG for name, or nothing for unknown names.
func icon(name string) template.HTML {
	paths, ok := icons[name]
	if !ok {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<svg class="icon" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" aria-hidden="true">`)
	b.WriteString(paths)
	b.WriteString(`</svg>`)
	return template.HTML(b.String())
}
