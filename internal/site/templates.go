package site

// layoutTemplate wraps every page: head, navigation, the page body, the
// shared contact section and the footer.
const layoutTemplate = `{{define "layout"}}<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} | {{.Site.Company}}</title>
  <link rel="icon" href="{{.Site.Logo}}">
  <link rel="stylesheet" href="/static/style.css">
  <noscript><style>.fade-in-on-scroll,.fade-in-up-on-scroll,.fade-in-left-on-scroll,.fade-in-right-on-scroll,.scale-in-on-scroll{opacity:1;transform:none}</style></noscript>
</head>
<body data-page="{{.Page}}"{{with .Relay}} data-relay-endpoint="{{.Endpoint}}" data-relay-service="{{.ServiceID}}" data-relay-template="{{.TemplateID}}" data-relay-key="{{.PublicKey}}"{{end}}>
  <header class="site-header">
    <div class="container nav-bar">
      <a href="/" class="brand"><img src="{{.Site.Logo}}" alt="{{.Site.Company}}" class="brand-logo"><span class="brand-tagline">{{.Site.Tagline}}</span></a>
      <nav class="nav-links">
        <a href="/"{{if eq .Page "/"}} class="active"{{end}}>Home</a>
        <a href="/about"{{if eq .Page "/about"}} class="active"{{end}}>About Us</a>
        <a href="/projects"{{if eq .Page "/projects"}} class="active"{{end}}>Projects</a>
        <a href="#contact" class="nav-cta">Contact Us</a>
      </nav>
      <button class="menu-toggle" id="menu-toggle" aria-label="Toggle menu" aria-expanded="false">
        <svg width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
          <line x1="3" y1="6" x2="21" y2="6"/><line x1="3" y1="12" x2="21" y2="12"/><line x1="3" y1="18" x2="21" y2="18"/>
        </svg>
      </button>
    </div>
    <nav class="mobile-menu" id="mobile-menu">
      <a href="/">Home</a>
      <a href="/about">About Us</a>
      <a href="/projects">Projects</a>
      <a href="#contact">Contact Us</a>
    </nav>
  </header>
  <main>
{{template "main" .}}
{{template "contact" .}}
  </main>
  <footer class="site-footer">
    <div class="container footer-grid">
      <div>
        <img src="{{.Site.FooterLogo}}" alt="{{.Site.Company}}" class="footer-logo">
        <p>{{.Site.Tagline}}</p>
      </div>
      <div>
        <h4>Quick Links</h4>
        <a href="/">Home</a>
        <a href="/about">About Us</a>
        <a href="/projects">Projects</a>
        <a href="#contact">Contact</a>
      </div>
      <div>
        <h4>Follow Us</h4>
        {{range .Site.Socials}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a>
        {{end}}
      </div>
    </div>
    <p class="copyright">&copy; {{.Year}} {{.Site.Company}}. All rights reserved.</p>
  </footer>
  <script src="/static/site.js"></script>
</body>
</html>
{{end}}`

// carouselTemplate renders one slideshow in its initial state. The browser
// script takes over the index once the page session is mounted.
const carouselTemplate = `{{define "carousel"}}<div class="carousel" data-carousel="{{.ID}}" data-count="{{len .Slides}}" data-interval="{{.IntervalMS}}">
  <div class="carousel-viewport">
    {{range $i, $s := .Slides}}<figure class="carousel-slide{{if eq $i $.Index}} active{{end}}" data-index="{{$i}}">
      <img src="{{$s.Src}}" alt="{{$s.Alt}}"{{if ne $i 0}} loading="lazy"{{end}}>
      {{if $s.Title}}<figcaption><h3>{{$s.Title}}</h3>{{if $s.Caption}}<p>{{$s.Caption}}</p>{{end}}</figcaption>{{end}}
    </figure>
    {{end}}
    <button class="carousel-arrow prev" data-action="previous" aria-label="Previous slide">&#8249;</button>
    <button class="carousel-arrow next" data-action="next" aria-label="Next slide">&#8250;</button>
    <span class="carousel-position">{{.Position}}</span>
  </div>
  <div class="carousel-dots">
    {{range $i, $on := .Indicators}}<button class="carousel-dot{{if $on}} active{{end}}" data-action="goto" data-index="{{$i}}" aria-label="Go to slide {{inc $i}}"></button>{{end}}
  </div>
  {{if .Thumbnails}}<div class="carousel-thumbs">
    {{range $i, $s := .Slides}}<button class="carousel-thumb{{if eq $i $.Index}} active{{end}}" data-action="goto" data-index="{{$i}}"><img src="{{$s.Src}}" alt="{{$s.Alt}}" loading="lazy"></button>{{end}}
  </div>{{end}}
</div>
{{end}}`

// contactTemplate is the form section shared by every page.
const contactTemplate = `{{define "contact"}}<section id="contact" class="section contact-section">
  <div class="container contact-grid">
    <div class="fade-in-left-on-scroll">
      <h2>Get In Touch</h2>
      <p>Ready to start your next project? Contact us today for a consultation and let's bring your vision to life.</p>
      <ul class="contact-info">
        <li>{{icon "phone"}} {{.Site.Contact.Phone}}</li>
        <li>{{icon "mail"}} {{.Site.Contact.Email}}</li>
        <li>{{icon "clock"}} {{.Site.Contact.Hours}}</li>
      </ul>
    </div>
    <form class="contact-form fade-in-right-on-scroll" id="contact-form" method="post" action="/contact#contact">
      <input type="hidden" name="page" value="{{.Page}}">
      <div class="form-status{{with .Status.Kind}} {{.}}{{end}}" id="form-status" role="status"{{if not .Status.Message}} hidden{{end}}>{{.Status.Message}}</div>
      <input type="text" name="name" placeholder="Your Name" value="{{.Form.Name}}" required>
      <input type="email" name="email" placeholder="Your Email" value="{{.Form.Email}}" required>
      <input type="tel" name="phone" placeholder="Your Phone" value="{{.Form.Phone}}">
      <textarea name="message" rows="5" placeholder="Your Message" required>{{.Form.Message}}</textarea>
      <button type="submit" class="btn btn-primary">Send Message</button>
    </form>
  </div>
</section>
{{end}}`

const homeTemplate = `{{define "main"}}<section class="hero" style="background-image:url('{{.Site.Hero.Background}}')">
  <div class="hero-overlay"></div>
  <div class="container hero-content fade-in-up-on-scroll">
    <h1>{{.Site.Hero.Title}}</h1>
    <p>{{.Site.Hero.Subtitle}}</p>
    <div class="hero-actions">
      <a href="/projects" class="btn btn-primary">View Our Projects</a>
      <a href="#contact" class="btn btn-outline">Get a Quote</a>
    </div>
  </div>
</section>

<section class="section overview">
  <div class="container overview-grid">
    <div class="fade-in-left-on-scroll">
      <h2>{{.Site.Overview.Title}}</h2>
      <div class="prose">{{.Site.Overview.Body}}</div>
      <div class="stats">
        {{range .Site.Overview.Stats}}<div class="stat scale-in-on-scroll"><span class="stat-value">{{.Value}}</span><span class="stat-label">{{.Label}}</span></div>
        {{end}}
      </div>
    </div>
    <div class="fade-in-right-on-scroll">
      {{with .Carousel}}{{template "carousel" .}}{{end}}
    </div>
  </div>
</section>

<section class="section signature">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">Signature Work</h2>
    {{range .Site.Signature}}<article class="feature fade-in-up-on-scroll">
      <div class="feature-gallery">
        {{range .Images}}<img src="{{.Src}}" alt="{{.Alt}}" loading="lazy">{{end}}
      </div>
      <div class="feature-body">
        <span class="badge">{{.Category}}</span>
        <h3>{{.Name}}</h3>
        <ul class="feature-details">
          {{range .Details}}<li>{{icon .Icon}} <strong>{{.Label}}:</strong> {{.Value}}</li>
          {{end}}
        </ul>
        <div class="prose">{{.Body}}</div>
      </div>
    </article>
    {{end}}
  </div>
</section>
{{end}}`

const aboutTemplate = `{{define "main"}}<section class="hero hero-short" style="background-image:url('{{.Site.Journey.Background}}')">
  <div class="hero-overlay"></div>
  <div class="container hero-content fade-in-up-on-scroll">
    <h1>{{.Site.Journey.Title}}</h1>
    <p>{{.Site.Journey.Body}}</p>
  </div>
</section>

<section class="section">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">What We Do</h2>
    <div class="card-grid">
      {{range .Site.Services}}<div class="card fade-in-up-on-scroll"><h3>{{.Title}}</h3><p>{{.Body}}</p></div>
      {{end}}
    </div>
  </div>
</section>

<section class="section alt">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">Our Collaborators</h2>
    <div class="card-grid two">
      {{range .Site.Collaborators}}<div class="card fade-in-up-on-scroll"><h3>{{.Title}}</h3><ul>{{range .Names}}<li>{{.}}</li>{{end}}</ul></div>
      {{end}}
    </div>
  </div>
</section>

<section class="section">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">How We Work</h2>
    <ol class="steps">
      {{range $i, $c := .Site.Process}}<li class="step fade-in-left-on-scroll"><span class="step-number">{{inc $i}}</span><div><h3>{{$c.Title}}</h3><p>{{$c.Body}}</p></div></li>
      {{end}}
    </ol>
  </div>
</section>

<section class="section alt">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">Our Values</h2>
    <div class="card-grid">
      {{range .Site.Values}}<div class="card scale-in-on-scroll"><h3>{{.Title}}</h3><p>{{.Body}}</p></div>
      {{end}}
    </div>
  </div>
</section>

<section class="section">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">Our Directors</h2>
    <div class="card-grid">
      {{range .Site.Directors}}<div class="person fade-in-up-on-scroll">
        <img src="{{.Photo}}" alt="{{.Name}}" loading="lazy">
        <h3>{{.Name}}</h3>
        <span class="role">{{.Role}}</span>
        <p>{{.Body}}</p>
      </div>
      {{end}}
    </div>
  </div>
</section>
{{end}}`

const projectsTemplate = `{{define "main"}}<section class="section page-intro">
  <div class="container fade-in-up-on-scroll">
    <h1>Our Projects</h1>
    <p>A selection of residential, commercial and institutional work delivered by {{.Site.Company}}.</p>
  </div>
</section>

<section class="section showcase">
  <div class="container fade-in-on-scroll">
    {{with .Carousel}}{{template "carousel" .}}{{end}}
  </div>
</section>

<section class="section alt portfolio">
  <div class="container">
    <h2 class="section-title fade-in-on-scroll">Complete Portfolio</h2>
    {{range .Groups}}<div class="portfolio-group">
      <h3 class="fade-in-left-on-scroll">{{.Category}}</h3>
      <div class="portfolio-grid">
        {{range .Projects}}<div class="portfolio-item scale-in-on-scroll">
          {{if .HasImage}}<img src="{{.Image}}" alt="{{.Name}}" loading="lazy">{{else}}<div class="portfolio-placeholder">{{icon "building"}}</div>{{end}}
          <h4>{{.Name}}</h4>
          <p>{{icon "location"}} {{.Location}}</p>
        </div>
        {{end}}
      </div>
    </div>
    {{end}}
  </div>
</section>
{{end}}`

// cssContent is the full stylesheet served at /static/style.css.
const cssContent = `/* ============ Variables ============ */
:root {
  --primary: #c8102e;
  --primary-dark: #9b0c23;
  --dark: #1a1a1a;
  --text: #333333;
  --muted: #6b7280;
  --bg: #ffffff;
  --bg-alt: #f5f5f5;
  --radius: 8px;
  --shadow: 0 4px 16px rgba(0, 0, 0, 0.08);
}

* { box-sizing: border-box; margin: 0; padding: 0; }
html { scroll-behavior: smooth; }
body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif; color: var(--text); background: var(--bg); line-height: 1.6; }
img { max-width: 100%; display: block; }
a { color: inherit; text-decoration: none; }
.container { width: 100%; max-width: 1200px; margin: 0 auto; padding: 0 1.5rem; }

/* ============ Header ============ */
.site-header { position: sticky; top: 0; z-index: 50; background: rgba(255, 255, 255, 0.96); box-shadow: 0 1px 4px rgba(0, 0, 0, 0.06); }
.nav-bar { display: flex; align-items: center; justify-content: space-between; height: 72px; }
.brand { display: flex; align-items: center; gap: 0.75rem; }
.brand-logo { height: 48px; width: auto; }
.brand-tagline { font-size: 0.85rem; color: var(--muted); }
.nav-links { display: flex; gap: 1.75rem; align-items: center; }
.nav-links a { font-weight: 500; }
.nav-links a.active, .nav-links a:hover { color: var(--primary); }
.nav-cta { background: var(--primary); color: #fff !important; padding: 0.5rem 1.1rem; border-radius: var(--radius); }
.menu-toggle { display: none; background: none; border: 0; cursor: pointer; }
.mobile-menu { display: none; flex-direction: column; padding: 1rem 1.5rem; border-top: 1px solid #eee; }
.mobile-menu.open { display: flex; }
.mobile-menu a { padding: 0.5rem 0; }

/* ============ Buttons ============ */
.btn { display: inline-block; padding: 0.75rem 1.5rem; border-radius: var(--radius); font-weight: 600; border: 2px solid transparent; cursor: pointer; transition: all 0.2s; }
.btn-primary { background: var(--primary); color: #fff; }
.btn-primary:hover { background: var(--primary-dark); }
.btn-primary:disabled { opacity: 0.6; cursor: wait; }
.btn-outline { border-color: #fff; color: #fff; }
.btn-outline:hover { background: #fff; color: var(--dark); }

/* ============ Hero ============ */
.hero { position: relative; min-height: 80vh; display: flex; align-items: center; background-size: cover; background-position: center; color: #fff; }
.hero-short { min-height: 50vh; }
.hero-overlay { position: absolute; inset: 0; background: rgba(0, 0, 0, 0.55); }
.hero-content { position: relative; max-width: 760px; }
.hero h1 { font-size: 3rem; line-height: 1.15; margin-bottom: 1rem; }
.hero p { font-size: 1.15rem; margin-bottom: 2rem; }
.hero-actions { display: flex; gap: 1rem; flex-wrap: wrap; }

/* ============ Sections ============ */
.section { padding: 5rem 0; }
.section.alt { background: var(--bg-alt); }
.section-title { font-size: 2.2rem; text-align: center; margin-bottom: 3rem; }
.page-intro { text-align: center; padding-bottom: 2rem; }
.page-intro h1 { font-size: 2.6rem; margin-bottom: 0.75rem; }
.prose p { margin-bottom: 1rem; }
.overview-grid, .contact-grid { display: grid; grid-template-columns: 1fr 1fr; gap: 3rem; align-items: center; }
.stats { display: grid; grid-template-columns: repeat(2, 1fr); gap: 1rem; margin-top: 2rem; }
.stat { background: var(--bg-alt); padding: 1.25rem; border-radius: var(--radius); text-align: center; }
.stat-value { display: block; font-size: 2rem; font-weight: 700; color: var(--primary); }
.stat-label { font-size: 0.9rem; color: var(--muted); }
.card-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.5rem; }
.card-grid.two { grid-template-columns: repeat(2, 1fr); }
.card, .person { background: var(--bg); padding: 1.75rem; border-radius: var(--radius); box-shadow: var(--shadow); }
.card h3, .person h3 { margin-bottom: 0.5rem; }
.card ul { list-style: none; }
.card li { padding: 0.25rem 0; border-bottom: 1px solid #eee; }
.person img { width: 100%; aspect-ratio: 1; object-fit: cover; border-radius: var(--radius); margin-bottom: 1rem; }
.person .role { color: var(--primary); font-weight: 600; display: block; margin-bottom: 0.5rem; }
.steps { list-style: none; display: grid; gap: 1.25rem; }
.step { display: flex; gap: 1.25rem; align-items: flex-start; }
.step-number { flex: none; width: 44px; height: 44px; border-radius: 50%; background: var(--primary); color: #fff; display: flex; align-items: center; justify-content: center; font-weight: 700; }

/* ============ Signature work ============ */
.feature { display: grid; grid-template-columns: 1.2fr 1fr; gap: 2rem; margin-bottom: 4rem; }
.feature-gallery { display: grid; grid-template-columns: 1fr 1fr; gap: 0.5rem; }
.feature-gallery img { width: 100%; height: 180px; object-fit: cover; border-radius: var(--radius); }
.badge { display: inline-block; background: var(--primary); color: #fff; padding: 0.2rem 0.75rem; border-radius: 999px; font-size: 0.8rem; margin-bottom: 0.75rem; }
.feature-details { list-style: none; margin: 1rem 0; }
.feature-details li { display: flex; align-items: center; gap: 0.5rem; padding: 0.25rem 0; }
.icon { width: 18px; height: 18px; flex: none; color: var(--primary); }

/* ============ Carousel ============ */
.carousel-viewport { position: relative; overflow: hidden; border-radius: var(--radius); aspect-ratio: 4 / 3; background: var(--dark); }
.carousel-slide { position: absolute; inset: 0; opacity: 0; transition: opacity 0.7s ease; }
.carousel-slide.active { opacity: 1; }
.carousel-slide img { width: 100%; height: 100%; object-fit: cover; }
.carousel-slide figcaption { position: absolute; left: 0; right: 0; bottom: 0; padding: 1.5rem; color: #fff; background: linear-gradient(transparent, rgba(0, 0, 0, 0.75)); }
.carousel-arrow { position: absolute; top: 50%; transform: translateY(-50%); width: 44px; height: 44px; border-radius: 50%; border: 0; background: rgba(255, 255, 255, 0.8); font-size: 1.75rem; cursor: pointer; }
.carousel-arrow.prev { left: 1rem; }
.carousel-arrow.next { right: 1rem; }
.carousel-position { position: absolute; top: 1rem; right: 1rem; background: rgba(0, 0, 0, 0.6); color: #fff; padding: 0.2rem 0.7rem; border-radius: 999px; font-size: 0.85rem; }
.carousel-dots { display: flex; justify-content: center; gap: 0.5rem; margin-top: 1rem; }
.carousel-dot { width: 10px; height: 10px; border-radius: 50%; border: 0; background: #ccc; cursor: pointer; }
.carousel-dot.active { background: var(--primary); width: 28px; border-radius: 999px; }
.carousel-thumbs { display: flex; gap: 0.5rem; margin-top: 1rem; overflow-x: auto; }
.carousel-thumb { flex: none; width: 96px; height: 64px; border: 2px solid transparent; border-radius: 6px; overflow: hidden; cursor: pointer; opacity: 0.6; padding: 0; }
.carousel-thumb.active { border-color: var(--primary); opacity: 1; }
.carousel-thumb img { width: 100%; height: 100%; object-fit: cover; }

/* ============ Portfolio ============ */
.portfolio-group { margin-bottom: 3rem; }
.portfolio-group h3 { font-size: 1.4rem; margin-bottom: 1.25rem; border-left: 4px solid var(--primary); padding-left: 0.75rem; }
.portfolio-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 1.25rem; }
.portfolio-item { background: var(--bg); border-radius: var(--radius); overflow: hidden; box-shadow: var(--shadow); }
.portfolio-item img, .portfolio-placeholder { width: 100%; height: 150px; object-fit: cover; }
.portfolio-placeholder { display: flex; align-items: center; justify-content: center; background: #e5e7eb; }
.portfolio-placeholder .icon { width: 40px; height: 40px; color: var(--muted); }
.portfolio-item h4, .portfolio-item p { padding: 0 1rem; }
.portfolio-item h4 { margin-top: 0.75rem; }
.portfolio-item p { display: flex; gap: 0.35rem; align-items: center; color: var(--muted); font-size: 0.9rem; padding-bottom: 1rem; }

/* ============ Contact ============ */
.contact-section { background: var(--dark); color: #fff; }
.contact-info { list-style: none; margin-top: 1.5rem; }
.contact-info li { display: flex; gap: 0.75rem; align-items: center; padding: 0.5rem 0; }
.contact-form { display: grid; gap: 1rem; background: #fff; color: var(--text); padding: 2rem; border-radius: var(--radius); }
.contact-form input, .contact-form textarea { width: 100%; padding: 0.75rem 1rem; border: 1px solid #d1d5db; border-radius: var(--radius); font: inherit; }
.form-status { padding: 0.75rem 1rem; border-radius: var(--radius); }
.form-status.success { background: #dcfce7; color: #166534; }
.form-status.error { background: #fee2e2; color: #991b1b; }

/* ============ Footer ============ */
.site-footer { background: #111; color: #d1d5db; padding: 3rem 0 1.5rem; }
.footer-grid { display: grid; grid-template-columns: 2fr 1fr 1fr; gap: 2rem; }
.footer-grid a { display: block; padding: 0.2rem 0; }
.footer-grid a:hover { color: #fff; }
.footer-grid h4 { color: #fff; margin-bottom: 0.75rem; }
.footer-logo { height: 56px; width: auto; margin-bottom: 0.75rem; }
.copyright { text-align: center; margin-top: 2rem; font-size: 0.85rem; color: var(--muted); }

/* ============ Scroll reveal ============ */
.fade-in-on-scroll { opacity: 0; transition: opacity 0.8s ease; }
.fade-in-up-on-scroll { opacity: 0; transform: translateY(40px); transition: opacity 0.8s ease, transform 0.8s ease; }
.fade-in-left-on-scroll { opacity: 0; transform: translateX(-40px); transition: opacity 0.8s ease, transform 0.8s ease; }
.fade-in-right-on-scroll { opacity: 0; transform: translateX(40px); transition: opacity 0.8s ease, transform 0.8s ease; }
.scale-in-on-scroll { opacity: 0; transform: scale(0.9); transition: opacity 0.6s ease, transform 0.6s ease; }
.fade-in-on-scroll.visible, .fade-in-up-on-scroll.visible, .fade-in-left-on-scroll.visible,
.fade-in-right-on-scroll.visible, .scale-in-on-scroll.visible { opacity: 1; transform: none; }

/* ============ Responsive ============ */
@media (max-width: 900px) {
  .nav-links { display: none; }
  .menu-toggle { display: block; }
  .overview-grid, .contact-grid, .feature, .footer-grid, .card-grid.two { grid-template-columns: 1fr; }
  .hero h1 { font-size: 2.2rem; }
}
`

// jsContent is the browser half of the page session, served at
// /static/site.js. It forwards layout reports and carousel clicks over the
// WebSocket and applies the slide and reveal frames the server pushes.
// When no session can be opened (static export) it runs the same behavior
// locally.
const jsContent = `(function() {
  'use strict';

  var markers = ['fade-in-on-scroll', 'fade-in-up-on-scroll', 'fade-in-left-on-scroll',
    'fade-in-right-on-scroll', 'scale-in-on-scroll'];
  var selector = markers.map(function(c) { return '.' + c; }).join(',');
  var body = document.body;

  // ---- Mobile menu ----
  var toggle = document.getElementById('menu-toggle');
  var menu = document.getElementById('mobile-menu');
  if (toggle && menu) {
    toggle.addEventListener('click', function() {
      var open = menu.classList.toggle('open');
      toggle.setAttribute('aria-expanded', open ? 'true' : 'false');
    });
    menu.addEventListener('click', function(e) {
      if (e.target.tagName === 'A') menu.classList.remove('open');
    });
  }

  // ---- Carousel rendering ----
  function carouselEl(id) {
    return document.querySelector('[data-carousel="' + id + '"]');
  }

  function showSlide(root, index, position) {
    if (!root) return;
    var n = parseInt(root.getAttribute('data-count'), 10);
    root.querySelectorAll('[data-index]').forEach(function(el) {
      el.classList.toggle('active', parseInt(el.getAttribute('data-index'), 10) === index);
    });
    var pos = root.querySelector('.carousel-position');
    if (pos) pos.textContent = position || ((index + 1) + ' / ' + n);
    root.setAttribute('data-current', index);
  }

  function reveal(ids) {
    ids.forEach(function(id) {
      var el = document.getElementById(id);
      if (el) el.classList.add('visible');
    });
  }

  // ---- Local fallback ----
  function runLocally() {
    document.querySelectorAll('[data-carousel]').forEach(function(root) {
      var n = parseInt(root.getAttribute('data-count'), 10);
      var interval = parseInt(root.getAttribute('data-interval'), 10);
      var current = 0;
      function go(i) { current = i; showSlide(root, current); }
      root.addEventListener('click', function(e) {
        var btn = e.target.closest('[data-action]');
        if (!btn) return;
        var action = btn.getAttribute('data-action');
        if (action === 'next') go((current + 1) % n);
        else if (action === 'previous') go((current - 1 + n) % n);
        else if (action === 'goto') go(parseInt(btn.getAttribute('data-index'), 10));
      });
      if (interval > 0 && n > 0) {
        setInterval(function() { go((current + 1) % n); }, interval);
      }
    });

    var targets = document.querySelectorAll(selector);
    if (!('IntersectionObserver' in window)) {
      targets.forEach(function(el) { el.classList.add('visible'); });
      return;
    }
    var io = new IntersectionObserver(function(entries) {
      entries.forEach(function(entry) {
        if (entry.isIntersecting) entry.target.classList.add('visible');
      });
    }, { threshold: 0.1, rootMargin: '0px 0px -50px 0px' });
    targets.forEach(function(el) { io.observe(el); });
  }

  // ---- Page session ----
  var socket = null;
  var sessionId = '';
  var fellBack = false;

  function fallback() {
    if (fellBack) return;
    fellBack = true;
    socket = null;
    runLocally();
  }

  function send(frame) {
    if (socket && socket.readyState === WebSocket.OPEN) socket.send(JSON.stringify(frame));
  }

  function reportViewport() {
    var elements = [];
    document.querySelectorAll(selector).forEach(function(el) {
      if (!el.id || el.classList.contains('visible')) return;
      var r = el.getBoundingClientRect();
      elements.push({ id: el.id, rect: { x: r.left, y: r.top, width: r.width, height: r.height } });
    });
    if (elements.length === 0) return;
    send({
      type: 'viewport',
      viewport: { x: 0, y: 0, width: window.innerWidth, height: window.innerHeight },
      elements: elements
    });
  }

  var pending = false;
  function scheduleReport() {
    if (pending) return;
    pending = true;
    window.requestAnimationFrame(function() {
      pending = false;
      reportViewport();
    });
  }

  function connect() {
    if (!('WebSocket' in window) || body.hasAttribute('data-relay-endpoint')) {
      fallback();
      return;
    }
    var scheme = location.protocol === 'https:' ? 'wss://' : 'ws://';
    try {
      socket = new WebSocket(scheme + location.host + '/ws/page');
    } catch (e) {
      fallback();
      return;
    }
    socket.onopen = function() {
      send({ type: 'mount', page: body.getAttribute('data-page') || location.pathname });
    };
    socket.onmessage = function(e) {
      var frame;
      try { frame = JSON.parse(e.data); } catch (err) { return; }
      switch (frame.type) {
        case 'mounted':
          sessionId = frame.session_id;
          Object.keys(frame.carousels || {}).forEach(function(id) {
            showSlide(carouselEl(id), frame.carousels[id]);
          });
          scheduleReport();
          break;
        case 'slide':
          showSlide(carouselEl(frame.carousel), frame.index, frame.position);
          break;
        case 'reveal':
          reveal(frame.ids || []);
          break;
        case 'error':
          if (window.console) console.warn('page session:', frame.message);
          break;
      }
    };
    socket.onerror = function() { if (!sessionId) fallback(); };
    socket.onclose = function() { if (!sessionId) fallback(); };

    document.addEventListener('click', function(e) {
      var btn = e.target.closest('[data-carousel] [data-action]');
      if (!btn || fellBack) return;
      var root = btn.closest('[data-carousel]');
      var frame = { type: 'carousel', carousel: root.getAttribute('data-carousel'), action: btn.getAttribute('data-action') };
      if (frame.action === 'goto') frame.index = parseInt(btn.getAttribute('data-index'), 10);
      send(frame);
    });
    window.addEventListener('scroll', scheduleReport, { passive: true });
    window.addEventListener('resize', scheduleReport);
  }

  // ---- Contact form ----
  var form = document.getElementById('contact-form');
  var status = document.getElementById('form-status');

  function setStatus(kind, message) {
    status.className = 'form-status' + (kind ? ' ' + kind : '');
    status.textContent = message || '';
    status.hidden = !message;
  }

  function relaySend(fields) {
    var endpoint = body.getAttribute('data-relay-endpoint');
    if (endpoint) {
      return fetch(endpoint.replace(/\/$/, '') + '/api/v1.0/email/send', {
        method: 'POST',
        headers: { 'Content-Type': 'application/json' },
        body: JSON.stringify({
          service_id: body.getAttribute('data-relay-service'),
          template_id: body.getAttribute('data-relay-template'),
          user_id: body.getAttribute('data-relay-key'),
          template_params: { from_name: fields.name, from_email: fields.email, phone: fields.phone, message: fields.message }
        })
      }).then(function(res) {
        return res.ok ? { status: 'success', message: '{{SUCCESS}}' } : { status: 'error', message: '{{ERROR}}' };
      });
    }
    fields.session_id = sessionId;
    return fetch('/api/contact', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify(fields)
    }).then(function(res) { return res.json(); });
  }

  if (form && status && window.fetch) {
    form.addEventListener('submit', function(e) {
      e.preventDefault();
      var button = form.querySelector('button[type="submit"]');
      if (button.disabled) return;
      button.disabled = true;
      button.textContent = 'Sending...';
      setStatus('', '');
      var fields = {
        name: form.elements.name.value,
        email: form.elements.email.value,
        phone: form.elements.phone.value,
        message: form.elements.message.value
      };
      relaySend(fields).then(function(res) {
        setStatus(res.status, res.message);
        if (res.status === 'success') form.reset();
      }).catch(function() {
        setStatus('error', '{{ERROR}}');
      }).then(function() {
        button.disabled = false;
        button.textContent = 'Send Message';
      });
    });
  }

  connect();
})();
`
