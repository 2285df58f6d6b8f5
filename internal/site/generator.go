package site

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/pnaconstructions/pnasite/internal/contact"
	"github.com/pnaconstructions/pnasite/internal/progress"
)

// Generator writes the site as static files: one index.html per page, the
// stylesheet and script under static/, and the matching asset files.
type Generator struct {
	Renderer  *Renderer
	AssetsDir string
	OutputDir string
	Include   []string // asset glob patterns, relative to AssetsDir
	Exclude   []string
	Reporter  progress.Reporter
}

// Result summarizes an export.
type Result struct {
	Pages  int
	Assets int
}

// Generate builds the full static site.
func (g *Generator) Generate() (Result, error) {
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	assets, err := g.collectAssets()
	if err != nil {
		return Result{}, fmt.Errorf("collecting assets: %w", err)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, err
	}

	total := len(Pages) + 2 + len(assets)
	reporter.Start(total)
	done := 0
	step := func(name string) {
		done++
		reporter.Update(done, name)
	}

	var res Result
	for _, p := range Pages {
		var buf bytes.Buffer
		if err := g.Renderer.Render(&buf, p.Path, contact.Fields{}, contact.Status{}); err != nil {
			return res, err
		}
		if err := writeFile(filepath.Join(g.OutputDir, filepath.FromSlash(p.File)), buf.Bytes()); err != nil {
			return res, err
		}
		res.Pages++
		step(p.File)
	}

	if err := writeFile(filepath.Join(g.OutputDir, "static", "style.css"), []byte(cssContent)); err != nil {
		return res, err
	}
	step("static/style.css")
	if err := writeFile(filepath.Join(g.OutputDir, "static", "site.js"), []byte(siteJS)); err != nil {
		return res, err
	}
	step("static/site.js")

	for _, rel := range assets {
		src := filepath.Join(g.AssetsDir, filepath.FromSlash(rel))
		dst := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
		if err := copyFile(src, dst); err != nil {
			return res, fmt.Errorf("copying %s: %w", rel, err)
		}
		res.Assets++
		step(rel)
	}

	reporter.Finish()
	return res, nil
}

// collectAssets returns the slash-separated paths under AssetsDir that
// match an include pattern and no exclude pattern, sorted.
func (g *Generator) collectAssets() ([]string, error) {
	if g.AssetsDir == "" {
		return nil, nil
	}
	if _, err := os.Stat(g.AssetsDir); os.IsNotExist(err) {
		log.Printf("site: assets dir %s does not exist, exporting pages only", g.AssetsDir)
		return nil, nil
	}

	var out []string
	err := filepath.WalkDir(g.AssetsDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(g.AssetsDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			if rel != "." && matchesAny(rel, g.Exclude) {
				return filepath.SkipDir
			}
			return nil
		}
		if matchesAny(rel, g.Include) && !matchesAny(rel, g.Exclude) {
			out = append(out, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(out)
	return out, nil
}

// matchesAny checks if rel matches any of the given glob patterns, either
// as a whole or by file name.
func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, filepath.Base(rel)); err == nil && matched {
			return true
		}
	}
	return false
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
