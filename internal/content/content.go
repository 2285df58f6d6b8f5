// Package content holds the static copy and image lists of the site.
package content

import (
	"fmt"
	"html/template"
)

// Image is one picture shown on a page.
type Image struct {
	Src string
	Alt string
}

// Stat is a headline figure in the overview section.
type Stat struct {
	Value string
	Label string
}

// Detail is a labelled fact about a featured project.
type Detail struct {
	Label string
	Value string
	Icon  string
}

// Feature is a featured project in the home page "Signature Work" section.
type Feature struct {
	Name        string
	Category    string
	Images      []Image
	Details     []Detail
	Description string
	Body        template.HTML
}

// Project is one entry of the portfolio.
type Project struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Image    string `json:"image,omitempty"`
	Category string `json:"category"`
	HasImage bool   `json:"has_image"`
}

// Card is a titled blurb (services, process steps, values).
type Card struct {
	Title string
	Body  string
}

// Group is a titled list of names.
type Group struct {
	Title string
	Names []string
}

// Person is a company director.
type Person struct {
	Name  string
	Role  string
	Photo string
	Bio   string
	Body  template.HTML
}

// Social is a footer link.
type Social struct {
	Name string
	URL  string
}

// ContactInfo is the company contact block.
type ContactInfo struct {
	Phone string
	Email string
	Hours string
}

// Site is all copy for the three pages.
type Site struct {
	Company    string
	Tagline    string
	Logo       string
	FooterLogo string

	Hero      Hero
	Overview  Overview
	Slides    []Image
	Signature []Feature

	Journey       Journey
	Services      []Card
	Collaborators []Group
	Process       []Card
	Values        []Card
	Directors     []Person

	Portfolio []Project

	Contact ContactInfo
	Socials []Social
}

// Hero is the top banner of the home page.
type Hero struct {
	Title      string
	Subtitle   string
	Background string
}

// Overview is the home page company introduction.
type Overview struct {
	Title      string
	Paragraphs []string
	Body       template.HTML
	Stats      []Stat
}

// Journey is the about page banner.
type Journey struct {
	Title      string
	Text       string
	Body       template.HTML
	Background string
}

// WithImages returns the portfolio projects that have a photo, preserving
// order.
func WithImages(projects []Project) []Project {
	var out []Project
	for _, p := range projects {
		if p.HasImage {
			out = append(out, p)
		}
	}
	return out
}

// Categories groups projects by category in first-seen order.
func Categories(projects []Project) []ProjectGroup {
	var (
		groups []ProjectGroup
		index  = map[string]int{}
	)
	for _, p := range projects {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, ProjectGroup{Category: p.Category})
		}
		groups[i].Projects = append(groups[i].Projects, p)
	}
	return groups
}

// ProjectGroup is a category heading with its projects.
type ProjectGroup struct {
	Category string
	Projects []Project
}

// Load returns the site copy with markdown fields rendered.
func Load() (*Site, error) {
	s := defaultSite()

	var err error
	if s.Overview.Body, err = Markdown(joinParagraphs(s.Overview.Paragraphs)); err != nil {
		return nil, fmt.Errorf("rendering overview: %w", err)
	}
	if s.Journey.Body, err = Inline(s.Journey.Text); err != nil {
		return nil, fmt.Errorf("rendering journey: %w", err)
	}
	for i := range s.Signature {
		if s.Signature[i].Body, err = Inline(s.Signature[i].Description); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.Signature[i].Name, err)
		}
	}
	for i := range s.Directors {
		if s.Directors[i].Body, err = Inline(s.Directors[i].Bio); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", s.Directors[i].Name, err)
		}
	}
	return s, nil
}

func joinParagraphs(ps []string) string {
	out := ""
	for i, p := range ps {
		if i > 0 {
			out += "\n\n"
		}
		out += p
	}
	return out
}
