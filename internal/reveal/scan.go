package reveal

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// IDPrefix prefixes the ids assigned to marker elements that have none.
const IDPrefix = "reveal-"

// Scan parses an HTML document and returns every element carrying a marker
// class, in document order. Elements without an id attribute are given the
// id Annotate would assign.
func Scan(r io.Reader) ([]Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	return walk(doc, false), nil
}

// Annotate parses an HTML document, adds an id to every marker element
// that lacks one, and writes the document back out. It returns the watch
// set in document order.
func Annotate(w io.Writer, r io.Reader) ([]Element, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing html: %w", err)
	}
	elements := walk(doc, true)
	if err := html.Render(w, doc); err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}
	return elements, nil
}

// AnnotateBytes is Annotate over an in-memory document.
func AnnotateBytes(page []byte) ([]byte, []Element, error) {
	var buf bytes.Buffer
	elements, err := Annotate(&buf, bytes.NewReader(page))
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), elements, nil
}

func walk(doc *html.Node, assign bool) []Element {
	var (
		out []Element
		n   int
	)
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		if node.Type == html.ElementNode {
			if v, ok := markerVariant(attr(node, "class")); ok {
				n++
				id := attr(node, "id")
				if id == "" {
					id = fmt.Sprintf("%s%d", IDPrefix, n)
					if assign {
						node.Attr = append(node.Attr, html.Attribute{Key: "id", Val: id})
					}
				}
				out = append(out, Element{ID: id, Variant: v})
			}
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(doc)
	return out
}

func markerVariant(class string) (Variant, bool) {
	for _, token := range strings.Fields(class) {
		for _, v := range Variants {
			if token == string(v) {
				return v, true
			}
		}
	}
	return "", false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
