// Package markdown renders demo descriptions for the terminal and extracts
// the links they contain.
package markdown

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// noMarginStyle is a JSON style that removes document margins.
const noMarginStyle = `{
	"document": {
		"margin": 0,
		"block_prefix": "",
		"block_suffix": ""
	}
}`

// Style names accepted by New.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleASCII = "ascii"
)

// Renderer wraps glamour with tuitour's configuration.
type Renderer struct {
	renderer *glamour.TermRenderer
	width    int
	style    string
}

// New creates a markdown renderer with the given width and style.
// style should be "dark", "light" or "ascii". Defaults to "dark" if empty.
// A named style avoids WithAutoStyle, whose terminal background query can
// leak escape sequence responses into the input stream.
func New(width int, style string) (*Renderer, error) {
	if style == "" {
		style = StyleDark
	}

	opts := []glamour.TermRendererOption{
		glamour.WithStylePath(style),
		glamour.WithStylesFromJSONBytes([]byte(noMarginStyle)),
		glamour.WithWordWrap(width),
	}
	if style == StyleASCII {
		opts = append(opts, glamour.WithColorProfile(termenv.Ascii))
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, err
	}
	return &Renderer{renderer: r, width: width, style: style}, nil
}

// Width returns the configured word wrap width.
func (r *Renderer) Width() int {
	return r.width
}

// Style returns the glamour style name.
func (r *Renderer) Style() string {
	return r.style
}

// Render transforms markdown to styled terminal output.
func (r *Renderer) Render(markdown string) (string, error) {
	out, err := r.renderer.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.Trim(out, "\n"), nil
}

// Link is a hyperlink found in a markdown document.
type Link struct {
	Text string
	URL  string
}

// Links returns every inline link and autolink in source order.
func Links(src string) []Link {
	source := []byte(src)
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var links []Link
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Link:
			links = append(links, Link{
				Text: strings.TrimSpace(plainText(node, source)),
				URL:  string(node.Destination),
			})
			return ast.WalkSkipChildren, nil
		case *ast.AutoLink:
			url := string(node.URL(source))
			links = append(links, Link{Text: url, URL: url})
		}
		return ast.WalkContinue, nil
	})
	return links
}

// plainText concatenates the text segments below n.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(t.Value)
		case *ast.CodeSpan:
			for child := t.FirstChild(); child != nil; child = child.NextSibling() {
				if txt, ok := child.(*ast.Text); ok {
					b.Write(txt.Segment.Value(source))
				}
			}
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}
