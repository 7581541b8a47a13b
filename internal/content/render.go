package content

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tuitour/internal/cachemanager"
	"github.com/zjrosen/tuitour/internal/icons"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// renderTTL bounds how long a rendered block stays cached.
const renderTTL = 15 * time.Minute

// MarkdownRenderer renders markdown for the terminal.
type MarkdownRenderer interface {
	Render(markdown string) (string, error)
}

// CodeHighlighter colours source code.
type CodeHighlighter interface {
	Highlight(code, lang string) (string, error)
}

// Section identifies one of the three blocks.
type Section int

const (
	SectionNone Section = iota
	SectionHeader
	SectionExample
	SectionCode
)

func (s Section) String() string {
	switch s {
	case SectionHeader:
		return "header"
	case SectionExample:
		return "example"
	case SectionCode:
		return "code"
	default:
		return "none"
	}
}

// LinkActivatedMsg asks the browser to open URL in the embedded viewer.
type LinkActivatedMsg struct {
	Index int // 1-based
	URL   string
}

// LinkZoneID returns the bubblezone ID of link n (1-based).
func LinkZoneID(n int) string {
	return fmt.Sprintf("link-%d", n)
}

// ActivateLink returns a command emitting LinkActivatedMsg for link n of vm,
// or nil when n is out of range.
func ActivateLink(vm ViewModel, n int) tea.Cmd {
	if n < 1 || n > len(vm.Header.Links) {
		return nil
	}
	msg := LinkActivatedMsg{Index: n, URL: vm.Header.Links[n-1].URL}
	return func() tea.Msg { return msg }
}

// Frame carries per-frame inputs that never go into the cache.
type Frame struct {
	Preview     string  // rendered live preview, shown when the example is visible
	FocusedLink int     // 1-based, 0 for none
	Focus       Section // section drawn with the focus border
}

// Options configure a Renderer.
type Options struct {
	Width int
	Dark  bool
	// Static skips the click zones around links. Output meant for a
	// pipe or file has no zone manager to scan it.
	Static bool
}

// Renderer draws a ViewModel. Markdown and highlighted code are cached by
// descriptor, section, variant, width and theme.
type Renderer struct {
	md     MarkdownRenderer
	hl     CodeHighlighter
	blocks *cachemanager.ReadThroughCache[string, string, block]
	width  int
	dark   bool
	static bool
}

// block is one cacheable piece of rendered output.
type block struct {
	key    string
	render func() string
}

// NewRenderer creates a renderer. md, hl and cache may be nil; missing
// collaborators degrade to plain text and no caching.
func NewRenderer(md MarkdownRenderer, hl CodeHighlighter, cache cachemanager.CacheManager[string, string], opts Options) *Renderer {
	r := &Renderer{md: md, hl: hl, width: opts.Width, dark: opts.Dark, static: opts.Static}
	if cache != nil {
		r.blocks = cachemanager.NewReadThroughCache(cache,
			func(b block) string { return b.key },
			func(_ context.Context, b block) (string, error) { return b.render(), nil },
			renderTTL,
		)
	}
	return r
}

// Width returns the configured outer width.
func (r *Renderer) Width() int { return r.width }

// Dark reports the theme the renderer draws for.
func (r *Renderer) Dark() bool { return r.dark }

func (r *Renderer) theme() string {
	if r.dark {
		return "dark"
	}
	return "light"
}

// cacheKey builds descriptorID|section|variant|width|theme.
func (r *Renderer) cacheKey(vm ViewModel, section Section, variant string) string {
	return fmt.Sprintf("%s|%s|%s|%d|%s", vm.DescriptorID, section, variant, r.width, r.theme())
}

func (r *Renderer) cached(key string, render func() string) string {
	if r.blocks == nil {
		return render()
	}
	v, _ := r.blocks.Get(context.Background(), block{key: key, render: render})
	return v
}

// ContentWidth is the usable text width inside a section border. Markdown
// should be wrapped to this width.
func ContentWidth(width int) int {
	return max(width-4, 10)
}

// Render draws all three sections stacked vertically.
func (r *Renderer) Render(vm ViewModel, f Frame) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		r.RenderHeader(vm, f),
		r.RenderExample(vm, f),
		r.RenderCode(vm, f),
	)
}

func (r *Renderer) section(title, hint string, expanded bool, focused bool, body []string) string {
	indicator := styles.IndicatorCollapsed
	if expanded {
		indicator = styles.IndicatorExpanded
	}
	title = indicator + " " + title
	if !expanded {
		return styles.RenderSectionBar(title, hint, r.width, focused, styles.BorderFocusColor)
	}
	rows := make([]string, len(body))
	for i, line := range body {
		rows[i] = " " + line
	}
	return styles.RenderFormSection(rows, title, hint, r.width, focused, styles.BorderFocusColor)
}

// RenderHeader draws the title, subtitle, description and numbered links.
func (r *Renderer) RenderHeader(vm ViewModel, f Frame) string {
	h := vm.Header
	title := h.Title
	if title == "" {
		title = "Demo"
	}
	if !h.Expanded {
		return r.section(title, "1", false, f.Focus == SectionHeader, nil)
	}

	var body []string
	titleLine := lipgloss.NewStyle().Bold(true).Render(title)
	if h.Icon != "" {
		titleLine = icons.Glyph(h.Icon) + " " + titleLine
	}
	body = append(body, titleLine, styles.HintStyle.Render(h.Subtitle), "")

	desc := r.cached(r.cacheKey(vm, SectionHeader, "none"), func() string {
		return r.renderMarkdown(h.Description)
	})
	body = append(body, strings.Split(desc, "\n")...)

	if len(h.Links) > 0 {
		body = append(body, "")
		for i, l := range h.Links {
			n := i + 1
			style := styles.LinkStyle
			if n == f.FocusedLink {
				style = styles.LinkFocusedStyle
			}
			text := l.Text
			if text == "" {
				text = l.URL
			}
			line := fmt.Sprintf("[%d] ", n) + style.Render(text)
			if !r.static {
				line = zone.Mark(LinkZoneID(n), line)
			}
			body = append(body, line)
		}
	}
	return r.section(title, "1", true, f.Focus == SectionHeader, body)
}

func (r *Renderer) renderMarkdown(src string) string {
	if r.md == nil {
		return src
	}
	out, err := r.md.Render(src)
	if err != nil {
		log.ErrorErr(log.CatUI, "markdown render failed, showing raw text", err)
		return src
	}
	return out
}

// RenderExample draws the live preview or its placeholder.
func (r *Renderer) RenderExample(vm ViewModel, f Frame) string {
	e := vm.Example
	hint := "2"
	if e.Visible {
		hint = "2 · p to interact"
	}
	if !e.Expanded {
		return r.section("Example", hint, false, f.Focus == SectionExample, nil)
	}
	var body []string
	if e.Visible {
		body = strings.Split(f.Preview, "\n")
	} else {
		body = []string{styles.PlaceholderStyle.Render(e.Placeholder)}
	}
	return r.section("Example", hint, true, f.Focus == SectionExample, body)
}

// RenderCode draws the highlighted sample, its variant toggle and diff summary.
func (r *Renderer) RenderCode(vm ViewModel, f Frame) string {
	c := vm.Code
	hint := "3"
	if c.ShowToggle {
		hint = "3 · f " + c.VariantLabel
	}
	if !c.Expanded {
		return r.section("Code", hint, false, f.Focus == SectionCode, nil)
	}
	if !c.Visible {
		return r.section("Code", hint, true, f.Focus == SectionCode,
			[]string{styles.PlaceholderStyle.Render(c.Placeholder)})
	}

	variant := "short"
	if c.ShowFull {
		variant = "full"
	}
	code := r.cached(r.cacheKey(vm, SectionCode, variant), func() string {
		return r.highlight(c.Text, c.Language)
	})
	body := strings.Split(code, "\n")
	if c.ShowToggle {
		body = append(body, "", styles.HintStyle.Render(
			fmt.Sprintf("Showing %s · %s · [f] toggle", c.VariantLabel, c.DiffSummary)))
	}
	return r.section("Code", hint, true, f.Focus == SectionCode, body)
}

func (r *Renderer) highlight(code, lang string) string {
	if r.hl == nil {
		return code
	}
	out, err := r.hl.Highlight(code, lang)
	if err != nil {
		log.ErrorErr(log.CatUI, "highlight failed, showing plain code", err, "lang", lang)
		return code
	}
	return out
}
