// Package linkviewer shows the content behind a description link inside the
// application. It holds at most one pending link; opening another replaces
// it and cancels the previous fetch.
package linkviewer

import (
	"context"
	"errors"
	"html"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/microcosm-cc/bluemonday"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/ui/overlay"
	"github.com/zjrosen/tuitour/internal/ui/panes"
	"github.com/zjrosen/tuitour/internal/ui/styles"
	"github.com/zjrosen/tuitour/internal/ui/toaster"
)

var errClipboardUnsupported = errors.New("no clipboard utility available")

// ClosedMsg is emitted when the user dismisses the viewer.
type ClosedMsg struct{}

// fetchedMsg carries a fetch result tagged with its request sequence.
type fetchedMsg struct {
	seq  int
	url  string
	body []byte
	err  error
}

// Model is the viewer state.
type Model struct {
	fetcher   fetch.Fetcher
	clipboard Clipboard
	policy    *bluemonday.Policy

	viewport viewport.Model
	width    int
	height   int

	visible bool
	url     string
	seq     int
	cancel  context.CancelFunc
	loading bool
	text    string
	err     error
}

// New creates a hidden viewer.
func New(f fetch.Fetcher, clip Clipboard) Model {
	if f == nil {
		f = fetch.New(fetch.WithSource("linkviewer"))
	}
	return Model{
		fetcher:   f,
		clipboard: clip,
		policy:    bluemonday.StrictPolicy(),
		viewport:  viewport.New(0, 0),
	}
}

// SetSize sets the size of the screen the viewer is drawn over.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	w, h := m.boxSize()
	m.viewport.Width = max(w-2, 1)
	m.viewport.Height = max(h-2, 1)
	m.refreshContent()
	return m
}

// boxSize returns the modal's outer size.
func (m Model) boxSize() (int, int) {
	w := max(m.width*4/5, 20)
	h := max(m.height*4/5, 6)
	return w, h
}

// Open shows url, replacing any pending link. The previous fetch is
// cancelled and its late result will be discarded.
func (m Model) Open(url string) (Model, tea.Cmd) {
	if m.cancel != nil {
		m.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.seq++
	m.visible = true
	m.url = url
	m.loading = true
	m.text = ""
	m.err = nil
	m.refreshContent()

	log.Debug(log.CatFetch, "link opened", "url", url, "seq", m.seq)

	seq, fetcher := m.seq, m.fetcher
	return m, func() tea.Msg {
		body, err := fetcher.Get(ctx, url)
		return fetchedMsg{seq: seq, url: url, body: body, err: err}
	}
}

// Close hides the viewer, cancels any in-flight fetch and clears the link.
func (m Model) Close() Model {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.visible = false
	m.url = ""
	m.loading = false
	m.text = ""
	m.err = nil
	m.viewport.SetContent("")
	return m
}

// Visible reports whether the viewer is showing.
func (m Model) Visible() bool { return m.visible }

// URL returns the pending link, or "" when closed.
func (m Model) URL() string { return m.url }

// Loading reports whether the current link is still being fetched.
func (m Model) Loading() bool { return m.loading }

// Text returns the sanitised page text.
func (m Model) Text() string { return m.text }

// Err returns the error of the last fetch.
func (m Model) Err() error { return m.err }

// Update handles fetch results and, while visible, keys.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchedMsg:
		if !m.visible || msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil {
			m.err = msg.err
			log.ErrorErr(log.CatFetch, "link fetch failed", msg.err, "url", msg.url)
		} else {
			m.text = m.sanitize(msg.body)
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		switch msg.String() {
		case "esc", "q":
			return m.Close(), func() tea.Msg { return ClosedMsg{} }
		case "y":
			return m, m.copyURL()
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.MouseMsg:
		if !m.visible {
			return m, nil
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) copyURL() tea.Cmd {
	clip, url := m.clipboard, m.url
	if clip == nil || url == "" {
		return toaster.Show("Clipboard unavailable", toaster.StyleWarn)
	}
	return func() tea.Msg {
		if err := clip.Copy(url); err != nil {
			log.ErrorErr(log.CatUI, "copy failed", err)
			return toaster.ShowMsg{Message: "Copy failed: " + err.Error(), Style: toaster.StyleError}
		}
		return toaster.ShowMsg{Message: "Link copied", Style: toaster.StyleSuccess}
	}
}

// sanitize reduces an HTML or text body to collapsed plain text.
func (m Model) sanitize(body []byte) string {
	stripped := html.UnescapeString(string(m.policy.SanitizeBytes(body)))
	return collapseWhitespace(stripped)
}

// collapseWhitespace joins runs of spaces within lines and keeps at most one
// blank line between paragraphs.
func collapseWhitespace(s string) string {
	var out []string
	blank := false
	for _, line := range strings.Split(s, "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func (m *Model) refreshContent() {
	var body string
	switch {
	case m.loading:
		body = styles.HintStyle.Render("Loading " + m.url + " ...")
	case m.err != nil:
		body = m.url + "\n\n" + styles.ErrorStyle.Render("Could not load page: "+m.err.Error())
	case m.text == "":
		body = styles.PlaceholderStyle.Render("Nothing to show")
	default:
		body = m.text
	}
	if m.viewport.Width > 0 {
		body = wordwrap.String(body, m.viewport.Width)
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
}

// View renders the modal box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	w, h := m.boxSize()
	return panes.BorderedPane(panes.BorderConfig{
		Content:            m.viewport.View(),
		Width:              w,
		Height:             h,
		TopLeft:            "Link",
		TopRight:           ansi.Truncate(m.url, max(w-14, 0), "…"),
		BottomLeft:         "[y] copy  [esc] close",
		BottomRight:        panes.ScrollIndicator(m.viewport),
		Focused:            true,
		TitleColor:         styles.OverlayTitleColor,
		FocusedBorderColor: styles.OverlayBorderColor,
	})
}

// Overlay draws the viewer centred over bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	box := m.View()
	if bg == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height, Position: overlay.Center}, box, bg)
}
