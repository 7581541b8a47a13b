// Package browser implements the demo browser screen: a carousel of demos
// above a scrollable view of the selected demo's header, live example and
// code, with the link viewer drawn on top when a link is opened.
package browser

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tuitour/internal/cachemanager"
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/content"
	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/highlight"
	"github.com/zjrosen/tuitour/internal/keys"
	"github.com/zjrosen/tuitour/internal/linkviewer"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/markdown"
	"github.com/zjrosen/tuitour/internal/preview"
	"github.com/zjrosen/tuitour/internal/selection"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// previewHeight is the number of rows a live example gets.
const previewHeight = 14

// Config holds the browser's collaborators.
type Config struct {
	Catalog       *catalog.Catalog
	Fetcher       fetch.Fetcher // used by the link viewer
	Clipboard     linkviewer.Clipboard
	Cache         cachemanager.CacheManager[string, string]
	Dark          bool
	CodeStyle     string // chroma style name
	ShowStatusBar bool
	InitialTitle  string // preselected demo, "" for the first
}

// Model is the browser screen.
type Model struct {
	cfg Config

	state selection.State
	vm    content.ViewModel

	renderer    *content.Renderer
	highlighter content.CodeHighlighter

	viewport viewport.Model
	help     help.Model
	viewer   linkviewer.Model

	preview        preview.Preview
	previewFocused bool
	initCmd        tea.Cmd

	focusedLink   int
	carouselStart int
	carouselEnd   int

	width  int
	height int
}

// New creates the browser with the first demo selected, or the one named by
// cfg.InitialTitle. An unknown title returns an error wrapping
// catalog.ErrNotFound.
func New(cfg Config) (Model, error) {
	if cfg.Catalog == nil {
		cfg.Catalog = catalog.New()
	}
	st := selection.New(cfg.Catalog)
	if cfg.InitialTitle != "" {
		d, err := cfg.Catalog.FindByTitle(cfg.InitialTitle)
		if err != nil {
			return Model{}, fmt.Errorf("preselecting demo: %w", err)
		}
		st = st.Select(d)
	}

	m := Model{
		cfg:      cfg,
		state:    st,
		viewport: viewport.New(0, 0),
		help:     help.New(),
		viewer:   linkviewer.New(cfg.Fetcher, cfg.Clipboard),
	}
	m.buildHighlighter()
	m.buildRenderer()
	m.initCmd = m.ensurePreview()
	m.refresh()
	return m, nil
}

func (m *Model) buildHighlighter() {
	m.highlighter = nil
	hl, err := highlight.New(m.cfg.CodeStyle, "")
	if err != nil {
		log.ErrorErr(log.CatUI, "code highlighter unavailable, showing plain code", err, "style", m.cfg.CodeStyle)
		return
	}
	m.highlighter = hl
}

func (m *Model) buildRenderer() {
	style := markdown.StyleLight
	if m.cfg.Dark {
		style = markdown.StyleDark
	}
	var md content.MarkdownRenderer
	if r, err := markdown.New(content.ContentWidth(m.width), style); err != nil {
		log.ErrorErr(log.CatUI, "markdown renderer unavailable, showing raw text", err)
	} else {
		md = r
	}
	m.renderer = content.NewRenderer(md, m.highlighter, m.cfg.Cache, content.Options{Width: m.width, Dark: m.cfg.Dark})
}

// ApplyTheme switches the background and code style and rebuilds the renderer.
func (m Model) ApplyTheme(dark bool, codeStyle string, showStatusBar bool) Model {
	m.cfg.Dark = dark
	m.cfg.CodeStyle = codeStyle
	m.cfg.ShowStatusBar = showStatusBar
	m.buildHighlighter()
	m.buildRenderer()
	m.layout()
	m.refresh()
	return m
}

// Init starts the initial preview, if one is shown.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// State returns the selection state.
func (m Model) State() selection.State { return m.state }

// ViewModel returns the derived view model of the current selection.
func (m Model) ViewModel() content.ViewModel { return m.vm }

// Preview returns the live preview, or nil when none is instantiated.
func (m Model) Preview() preview.Preview { return m.preview }

// PreviewFocused reports whether keys go to the live preview.
func (m Model) PreviewFocused() bool { return m.previewFocused }

// FocusedLink returns the 1-based focused link, or 0.
func (m Model) FocusedLink() int { return m.focusedLink }

// Viewer returns the link viewer.
func (m Model) Viewer() linkviewer.Model { return m.viewer }

// HelpVisible reports whether the full help is shown.
func (m Model) HelpVisible() bool { return m.help.ShowAll }

// Close releases the live preview.
func (m Model) Close() Model {
	m.closePreview()
	m.viewer = m.viewer.Close()
	return m
}

func (m Model) previewSize() (int, int) {
	return max(content.ContentWidth(m.width)-1, 10), previewHeight
}

// ensurePreview instantiates the preview of the selected demo when the
// example section is open and none exists yet.
func (m *Model) ensurePreview() tea.Cmd {
	if m.preview != nil || !m.state.ExampleExpanded() || !m.state.HasExample() {
		return nil
	}
	d, ok := m.state.Selected()
	if !ok || d.Preview == nil {
		return nil
	}
	m.preview = d.Preview().SetSize(m.previewSize())
	log.Debug(log.CatUI, "preview created", "demo", d.Title)
	return m.preview.Init()
}

func (m *Model) closePreview() {
	if m.preview != nil {
		m.preview.Close()
		m.preview = nil
	}
	m.previewFocused = false
}

// changeSelection replaces the state after a selection change. The outgoing
// preview is always closed.
func (m *Model) changeSelection(st selection.State) tea.Cmd {
	m.closePreview()
	m.state = st
	m.focusedLink = 0
	m.viewport.GotoTop()
	cmd := m.ensurePreview()
	m.refresh()
	if d, ok := st.Selected(); ok {
		log.Debug(log.CatUI, "demo selected", "title", d.Title, "index", st.Index())
	}
	return cmd
}

func (m *Model) refresh() {
	m.vm = content.Derive(m.state)
	m.scrollCarousel()

	focus := content.SectionNone
	switch {
	case m.previewFocused:
		focus = content.SectionExample
	case m.focusedLink > 0:
		focus = content.SectionHeader
	}
	var pv string
	if m.preview != nil {
		pv = m.preview.View()
	}
	m.viewport.SetContent(m.renderer.Render(m.vm, content.Frame{
		Preview:     pv,
		FocusedLink: m.focusedLink,
		Focus:       focus,
	}))
}

func (m *Model) layout() {
	m.viewport.Width = m.width
	m.viewport.Height = max(m.height-2-lipgloss.Height(m.footerView()), 1)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.buildRenderer()
	m.viewer = m.viewer.SetSize(width, height)
	if m.preview != nil {
		m.preview = m.preview.SetSize(m.previewSize())
	}
	m.layout()
	m.refresh()
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case content.LinkActivatedMsg:
		var cmd tea.Cmd
		m.viewer, cmd = m.viewer.Open(msg.URL)
		log.Info(log.CatUI, "link opened", "index", msg.Index, "url", msg.URL)
		return m, cmd

	case linkviewer.ClosedMsg:
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.viewer.Visible() {
			var cmd tea.Cmd
			m.viewer, cmd = m.viewer.Update(msg)
			return m, cmd
		}
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.viewer.Visible() {
			var cmd tea.Cmd
			m.viewer, cmd = m.viewer.Update(msg)
			return m, cmd
		}
		return m.handleMouse(msg)
	}

	// Everything else may belong to the viewer or to the live preview.
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.viewer, cmd = m.viewer.Update(msg)
	cmds = append(cmds, cmd)
	if m.preview != nil {
		m.preview, cmd = m.preview.Update(msg)
		cmds = append(cmds, cmd)
		m.refresh()
	}
	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.previewFocused {
		if key.Matches(msg, keys.Browser.Release) {
			m.previewFocused = false
			m.refresh()
			return m, nil
		}
		var cmd tea.Cmd
		if m.preview != nil {
			m.preview, cmd = m.preview.Update(msg)
		}
		m.refresh()
		return m, cmd
	}

	k := keys.Browser
	switch {
	case key.Matches(msg, k.Quit):
		m = m.Close()
		return m, tea.Quit

	case key.Matches(msg, k.OpenLinkN):
		return m, content.ActivateLink(m.vm, keys.LinkNumber(msg.String()))

	case key.Matches(msg, k.Prev):
		return m, m.changeSelection(m.state.Prev())

	case key.Matches(msg, k.Next):
		return m, m.changeSelection(m.state.Next())

	case key.Matches(msg, k.ToggleHeader):
		m.state = m.state.ToggleHeader()

	case key.Matches(msg, k.ToggleExample):
		m.state = m.state.ToggleExample()
		if !m.state.ExampleExpanded() {
			m.previewFocused = false
		}
		cmd := m.ensurePreview()
		m.refresh()
		return m, cmd

	case key.Matches(msg, k.ToggleCode):
		m.state = m.state.ToggleCode()

	case key.Matches(msg, k.ToggleVariant):
		m.state = m.state.ToggleCodeVariant()

	case key.Matches(msg, k.NextLink):
		if n := len(m.vm.Header.Links); n > 0 {
			m.focusedLink = m.focusedLink%n + 1
		}

	case key.Matches(msg, k.PrevLink):
		if n := len(m.vm.Header.Links); n > 0 {
			if m.focusedLink <= 1 {
				m.focusedLink = n
			} else {
				m.focusedLink--
			}
		}

	case key.Matches(msg, k.OpenLink):
		return m, content.ActivateLink(m.vm, m.focusedLink)

	case key.Matches(msg, k.Interact):
		if !m.state.HasExample() {
			return m, nil
		}
		if !m.state.ExampleExpanded() {
			m.state = m.state.ToggleExample()
		}
		cmd := m.ensurePreview()
		m.previewFocused = m.preview != nil
		m.refresh()
		return m, cmd

	case key.Matches(msg, k.Release):
		m.focusedLink = 0

	case key.Matches(msg, k.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	m.refresh()
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	for i := m.carouselStart; i < m.carouselEnd; i++ {
		if zone.Get(CarouselZoneID(i)).InBounds(msg) {
			return m, m.changeSelection(m.state.SelectIndex(i))
		}
	}
	for n := 1; n <= len(m.vm.Header.Links); n++ {
		if zone.Get(content.LinkZoneID(n)).InBounds(msg) {
			m.focusedLink = n
			m.refresh()
			return m, content.ActivateLink(m.vm, n)
		}
	}
	return m, nil
}

func (m Model) footerView() string {
	h := m.help
	h.Width = m.width
	helpView := h.View(keys.Browser)
	if !m.cfg.ShowStatusBar {
		return helpView
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.statusView(), helpView)
}

func (m Model) statusView() string {
	status := "No demo selected"
	if d, ok := m.state.Selected(); ok {
		status = fmt.Sprintf("%d/%d  %s", m.state.Index()+1, m.state.Catalog().Len(), d.Title)
	}
	if m.previewFocused {
		status += "  ·  example focused, esc to leave"
	}
	return styles.StatusBarStyle.Render(status)
}

// View renders the screen.
func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.carouselView(),
		"",
		m.viewport.View(),
		m.footerView(),
	)
	return m.viewer.Overlay(body)
}
