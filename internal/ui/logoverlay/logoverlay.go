// Package logoverlay provides an in-app log viewer that shows recent entries
// without leaving the TUI.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/ui/overlay"
	"github.com/zjrosen/tuitour/internal/ui/panes"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

const (
	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40
)

// categories cycled with tab. "" shows every category.
var categories = []log.Category{
	"",
	log.CatUI,
	log.CatConfig,
	log.CatCatalog,
	log.CatFetch,
	log.CatCache,
	log.CatWatcher,
	log.CatMode,
}

// CloseMsg is sent when the overlay closes.
type CloseMsg struct{}

// Model is the log overlay state.
type Model struct {
	visible  bool
	minLevel log.Level
	category int
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden log overlay.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Update handles keys while visible, and refreshes on new log entries.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.visible {
		return m, nil
	}

	switch msg := msg.(type) {
	case log.LogEvent:
		atBottom := m.viewport.AtBottom()
		m.refreshViewport()
		if atBottom {
			m.viewport.GotoBottom()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			log.ClearBuffer()
			m.refreshViewport()
		case "d":
			m.setLevel(log.LevelDebug)
		case "i":
			m.setLevel(log.LevelInfo)
		case "w":
			m.setLevel(log.LevelWarn)
		case "e":
			m.setLevel(log.LevelError)
		case "tab":
			m.category = (m.category + 1) % len(categories)
			m.refreshViewport()
		case "j", "down":
			m.viewport.ScrollDown(1)
		case "k", "up":
			m.viewport.ScrollUp(1)
		case "g":
			m.viewport.GotoTop()
		case "G":
			m.viewport.GotoBottom()
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+x", "esc", "q":
			m.visible = false
			return m, func() tea.Msg { return CloseMsg{} }
		}
	}
	return m, nil
}

func (m *Model) setLevel(level log.Level) {
	m.minLevel = level
	m.refreshViewport()
}

// View renders the overlay box.
func (m Model) View() string {
	if !m.visible {
		return ""
	}
	width := m.boxWidth()
	return panes.BorderedPane(panes.BorderConfig{
		Content:     m.viewport.View(),
		Width:       width,
		Height:      m.viewport.Height + 2,
		TopLeft:     "Logs",
		TopRight:    m.filterLabel(),
		BottomLeft:  m.hints(),
		BottomRight: panes.ScrollIndicator(m.viewport),
		TitleColor:  styles.OverlayTitleColor,
		BorderColor: styles.OverlayBorderColor,
	})
}

// Overlay renders the overlay centred on bg.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    m.width,
		Height:   m.height,
		Position: overlay.Center,
	}, m.View(), bg)
}

// Visible reports whether the overlay is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips visibility, scrolling to the newest entry when shown.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
}

// SetSize records the screen size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	contentWidth := m.boxWidth() - 2
	height := max(min(viewportMaxHeight, m.height-6), viewportMinHeight)

	offset := m.viewport.YOffset
	m.viewport = viewport.New(contentWidth, height)
	m.viewport.SetContent(m.content(contentWidth))
	m.viewport.SetYOffset(offset)
}

func (m Model) content(width int) string {
	var lines []string
	for _, entry := range log.GetRecentLogs(10000) {
		if m.matches(entry) {
			lines = append(lines, colorize(entry, width))
		}
	}
	if len(lines) == 0 {
		return styles.PlaceholderStyle.Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// entryLevel extracts the level tag written by the logger.
func entryLevel(entry string) (log.Level, bool) {
	switch {
	case strings.Contains(entry, "[ERROR]"):
		return log.LevelError, true
	case strings.Contains(entry, "[WARN]"):
		return log.LevelWarn, true
	case strings.Contains(entry, "[INFO]"):
		return log.LevelInfo, true
	case strings.Contains(entry, "[DEBUG]"):
		return log.LevelDebug, true
	}
	return 0, false
}

func (m Model) matches(entry string) bool {
	if cat := categories[m.category]; cat != "" && !strings.Contains(entry, "["+string(cat)+"]") {
		return false
	}
	level, ok := entryLevel(entry)
	return !ok || level >= m.minLevel
}

func colorize(entry string, width int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if ansi.StringWidth(entry) > width {
		entry = ansi.Truncate(entry, width, "...")
	}

	color := styles.TextPrimaryColor
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.StatusErrorColor
		case log.LevelWarn:
			color = styles.StatusWarningColor
		case log.LevelInfo:
			color = styles.ToastBorderInfoColor
		case log.LevelDebug:
			color = styles.TextMutedColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

func (m Model) filterLabel() string {
	label := m.minLevel.String() + "+"
	if cat := categories[m.category]; cat != "" {
		label += " " + string(cat)
	}
	return label
}

func (m Model) hints() string {
	return styles.HintStyle.Render("c clear · d/i/w/e level · tab category · esc close")
}
