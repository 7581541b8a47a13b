// Package welcome implements the first screen of the tour.
package welcome

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"

	"github.com/zjrosen/tuitour/internal/icons"
	"github.com/zjrosen/tuitour/internal/keys"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// StartZoneID is the bubblezone ID of the Start button.
const StartZoneID = "start"

// Tagline is shown under the heading.
const Tagline = "A guided tour of terminal user interfaces in Go. Each stop pairs a short " +
	"explanation with a live example you can play with and the code that builds it."

// StartMsg asks the shell to enter the demo browser.
type StartMsg struct{}

// Model is the welcome screen.
type Model struct {
	width  int
	height int
}

// New creates the welcome screen.
func New() Model {
	return Model{}
}

// SetSize sets the screen size.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

func start() tea.Msg { return StartMsg{} }

// Update emits StartMsg on enter, s or a click on the button.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.Welcome.Start) {
			return m, start
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
			zone.Get(StartZoneID).InBounds(msg) {
			return m, start
		}
	}
	return m, nil
}

// View renders the screen centred in the terminal.
func (m Model) View() string {
	wrap := 60
	if m.width > 0 {
		wrap = min(wrap, max(m.width-4, 20))
	}

	logo := lipgloss.NewStyle().Foreground(styles.AccentPrimaryColor).Bold(true).
		Render(icons.Glyph("logo"))
	heading := lipgloss.NewStyle().Bold(true).Render("Welcome")
	tagline := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor).
		Render(wordwrap.String(Tagline, wrap))
	button := zone.Mark(StartZoneID, styles.PrimaryButtonFocusedStyle.Render("Start"))
	hint := styles.HintStyle.Render("enter/s start · q quit")

	body := lipgloss.JoinVertical(lipgloss.Center,
		logo,
		styles.TitleBadgeStyle.Render("tuitour"),
		"",
		heading,
		"",
		lipgloss.NewStyle().Align(lipgloss.Center).Render(tagline),
		"",
		button,
		"",
		hint,
	)
	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}
