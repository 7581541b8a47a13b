// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/overlay"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
	StyleWarn
)

// ShowMsg asks the root model to display a toast. Components that do not own
// the toaster return it as a command.
type ShowMsg struct {
	Message string
	Style   Style
}

// Show returns a command emitting ShowMsg.
func Show(message string, style Style) tea.Cmd {
	return func() tea.Msg { return ShowMsg{Message: message, Style: style} }
}

// DismissMsg hides the toast with the matching generation.
type DismissMsg struct {
	gen int
}

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	gen     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Update handles ShowMsg and DismissMsg. Each toast schedules its own
// dismissal; a dismissal for an older toast is ignored.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ShowMsg:
		m.message = msg.Message
		m.style = msg.Style
		m.visible = true
		m.gen++
		gen := m.gen
		return m, tea.Tick(DefaultDuration, func(time.Time) tea.Msg { return DismissMsg{gen: gen} })
	case DismissMsg:
		if msg.gen == m.gen {
			m.visible = false
			m.message = ""
		}
	}
	return m, nil
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the current toast text.
func (m Model) Message() string {
	return m.message
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var icon string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		icon = "✗"
	case StyleInfo:
		style = style.BorderForeground(styles.ToastBorderInfoColor)
		icon = "i"
	case StyleWarn:
		style = style.BorderForeground(styles.ToastBorderWarnColor)
		icon = "!"
	default:
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		icon = "✓"
	}

	return style.Render(icon + " " + m.message)
}

// Overlay renders the toast in the bottom-right corner of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.BottomRight,
		PadX:     1,
		PadY:     1,
	}, m.View(), bg)
}
