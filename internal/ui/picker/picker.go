// Package picker provides an option picker shown either inline or as a
// modal menu over another view.
package picker

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/overlay"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// Option represents a picker option with label and value.
type Option struct {
	Label string
	Value string
	Color lipgloss.TerminalColor // optional label colour
}

// SelectMsg is emitted when the user confirms an option with enter.
type SelectMsg struct {
	Title  string
	Option Option
}

// CancelMsg is emitted when the picker is dismissed with esc.
type CancelMsg struct{}

// Model holds the picker state.
type Model struct {
	title    string
	options  []Option
	selected int
	boxWidth int
}

// New creates a new picker with the given title and options.
func New(title string, options []Option) Model {
	return Model{title: title, options: options}
}

// SetBoxWidth sets the width of the picker box. Zero means 25.
func (m Model) SetBoxWidth(width int) Model {
	m.boxWidth = width
	return m
}

// SetSelected moves the cursor. Out of range indexes are ignored.
func (m Model) SetSelected(index int) Model {
	if index >= 0 && index < len(m.options) {
		m.selected = index
	}
	return m
}

// Selected returns the option under the cursor.
func (m Model) Selected() Option {
	if m.selected >= 0 && m.selected < len(m.options) {
		return m.options[m.selected]
	}
	return Option{}
}

// Update moves the cursor (wrapping at both ends) and confirms or cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.options) == 0 {
		return m, nil
	}
	switch key.String() {
	case "j", "down", "ctrl+n":
		m.selected = (m.selected + 1) % len(m.options)
	case "k", "up", "ctrl+p":
		m.selected = (m.selected - 1 + len(m.options)) % len(m.options)
	case "enter":
		sel := SelectMsg{Title: m.title, Option: m.Selected()}
		return m, func() tea.Msg { return sel }
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }
	}
	return m, nil
}

// View renders the picker box.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)

	width := m.boxWidth
	if width == 0 {
		width = 25
	}

	lines := make([]string, 0, len(m.options))
	for i, opt := range m.options {
		labelStyle := lipgloss.NewStyle()
		if opt.Color != nil {
			labelStyle = labelStyle.Foreground(opt.Color)
		}
		if i == m.selected {
			lines = append(lines, styles.SelectionIndicatorStyle.Render(">")+labelStyle.Bold(true).Render(opt.Label))
		} else {
			lines = append(lines, " "+labelStyle.Render(opt.Label))
		}
	}

	divider := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor).Render(strings.Repeat("─", width))
	content := titleStyle.Render(m.title) + "\n" + divider + "\n" + strings.Join(lines, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(width).
		Render(content)
}

// Overlay renders the picker centred on top of background.
func (m Model) Overlay(background string, width, height int) string {
	box := m.View()
	if background == "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
	}
	return overlay.Place(overlay.Config{Width: width, Height: height, Position: overlay.Center}, box, background)
}

// FindIndexByValue returns the index of the option with the given value, or 0.
func FindIndexByValue(options []Option, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}
