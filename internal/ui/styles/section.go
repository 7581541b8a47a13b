package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section expand indicators.
const (
	IndicatorExpanded  = "▾"
	IndicatorCollapsed = "▸"
)

// RenderFormSection renders a bordered section with an optional title and hint.
// When focused is true, the border uses focusedBorderColor instead of BorderDefaultColor.
func RenderFormSection(content []string, title, hint string, width int, focused bool, focusedBorderColor lipgloss.TerminalColor) string {
	borderStyle, titleStyle := sectionStyles(focused, focusedBorderColor)
	innerWidth := max(width-2, 1)

	topBorder := sectionTitleLine(title, hint, innerWidth, borderTopLeft, borderTopRight, borderStyle, titleStyle)

	lines := make([]string, 0, len(content)+2)
	lines = append(lines, topBorder)
	for _, row := range content {
		row = TruncateString(row, innerWidth)
		padding := ""
		if w := lipgloss.Width(row); w < innerWidth {
			padding = strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}
	lines = append(lines, borderStyle.Render(borderBottomLeft+strings.Repeat(borderHorizontal, innerWidth)+borderBottomRight))

	return strings.Join(lines, "\n")
}

// RenderSectionBar renders only the title bar of a collapsed section:
// ╶─ Title (hint) ──────╴
func RenderSectionBar(title, hint string, width int, focused bool, focusedBorderColor lipgloss.TerminalColor) string {
	borderStyle, titleStyle := sectionStyles(focused, focusedBorderColor)
	return sectionTitleLine(title, hint, max(width-2, 1), "╶", "╴", borderStyle, titleStyle)
}

func sectionStyles(focused bool, focusedBorderColor lipgloss.TerminalColor) (lipgloss.Style, lipgloss.Style) {
	var color lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		color = focusedBorderColor
	}
	return lipgloss.NewStyle().Foreground(color), lipgloss.NewStyle().Bold(true).Foreground(color)
}

// sectionTitleLine builds: left─ Title (hint) ──────right
func sectionTitleLine(title, hint string, innerWidth int, left, right string, borderStyle, titleStyle lipgloss.Style) string {
	if title == "" || innerWidth < 4 {
		return borderStyle.Render(left + strings.Repeat(borderHorizontal, innerWidth) + right)
	}

	hintStyle := lipgloss.NewStyle().Foreground(TextMutedColor)
	available := innerWidth - 3 // "─ " before and " " after

	title = TruncateString(title, available)
	label := titleStyle.Render(title)
	used := lipgloss.Width(title)
	if hint != "" {
		h := "(" + hint + ")"
		if used+1+lipgloss.Width(h) <= available {
			label += " " + hintStyle.Render(h)
			used += 1 + lipgloss.Width(h)
		}
	}
	dashesAfter := max(innerWidth-used-3, 0)

	return borderStyle.Render(left+borderHorizontal+" ") + label +
		borderStyle.Render(" "+strings.Repeat(borderHorizontal, dashesAfter)+right)
}
