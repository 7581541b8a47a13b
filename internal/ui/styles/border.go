package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Border characters (rounded)
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// RenderWithTitleBorder renders content in a fixed-size box with the title
// embedded in the top border: ╭─ Title ─────╮
func RenderWithTitleBorder(content, title string, width, height int, focused bool, titleColor, focusedBorderColor lipgloss.TerminalColor) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	if focused {
		borderColor = focusedBorderColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(width-2, 1)
	contentHeight := max(height-2, 1)

	topBorder := sectionTitleLine(title, "", innerWidth, borderTopLeft, borderTopRight, borderStyle, titleStyle)
	bottomBorder := borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	constrained := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Height(contentHeight).MaxHeight(contentHeight).Render(content)
	contentLines := strings.Split(constrained, "\n")

	var b strings.Builder
	b.WriteString(topBorder)
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		b.WriteString("\n")
		b.WriteString(borderStyle.Render(borderVertical) + line + borderStyle.Render(borderVertical))
	}
	b.WriteString("\n")
	b.WriteString(bottomBorder)
	return b.String()
}
