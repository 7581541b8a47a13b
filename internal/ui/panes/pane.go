// Package panes contains reusable bordered pane UI components.
package panes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// BorderConfig configures a bordered pane.
type BorderConfig struct {
	Content string
	Width   int // total width including borders
	Height  int // total height including borders

	// Titles embedded in the border. Any may be empty.
	TopLeft     string
	TopRight    string
	BottomLeft  string
	BottomRight string

	Focused            bool
	TitleColor         lipgloss.TerminalColor // default styles.BorderDefaultColor
	BorderColor        lipgloss.TerminalColor // unfocused border, default styles.BorderDefaultColor
	FocusedBorderColor lipgloss.TerminalColor // focused border, default BorderColor
}

// BorderedPane renders content clipped to the pane with titles in the border:
//
//	╭─ TopLeft ──────── TopRight ─╮
//	│content                      │
//	╰─ BottomLeft ── BottomRight ─╯
func BorderedPane(cfg BorderConfig) string {
	borderColor := resolveBorderColor(cfg.BorderColor, cfg.FocusedBorderColor, cfg.Focused)
	titleColor := cfg.TitleColor
	if titleColor == nil {
		titleColor = styles.BorderDefaultColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor)

	innerWidth := max(cfg.Width-2, 1)
	contentHeight := max(cfg.Height-2, 1)

	constrained := lipgloss.NewStyle().
		Width(innerWidth).MaxWidth(innerWidth).
		Height(contentHeight).MaxHeight(contentHeight).
		Render(cfg.Content)
	contentLines := strings.Split(constrained, "\n")

	lines := make([]string, 0, contentHeight+2)
	lines = append(lines, edge(cfg.TopLeft, cfg.TopRight, innerWidth, "╭", "╮", borderStyle, titleStyle))
	for i := range contentHeight {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		if w := lipgloss.Width(line); w < innerWidth {
			line += strings.Repeat(" ", innerWidth-w)
		}
		lines = append(lines, borderStyle.Render("│")+line+borderStyle.Render("│"))
	}
	lines = append(lines, edge(cfg.BottomLeft, cfg.BottomRight, innerWidth, "╰", "╯", borderStyle, titleStyle))

	return strings.Join(lines, "\n")
}

// resolveBorderColor applies the nil fallbacks: unset colours use
// styles.BorderDefaultColor, and an unset focused colour inherits BorderColor.
func resolveBorderColor(borderColor, focusedBorderColor lipgloss.TerminalColor, focused bool) lipgloss.TerminalColor {
	if borderColor == nil {
		borderColor = styles.BorderDefaultColor
	}
	if focused && focusedBorderColor != nil {
		return focusedBorderColor
	}
	return borderColor
}

// edge builds one horizontal border with optional left and right titles.
// When both do not fit the right title is dropped, then the left is truncated.
func edge(left, right string, innerWidth int, cornerL, cornerR string, borderStyle, titleStyle lipgloss.Style) string {
	const dash = "─"
	plain := borderStyle.Render(cornerL + strings.Repeat(dash, innerWidth) + cornerR)

	if left == "" && right == "" || innerWidth < 4 {
		return plain
	}

	lw, rw := lipgloss.Width(left), lipgloss.Width(right)
	// "─ " + left + " " ... " " + right + " ─"
	need := 0
	if left != "" {
		need += lw + 3
	}
	if right != "" {
		need += rw + 3
	}
	if need+1 > innerWidth && right != "" {
		right, rw = "", 0
		need = lw + 3
	}
	if right == "" && left != "" && need > innerWidth {
		left = styles.TruncateString(left, innerWidth-4)
		lw = lipgloss.Width(left)
		need = lw + 3
	}

	var b strings.Builder
	b.WriteString(borderStyle.Render(cornerL))
	if left != "" {
		b.WriteString(borderStyle.Render(dash+" ") + titleStyle.Render(left) + borderStyle.Render(" "))
	}
	b.WriteString(borderStyle.Render(strings.Repeat(dash, max(innerWidth-need, 0))))
	if right != "" {
		b.WriteString(borderStyle.Render(" ") + titleStyle.Render(right) + borderStyle.Render(" "+dash))
	}
	b.WriteString(borderStyle.Render(cornerR))
	return b.String()
}

// ScrollIndicatorStyle is used by ScrollIndicator.
var ScrollIndicatorStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)

func init() {
	styles.RegisterStyleRebuilder(func() {
		ScrollIndicatorStyle = lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	})
}

// ScrollIndicator returns "NN%" for a viewport whose content overflows, or ""
// when everything fits.
func ScrollIndicator(vp viewport.Model) string {
	if vp.TotalLineCount() <= vp.Height {
		return ""
	}
	return ScrollIndicatorStyle.Render(fmt.Sprintf("%.0f%%", vp.ScrollPercent()*100))
}
