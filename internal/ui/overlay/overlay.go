// Package overlay draws modal content on top of a background view without
// clearing the screen.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position specifies where to place the overlay content.
type Position int

const (
	// Center places the overlay in the middle of the viewport.
	Center Position = iota
	// Top places the overlay at the top center.
	Top
	// Bottom places the overlay at the bottom center.
	Bottom
	// BottomRight places the overlay in the bottom-right corner.
	BottomRight
	// Absolute places the overlay at Config.X, Config.Y.
	Absolute
)

// Config controls overlay rendering behavior.
type Config struct {
	Width    int // total viewport width
	Height   int // total viewport height
	Position Position
	PadX     int // distance from the left/right edge (BottomRight)
	PadY     int // distance from the top/bottom edge (Top, Bottom, BottomRight)
	X, Y     int // origin for Absolute
}

// Place renders fg on top of bg. Both may contain ANSI styling.
// Cells of fg beyond the viewport are clipped.
func Place(cfg Config, fg, bg string) string {
	fgLines := strings.Split(fg, "\n")
	bgLines := strings.Split(bg, "\n")

	for len(bgLines) < cfg.Height {
		bgLines = append(bgLines, strings.Repeat(" ", cfg.Width))
	}

	startX, startY := origin(cfg, lipgloss.Width(fg), len(fgLines))

	for i, fgLine := range fgLines {
		y := startY + i
		if y >= len(bgLines) {
			break
		}
		if cfg.Width > 0 {
			fgLine = ansi.Truncate(fgLine, max(cfg.Width-startX, 0), "")
		}
		bgLines[y] = splice(bgLines[y], fgLine, startX)
	}

	return strings.Join(bgLines, "\n")
}

// splice replaces the cells of line starting at x with fg.
func splice(line, fg string, x int) string {
	left := ansi.Truncate(line, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}

	var right string
	end := x + ansi.StringWidth(fg)
	if end < ansi.StringWidth(line) {
		right = ansi.TruncateLeft(line, end, "")
	}
	return left + fg + right
}

func origin(cfg Config, fgWidth, fgHeight int) (x, y int) {
	switch cfg.Position {
	case Top:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.PadY
	case Bottom:
		x = (cfg.Width - fgWidth) / 2
		y = cfg.Height - fgHeight - cfg.PadY
	case BottomRight:
		x = cfg.Width - fgWidth - cfg.PadX
		y = cfg.Height - fgHeight - cfg.PadY
	case Absolute:
		x, y = cfg.X, cfg.Y
	default:
		x = (cfg.Width - fgWidth) / 2
		y = (cfg.Height - fgHeight) / 2
	}
	return max(x, 0), max(y, 0)
}
