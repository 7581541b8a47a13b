// Package icons maps catalog icon keys to terminal glyphs.
package icons

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Fallback is shown for unknown keys.
const Fallback = "•"

var glyphs = map[string]string{
	"swift":                                    "◆",
	"rectangle":                                "▭",
	"arrow.left.arrow.right.square.fill":       "⇄",
	"rectangle.on.rectangle.angled":            "❐",
	"rectangle.split.3x1":                      "☰",
	"rectangle.portrait.on.rectangle.portrait": "⧉",
	"rectangle.split.3x3":                      "▦",
	"list.bullet.rectangle":                    "≡",
	"button.programmable.square":               "⏺",
	"character.cursor.ibeam":                   "⌶",
	"calendar":                                 "▤",
	"arrow.clockwise.circle":                   "↻",
	"rectangle.3.group.bubble.left":            "⚏",
	"repeat.1.circle.fill":                     "⟳",
	"figure.roll.runningpace":                  "♿",
	"star":                                     "★",
	"logo":                                     "◈",
}

// Glyph returns the glyph for key, or Fallback.
func Glyph(key string) string {
	if g, ok := glyphs[key]; ok {
		return g
	}
	return Fallback
}

// Known reports whether key has a glyph.
func Known(key string) bool {
	_, ok := glyphs[key]
	return ok
}

// Width returns the display width of a glyph in cells, counting grapheme
// clusters rather than runes.
func Width(glyph string) int {
	return uniseg.StringWidth(glyph)
}

// Cell returns the glyph for key padded to width cells. Wide glyphs are
// left as they are.
func Cell(key string, width int) string {
	g := Glyph(key)
	if w := Width(g); w < width {
		return g + strings.Repeat(" ", width-w)
	}
	return g
}
