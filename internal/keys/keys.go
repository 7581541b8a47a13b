// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// BrowserKeyMap defines the keybindings for the demo browser.
type BrowserKeyMap struct {
	// Carousel
	Prev key.Binding
	Next key.Binding

	// Sections
	ToggleHeader  key.Binding
	ToggleExample key.Binding
	ToggleCode    key.Binding
	ToggleVariant key.Binding

	// Links
	NextLink  key.Binding
	PrevLink  key.Binding
	OpenLink  key.Binding
	OpenLinkN key.Binding

	// Scrolling
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	// Preview
	Interact key.Binding
	Release  key.Binding

	// General
	Help key.Binding
	Quit key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k BrowserKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Interact, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k BrowserKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown}, // Navigation
		{k.ToggleHeader, k.ToggleExample, k.ToggleCode, k.ToggleVariant}, // Sections
		{k.NextLink, k.PrevLink, k.OpenLink, k.OpenLinkN},                // Links
		{k.Interact, k.Release, k.Help, k.Quit},                          // General
	}
}

// Browser holds the demo browser bindings.
var Browser = BrowserKeyMap{
	Prev: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "previous demo"),
	),
	Next: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next demo"),
	),

	ToggleHeader: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "toggle header"),
	),
	ToggleExample: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "toggle example"),
	),
	ToggleCode: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "toggle code"),
	),
	ToggleVariant: key.NewBinding(
		key.WithKeys("f"),
		key.WithHelp("f", "full/pure code"),
	),

	NextLink: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next link"),
	),
	PrevLink: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("shift+tab", "previous link"),
	),
	OpenLink: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "open link"),
	),
	OpenLinkN: key.NewBinding(
		key.WithKeys("alt+1", "alt+2", "alt+3", "alt+4", "alt+5", "alt+6", "alt+7", "alt+8", "alt+9"),
		key.WithHelp("alt+1…9", "open link n"),
	),

	ScrollUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "scroll up"),
	),
	ScrollDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "scroll down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup", "ctrl+u"),
		key.WithHelp("pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown", "ctrl+d"),
		key.WithHelp("pgdn", "page down"),
	),

	Interact: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "use example"),
	),
	Release: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave example"),
	),

	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Welcome holds the welcome screen bindings.
var Welcome = struct {
	Start key.Binding
	Quit  key.Binding
}{
	Start: key.NewBinding(
		key.WithKeys("enter", "s"),
		key.WithHelp("enter/s", "start"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// App holds bindings handled above every screen.
var App = struct {
	LogOverlay key.Binding
	ForceQuit  key.Binding
}{
	LogOverlay: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug log"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

// LinkNumber returns n for an alt+n keypress, or 0 when s is not one.
func LinkNumber(s string) int {
	if len(s) == 5 && s[:4] == "alt+" && s[4] >= '1' && s[4] <= '9' {
		return int(s[4] - '0')
	}
	return 0
}
