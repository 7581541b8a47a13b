package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/picker"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

var buttonLabels = []string{"Increment", "Decrement", "Reset"}

// Buttons is a focusable row of buttons driving a counter.
type Buttons struct {
	base
	focus int
	count int
}

// NewButtons creates the button preview.
func NewButtons() *Buttons { return &Buttons{} }

func (p *Buttons) Init() tea.Cmd            { return nil }
func (p *Buttons) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Buttons) Close()                   {}

func (p *Buttons) Update(msg tea.Msg) (Preview, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	n := len(buttonLabels)
	switch key.String() {
	case "tab", "right":
		p.focus = (p.focus + 1) % n
	case "shift+tab", "left":
		p.focus = (p.focus - 1 + n) % n
	case "enter", " ":
		p.press()
	}
	return p, nil
}

func (p *Buttons) press() {
	switch p.focus {
	case 0:
		p.count++
	case 1:
		p.count--
	case 2:
		p.count = 0
	}
}

// Count returns the current counter value.
func (p *Buttons) Count() int { return p.count }

func (p *Buttons) View() string {
	rendered := make([]string, len(buttonLabels))
	for i, label := range buttonLabels {
		style := styles.SecondaryButtonStyle
		if i == 0 {
			style = styles.PrimaryButtonStyle
		}
		if i == p.focus {
			style = styles.PrimaryButtonFocusedStyle
		}
		rendered[i] = style.Render(label)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, strings.Join(rendered, " "))
	return row + "\n\n" + fmt.Sprintf("Count: %d", p.count) + "\n" +
		styles.HintStyle.Render("[tab/←→] focus  [enter] press")
}

// Input echoes a text field live and adjusts a numeric stepper.
type Input struct {
	base
	name     textinput.Model
	age      int
	ageFocus bool
}

// NewInput creates the text input preview.
func NewInput() *Input {
	ti := textinput.New()
	ti.Placeholder = "Your name"
	ti.CharLimit = 40
	ti.Width = 30
	ti.Focus()
	return &Input{name: ti}
}

func (p *Input) Init() tea.Cmd { return textinput.Blink }
func (p *Input) Close()        {}

func (p *Input) SetSize(w, h int) Preview {
	p.setSize(w, h)
	p.name.Width = max(p.contentWidth()-14, 10)
	return p
}

func (p *Input) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "shift+tab":
			p.ageFocus = !p.ageFocus
			if p.ageFocus {
				p.name.Blur()
				return p, nil
			}
			return p, p.name.Focus()
		}
		if p.ageFocus {
			switch key.String() {
			case "+", "up", "right":
				p.age++
			case "-", "down", "left":
				if p.age > 0 {
					p.age--
				}
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.name, cmd = p.name.Update(msg)
	return p, cmd
}

// Value returns the typed text.
func (p *Input) Value() string { return p.name.Value() }

// Age returns the stepper value.
func (p *Input) Age() int { return p.age }

func (p *Input) View() string {
	var b strings.Builder
	b.WriteString("Name: " + p.name.View() + "\n")
	ageLine := fmt.Sprintf("Age: %d", p.age)
	if p.ageFocus {
		ageLine = styles.SelectionIndicatorStyle.Render(">") + ageLine + "  [+/-]"
	}
	b.WriteString(ageLine + "\n\n")
	if v := p.name.Value(); v != "" {
		b.WriteString("You typed this: " + v + "\n")
	} else {
		b.WriteString(styles.PlaceholderStyle.Render("Nothing typed yet") + "\n")
	}
	b.WriteString(styles.HintStyle.Render("[tab] switch field"))
	return b.String()
}

var languageOptions = []picker.Option{
	{Label: "Go", Value: "go"},
	{Label: "Rust", Value: "rust"},
	{Label: "Zig", Value: "zig"},
}

// Pickers binds a segmented control and a menu picker to one selection.
type Pickers struct {
	base
	selected int
	menu     picker.Model
	menuOpen bool
}

// NewPickers creates the pickers preview.
func NewPickers() *Pickers {
	return &Pickers{menu: picker.New("Language", languageOptions).SetBoxWidth(20)}
}

func (p *Pickers) Init() tea.Cmd            { return nil }
func (p *Pickers) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Pickers) Close()                   {}

func (p *Pickers) Update(msg tea.Msg) (Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case picker.SelectMsg:
		if p.menuOpen {
			p.selected = picker.FindIndexByValue(languageOptions, msg.Option.Value)
			p.menuOpen = false
		}
		return p, nil
	case picker.CancelMsg:
		p.menuOpen = false
		return p, nil
	case tea.KeyMsg:
		if p.menuOpen {
			var cmd tea.Cmd
			p.menu, cmd = p.menu.Update(msg)
			return p, cmd
		}
		n := len(languageOptions)
		switch msg.String() {
		case "left", "h":
			p.selected = (p.selected - 1 + n) % n
		case "right", "l":
			p.selected = (p.selected + 1) % n
		case "enter":
			p.menu = p.menu.SetSelected(p.selected)
			p.menuOpen = true
		}
	}
	return p, nil
}

// Selected returns the chosen option.
func (p *Pickers) Selected() picker.Option { return languageOptions[p.selected] }

// MenuOpen reports whether the menu picker is showing.
func (p *Pickers) MenuOpen() bool { return p.menuOpen }

func (p *Pickers) View() string {
	segments := make([]string, len(languageOptions))
	for i, opt := range languageOptions {
		if i == p.selected {
			segments[i] = styles.PrimaryButtonFocusedStyle.Render(opt.Label)
		} else {
			segments[i] = styles.SecondaryButtonStyle.Render(opt.Label)
		}
	}
	body := "Segmented: " + strings.Join(segments, "") + "\n\n" +
		"Menu: " + p.Selected().Label + " ▾\n\n" +
		"You selected: " + p.Selected().Label + "\n" +
		styles.HintStyle.Render("[←→] segment  [enter] menu")
	if !p.menuOpen {
		return body
	}
	w := max(lipgloss.Width(body), 24)
	h := max(lipgloss.Height(body), len(languageOptions)+4)
	return p.menu.Overlay(body, w, h)
}
