package preview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

const (
	sliderMin = 1
	sliderMax = 8
)

type accessibilityKeys struct {
	Decrease key.Binding
	Increase key.Binding
	Send     key.Binding
	Help     key.Binding
}

func (k accessibilityKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Decrease, k.Increase, k.Send, k.Help}
}

func (k accessibilityKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Decrease, k.Increase}, {k.Send, k.Help}}
}

var defaultAccessibilityKeys = accessibilityKeys{
	Decrease: key.NewBinding(key.WithKeys("left", "-"), key.WithHelp("←/-", "decrease")),
	Increase: key.NewBinding(key.WithKeys("right", "+"), key.WithHelp("→/+", "increase")),
	Send:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "send the current value")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
}

// Accessibility pairs a slider with a spoken-style value label and
// described key hints.
type Accessibility struct {
	base
	value int
	sent  string
	keys  accessibilityKeys
	help  help.Model
}

// NewAccessibility creates the accessibility preview.
func NewAccessibility() *Accessibility {
	return &Accessibility{value: sliderMin, keys: defaultAccessibilityKeys, help: help.New()}
}

func (p *Accessibility) Init() tea.Cmd { return nil }
func (p *Accessibility) Close()        {}

func (p *Accessibility) SetSize(w, h int) Preview {
	p.setSize(w, h)
	p.help.Width = w
	return p
}

func (p *Accessibility) Update(msg tea.Msg) (Preview, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	switch {
	case key.Matches(k, p.keys.Decrease):
		p.value = max(p.value-1, sliderMin)
	case key.Matches(k, p.keys.Increase):
		p.value = min(p.value+1, sliderMax)
	case key.Matches(k, p.keys.Send):
		p.sent = p.ValueLabel()
	case key.Matches(k, p.keys.Help):
		p.help.ShowAll = !p.help.ShowAll
	}
	return p, nil
}

// Value returns the slider position.
func (p *Accessibility) Value() int { return p.value }

// ValueLabel is the spoken form of the slider value.
func (p *Accessibility) ValueLabel() string {
	return fmt.Sprintf("Value %d out of %d", p.value, sliderMax)
}

func (p *Accessibility) View() string {
	filled := lipgloss.NewStyle().Foreground(styles.AccentPrimaryColor).
		Render(strings.Repeat("█", p.value))
	empty := lipgloss.NewStyle().Foreground(styles.TextMutedColor).
		Render(strings.Repeat("░", sliderMax-p.value))

	var b strings.Builder
	b.WriteString("Volume  " + filled + empty + "\n")
	b.WriteString(p.ValueLabel() + "\n\n")
	b.WriteString(styles.SecondaryButtonStyle.Render("Send") + "\n")
	if p.sent != "" {
		b.WriteString(styles.HintStyle.Render("Sent: "+p.sent) + "\n")
	}
	b.WriteString("\n" + p.help.View(p.keys))
	return b.String()
}
