package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// Text shows the text attributes a terminal can render.
type Text struct {
	base
}

// NewText creates the styled text preview.
func NewText() *Text { return &Text{} }

func (p *Text) Init() tea.Cmd                     { return nil }
func (p *Text) Update(tea.Msg) (Preview, tea.Cmd) { return p, nil }
func (p *Text) SetSize(w, h int) Preview          { p.setSize(w, h); return p }
func (p *Text) Close()                            {}

func (p *Text) View() string {
	plain := lipgloss.NewStyle()
	rows := []string{
		plain.Bold(true).Render("Bold"),
		plain.Italic(true).Render("Italic"),
		plain.Underline(true).Render("Underline"),
		plain.Strikethrough(true).Render("Strikethrough"),
		plain.Faint(true).Render("Faint"),
		plain.Foreground(styles.AccentPrimaryColor).Render("Accent colour"),
		plain.Foreground(styles.ButtonTextColor).Background(styles.StatusErrorColor).Padding(0, 1).Render("Background"),
	}
	return strings.Join(rows, "\n")
}

var cardBorders = []struct {
	name   string
	border lipgloss.Border
}{
	{"rounded", lipgloss.RoundedBorder()},
	{"normal", lipgloss.NormalBorder()},
	{"thick", lipgloss.ThickBorder()},
	{"double", lipgloss.DoubleBorder()},
}

// Styles applies one reusable card style to several items. Changing the
// style changes every item at once.
type Styles struct {
	base
	border  int
	padding bool
}

// NewStyles creates the reusable style preview.
func NewStyles() *Styles { return &Styles{padding: true} }

func (p *Styles) Init() tea.Cmd            { return nil }
func (p *Styles) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Styles) Close()                   {}

func (p *Styles) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "b":
			p.border = (p.border + 1) % len(cardBorders)
		case "p":
			p.padding = !p.padding
		}
	}
	return p, nil
}

// card is the shared modifier.
func (p *Styles) card() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(cardBorders[p.border].border).
		BorderForeground(styles.AccentPrimaryColor)
	if p.padding {
		s = s.Padding(0, 2)
	}
	return s
}

func (p *Styles) View() string {
	card := p.card()
	items := lipgloss.JoinHorizontal(lipgloss.Top,
		card.Render("Button 1"),
		" ",
		card.Render("Button 2"),
		" ",
		card.Render("Button 3"),
	)
	status := fmt.Sprintf("border: %s  padding: %t", cardBorders[p.border].name, p.padding)
	return items + "\n" + styles.HintStyle.Render(status+"  [b] border  [p] padding")
}
