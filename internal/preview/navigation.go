package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

type product struct {
	title  string
	detail string
}

var products = []product{
	{"Apple", "Crisp and sweet. Keeps for weeks."},
	{"Melon", "Heavy, juicy, best served cold."},
	{"Cherry", "Small stone fruit, short season."},
}

// Navigation is a master/detail stack: a product list that pushes a detail
// page and pops back.
type Navigation struct {
	base
	cursor int
	stack  []int // pushed product indexes
}

// NewNavigation creates the master/detail preview.
func NewNavigation() *Navigation { return &Navigation{} }

func (p *Navigation) Init() tea.Cmd            { return nil }
func (p *Navigation) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Navigation) Close()                   {}

func (p *Navigation) Update(msg tea.Msg) (Preview, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}
	if len(p.stack) > 0 {
		switch key.String() {
		case "backspace", "left", "h":
			p.stack = p.stack[:len(p.stack)-1]
		}
		return p, nil
	}
	switch key.String() {
	case "up", "k":
		p.cursor = (p.cursor - 1 + len(products)) % len(products)
	case "down", "j":
		p.cursor = (p.cursor + 1) % len(products)
	case "enter", "right", "l":
		p.stack = append(p.stack, p.cursor)
	}
	return p, nil
}

// Depth returns how many pages are pushed on top of the list.
func (p *Navigation) Depth() int { return len(p.stack) }

func (p *Navigation) View() string {
	title := lipgloss.NewStyle().Bold(true)
	if len(p.stack) > 0 {
		prod := products[p.stack[len(p.stack)-1]]
		return styles.HintStyle.Render("‹ Products") + "\n" +
			title.Render(prod.title) + "\n\n" +
			prod.detail + "\n\n" +
			styles.HintStyle.Render("[backspace] back")
	}
	var b strings.Builder
	b.WriteString(title.Render("Products") + "\n")
	for i, prod := range products {
		if i == p.cursor {
			b.WriteString(styles.SelectionIndicatorStyle.Render(">") + prod.title + "  ›\n")
		} else {
			b.WriteString(" " + prod.title + "  ›\n")
		}
	}
	b.WriteString(styles.HintStyle.Render("[j/k] move  [enter] open"))
	return b.String()
}
