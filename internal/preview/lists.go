package preview

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// beer is a list item grouped by kind.
type beer struct {
	name string
	kind string
}

func (b beer) Title() string       { return b.name }
func (b beer) Description() string { return b.kind }
func (b beer) FilterValue() string { return b.name }

var beers = []beer{
	{"Pilsner Urquell", "Pilsner"},
	{"Becks", "Pilsner"},
	{"Budweiser", "Lager"},
	{"BrewDog", "Ale"},
	{"Coopers", "Pale Ale"},
}

// groupedBeers orders items by kind, then name, so each group is contiguous.
func groupedBeers() []list.Item {
	sorted := make([]beer, len(beers))
	copy(sorted, beers)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].kind != sorted[j].kind {
			return sorted[i].kind < sorted[j].kind
		}
		return sorted[i].name < sorted[j].name
	})
	items := make([]list.Item, len(sorted))
	for i, b := range sorted {
		items[i] = b
	}
	return items
}

// Lists is a grouped, filterable list.
type Lists struct {
	base
	list       list.Model
	lastAction string
}

// NewLists creates the list preview.
func NewLists() *Lists {
	l := list.New(groupedBeers(), list.NewDefaultDelegate(), 40, 14)
	l.Title = "Beers by kind"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	return &Lists{list: l}
}

func (p *Lists) Init() tea.Cmd { return nil }
func (p *Lists) Close()        {}

func (p *Lists) SetSize(w, h int) Preview {
	p.setSize(w, h)
	p.list.SetSize(p.contentWidth(), max(h-2, 6))
	return p
}

func (p *Lists) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "enter" && !p.list.SettingFilter() {
		if b, ok := p.list.SelectedItem().(beer); ok {
			p.lastAction = fmt.Sprintf("Cheers, %s!", b.name)
		}
		return p, nil
	}
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

// LastAction returns the message shown after the last activation.
func (p *Lists) LastAction() string { return p.lastAction }

func (p *Lists) View() string {
	out := p.list.View()
	if p.lastAction != "" {
		out += "\n" + styles.HintStyle.Render(p.lastAction)
	}
	return out
}
