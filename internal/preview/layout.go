package preview

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/tuitour/internal/ui/overlay"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

var stackAlignments = []struct {
	name string
	pos  lipgloss.Position
}{
	{"start", lipgloss.Top},
	{"center", lipgloss.Center},
	{"end", lipgloss.Bottom},
}

// Stacks joins boxes horizontally or vertically.
type Stacks struct {
	base
	vertical bool
	align    int
}

// NewStacks creates the stacks preview.
func NewStacks() *Stacks { return &Stacks{} }

func (p *Stacks) Init() tea.Cmd            { return nil }
func (p *Stacks) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Stacks) Close()                   {}

func (p *Stacks) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "o":
			p.vertical = !p.vertical
		case "a":
			p.align = (p.align + 1) % len(stackAlignments)
		}
	}
	return p, nil
}

func (p *Stacks) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.AccentSecondaryColor).
		Padding(0, 1)
	// Uneven sizes make the alignment visible.
	boxes := []string{
		box.Render("1"),
		box.Render("2\n2"),
		box.Render("3 3 3\n3 3 3\n3 3 3"),
	}

	pos := stackAlignments[p.align].pos
	orientation := "horizontal"
	var joined string
	if p.vertical {
		orientation = "vertical"
		joined = lipgloss.JoinVertical(pos, boxes...)
	} else {
		joined = lipgloss.JoinHorizontal(pos, boxes...)
	}
	status := fmt.Sprintf("%s, align %s  [o] orientation  [a] alignment", orientation, stackAlignments[p.align].name)
	return joined + "\n" + styles.HintStyle.Render(status)
}

// layer is one card in the Layers preview.
type layer struct {
	label string
	color lipgloss.TerminalColor
	x, y  int
}

// Layers stacks overlapping cards. Tab raises the next card to the top.
type Layers struct {
	base
	layers []layer
	order  []int // back to front
}

// NewLayers creates the z-order preview.
func NewLayers() *Layers {
	return &Layers{
		layers: []layer{
			{label: "1 Up", color: styles.StatusSuccessColor, x: 0, y: 0},
			{label: "2 Up", color: styles.StatusErrorColor, x: 6, y: 2},
			{label: "3 Up", color: styles.AccentPrimaryColor, x: 12, y: 4},
		},
		order: []int{0, 1, 2},
	}
}

func (p *Layers) Init() tea.Cmd            { return nil }
func (p *Layers) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Layers) Close()                   {}

func (p *Layers) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab":
			// Bring the bottom card to the front.
			p.order = append(p.order[1:], p.order[0])
		case "1", "2", "3":
			p.raise(int(key.String()[0] - '1'))
		}
	}
	return p, nil
}

// raise moves layer i to the front.
func (p *Layers) raise(i int) {
	for pos, idx := range p.order {
		if idx == i {
			p.order = append(append(p.order[:pos:pos], p.order[pos+1:]...), i)
			return
		}
	}
}

// Top returns the label of the front-most card.
func (p *Layers) Top() string {
	return p.layers[p.order[len(p.order)-1]].label
}

func (p *Layers) View() string {
	const canvasW, canvasH = 26, 8
	canvas := strings.TrimSuffix(strings.Repeat(strings.Repeat(" ", canvasW)+"\n", canvasH), "\n")
	for _, idx := range p.order {
		l := p.layers[idx]
		card := lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(l.color).
			Foreground(l.color).
			Bold(true).
			Width(10).
			Align(lipgloss.Center).
			Render(l.label)
		canvas = overlay.Place(overlay.Config{
			Width:    canvasW,
			Height:   canvasH,
			Position: overlay.Absolute,
			X:        l.x,
			Y:        l.y,
		}, card, canvas)
	}
	return canvas + "\n" + styles.HintStyle.Render("front: "+p.Top()+"  [tab] cycle  [1-3] raise")
}

// Grid renders a table with a movable cell cursor.
type Grid struct {
	base
	row, col int
}

var gridCells = [][]string{
	{"Row 1, Column 1", "R 1, C 2"},
	{"R 2, C 1", "Row 2, Column 2"},
}

// NewGrid creates the grid preview.
func NewGrid() *Grid { return &Grid{} }

func (p *Grid) Init() tea.Cmd            { return nil }
func (p *Grid) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *Grid) Close()                   {}

func (p *Grid) Update(msg tea.Msg) (Preview, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		rows, cols := len(gridCells), len(gridCells[0])
		switch key.String() {
		case "up", "k":
			p.row = (p.row - 1 + rows) % rows
		case "down", "j":
			p.row = (p.row + 1) % rows
		case "left", "h":
			p.col = (p.col - 1 + cols) % cols
		case "right", "l":
			p.col = (p.col + 1) % cols
		}
	}
	return p, nil
}

// Cursor returns the highlighted cell.
func (p *Grid) Cursor() (row, col int) { return p.row, p.col }

func (p *Grid) View() string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == p.row && col == p.col {
				return s.Foreground(styles.AccentPrimaryColor).Bold(true)
			}
			return s
		}).
		Rows(gridCells...)
	return t.Render() + "\n" + styles.HintStyle.Render(fmt.Sprintf("cell %d,%d  [hjkl] move", p.row+1, p.col+1))
}
