package preview

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// incrementRequestMsg is sent by a bound child asking the parent to change
// the shared value.
type incrementRequestMsg struct{ owner *DataFlow }

// copyChild owns a private copy of the parent's value. When keyed, it is
// re-seeded every time the parent value changes.
type copyChild struct {
	value int
	keyed bool
}

// boundChild renders the parent's value and asks the parent to change it.
type boundChild struct {
	value int
}

const (
	flowParent = iota
	flowCopy
	flowCopyKeyed
	flowBound
	flowPanes
)

// DataFlow shows state owned by a parent and shared with children by value
// or by message.
type DataFlow struct {
	base
	value int
	copy  copyChild
	keyed copyChild
	bound boundChild
	focus int
}

// NewDataFlow creates the data flow preview.
func NewDataFlow() *DataFlow {
	return &DataFlow{keyed: copyChild{keyed: true}}
}

func (p *DataFlow) Init() tea.Cmd            { return nil }
func (p *DataFlow) SetSize(w, h int) Preview { p.setSize(w, h); return p }
func (p *DataFlow) Close()                   {}

func (p *DataFlow) Update(msg tea.Msg) (Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case incrementRequestMsg:
		if msg.owner == p {
			p.setValue(p.value + 1)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "right":
			p.focus = (p.focus + 1) % flowPanes
		case "shift+tab", "left":
			p.focus = (p.focus - 1 + flowPanes) % flowPanes
		case "enter", " ", "+":
			return p, p.press()
		}
	}
	return p, nil
}

func (p *DataFlow) press() tea.Cmd {
	switch p.focus {
	case flowParent:
		p.setValue(p.value + 1)
	case flowCopy:
		p.copy.value++
	case flowCopyKeyed:
		p.keyed.value++
	case flowBound:
		owner := p
		return func() tea.Msg { return incrementRequestMsg{owner: owner} }
	}
	return nil
}

// setValue updates the parent and pushes the value down.
func (p *DataFlow) setValue(v int) {
	p.value = v
	p.bound.value = v
	if p.keyed.keyed {
		p.keyed.value = v
	}
}

// Values returns the parent, copy, keyed copy and bound values.
func (p *DataFlow) Values() (parent, copied, keyed, bound int) {
	return p.value, p.copy.value, p.keyed.value, p.bound.value
}

func (p *DataFlow) View() string {
	box := func(idx int, title, kind string, v int) string {
		border := styles.BorderDefaultColor
		if p.focus == idx {
			border = styles.BorderFocusColor
		}
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1).
			Render(fmt.Sprintf("%s\n%s\nShow A: %d",
				lipgloss.NewStyle().Bold(true).Render(title),
				styles.HintStyle.Render(kind), v))
	}
	parent := box(flowParent, "Parent", "owns A", p.value)
	children := lipgloss.JoinHorizontal(lipgloss.Top,
		box(flowCopy, "Copy", "own copy", p.copy.value),
		box(flowCopyKeyed, "Keyed copy", "reset on change", p.keyed.value),
		box(flowBound, "Bound", "by message", p.bound.value),
	)
	return parent + "\n" + children + "\n" + styles.HintStyle.Render("[tab] focus  [enter] add 1 to A")
}
