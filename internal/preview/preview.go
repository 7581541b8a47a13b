// Package preview contains the live example screens embedded in the demo
// browser. Each preview is a small Bubble Tea model created on demand from a
// Factory and torn down with Close when the selection moves on.
package preview

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/tuitour/internal/fetch"
)

// ErrUnknownPreview is returned by Registry.Get for unregistered names.
var ErrUnknownPreview = errors.New("unknown preview")

// Preview is a live example. Implementations are single-owner and are not
// safe for concurrent use.
type Preview interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Preview, tea.Cmd)
	View() string
	SetSize(width, height int) Preview
	// Close cancels outstanding async work. Messages arriving afterwards
	// must be ignored.
	Close()
}

// Factory creates a fresh Preview instance.
type Factory func() Preview

// Registry maps preview names to factories in registration order.
type Registry struct {
	factories map[string]Factory
	order     []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory under name.
func (r *Registry) Register(name string, f Factory) error {
	if name == "" {
		return errors.New("preview name is empty")
	}
	if f == nil {
		return fmt.Errorf("preview %q: nil factory", name)
	}
	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("preview %q already registered", name)
	}
	r.factories[name] = f
	r.order = append(r.order, name)
	return nil
}

// Get returns the factory registered under name.
func (r *Registry) Get(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPreview, name)
	}
	return f, nil
}

// Names returns registered names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Deps carries collaborators needed by previews that talk to the outside.
type Deps struct {
	Fetcher      fetch.Fetcher
	CountriesURL string
}

// DefaultRegistry registers every built-in preview.
func DefaultRegistry(deps Deps) *Registry {
	r := NewRegistry()
	builtins := []struct {
		name    string
		factory Factory
	}{
		{"text", func() Preview { return NewText() }},
		{"styles", func() Preview { return NewStyles() }},
		{"stacks", func() Preview { return NewStacks() }},
		{"layers", func() Preview { return NewLayers() }},
		{"grid", func() Preview { return NewGrid() }},
		{"lists", func() Preview { return NewLists() }},
		{"buttons", func() Preview { return NewButtons() }},
		{"input", func() Preview { return NewInput() }},
		{"pickers", func() Preview { return NewPickers() }},
		{"navigation", func() Preview { return NewNavigation() }},
		{"dataflow", func() Preview { return NewDataFlow() }},
		{"concurrency", func() Preview { return NewConcurrency(deps.Fetcher, deps.CountriesURL) }},
		{"accessibility", func() Preview { return NewAccessibility() }},
	}
	for _, b := range builtins {
		// Names are unique literals above.
		_ = r.Register(b.name, b.factory)
	}
	return r
}

// base carries the size every preview tracks.
type base struct {
	width  int
	height int
}

func (b *base) setSize(width, height int) {
	b.width = width
	b.height = height
}

// contentWidth returns a usable width, falling back when unsized.
func (b *base) contentWidth() int {
	if b.width <= 0 {
		return 60
	}
	return b.width
}
