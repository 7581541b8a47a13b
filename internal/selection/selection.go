// Package selection holds the browser's selection state: which descriptor
// is shown, which code variant is active and which sections are expanded.
//
// State is an immutable value. Every operation returns a new State and
// leaves the receiver untouched.
package selection

import (
	"github.com/zjrosen/tuitour/internal/catalog"
)

// State is a snapshot of the selection.
type State struct {
	catalog  *catalog.Catalog
	selected catalog.Descriptor
	index    int // -1 when nothing is selected

	hasCode    bool
	hasExample bool
	showFull   bool

	headerExpanded  bool
	exampleExpanded bool
	codeExpanded    bool
}

// New selects the first descriptor of c, if any.
func New(c *catalog.Catalog) State {
	if c == nil {
		c = catalog.New()
	}
	st := State{
		catalog:        c,
		index:          -1,
		headerExpanded: true,
	}
	if first, ok := c.First(); ok {
		st = st.Select(first)
	}
	return st
}

// Select makes d current and resets the code variant. Descriptors outside
// the catalog are ignored. The catalog's own entry is stored, so edits to
// the caller's copy of d never reach the selection.
func (s State) Select(d catalog.Descriptor) State {
	idx := s.catalog.IndexOf(d)
	if idx < 0 {
		return s
	}
	entry := s.catalog.At(idx)
	s.selected = entry
	s.index = idx
	s.showFull = false
	s.hasCode = entry.HasCode()
	s.hasExample = entry.HasExample()
	return s
}

// SelectIndex selects the descriptor at i, wrapping out-of-range values.
func (s State) SelectIndex(i int) State {
	n := s.catalog.Len()
	if n == 0 {
		return s
	}
	i = ((i % n) + n) % n
	return s.Select(s.catalog.At(i))
}

// Next selects the following descriptor, wrapping to the first.
func (s State) Next() State {
	if s.index < 0 {
		return s.SelectIndex(0)
	}
	return s.SelectIndex(s.index + 1)
}

// Prev selects the preceding descriptor, wrapping to the last.
func (s State) Prev() State {
	if s.index < 0 {
		return s.SelectIndex(-1)
	}
	return s.SelectIndex(s.index - 1)
}

// ToggleCodeVariant flips between the short and full sample. It does
// nothing without a selection or when the full sample is empty.
func (s State) ToggleCodeVariant() State {
	if s.index < 0 || s.selected.CodeFull == "" {
		return s
	}
	s.showFull = !s.showFull
	return s
}

// CurrentCode returns the sample for the active variant.
func (s State) CurrentCode() string {
	if s.index < 0 {
		return ""
	}
	if s.showFull {
		return s.selected.CodeFull
	}
	return s.selected.Code
}

func (s State) ToggleHeader() State {
	s.headerExpanded = !s.headerExpanded
	return s
}

func (s State) ToggleExample() State {
	s.exampleExpanded = !s.exampleExpanded
	return s
}

func (s State) ToggleCode() State {
	s.codeExpanded = !s.codeExpanded
	return s
}

// Selected returns the current descriptor.
func (s State) Selected() (catalog.Descriptor, bool) {
	if s.index < 0 {
		return catalog.Descriptor{}, false
	}
	return s.selected, true
}

// Catalog returns the catalog the state selects from.
func (s State) Catalog() *catalog.Catalog { return s.catalog }

func (s State) Index() int            { return s.index }
func (s State) HasCode() bool         { return s.hasCode }
func (s State) HasExample() bool      { return s.hasExample }
func (s State) ShowFull() bool        { return s.showFull }
func (s State) HeaderExpanded() bool  { return s.headerExpanded }
func (s State) ExampleExpanded() bool { return s.exampleExpanded }
func (s State) CodeExpanded() bool    { return s.codeExpanded }
