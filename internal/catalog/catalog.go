package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a lookup matches no descriptor.
var ErrNotFound = errors.New("demo not found")

// Catalog is an ordered sequence of descriptors fixed at construction.
type Catalog struct {
	descs []Descriptor
}

// New builds a catalog from descs. Descriptors without an identity get one.
func New(descs ...Descriptor) *Catalog {
	out := make([]Descriptor, len(descs))
	for i, d := range descs {
		if d.id == uuid.Nil {
			d = NewDescriptor(d)
		}
		out[i] = d
	}
	return &Catalog{descs: out}
}

// All returns a copy of the descriptors in order.
func (c *Catalog) All() []Descriptor {
	out := make([]Descriptor, len(c.descs))
	copy(out, c.descs)
	return out
}

// Len returns the number of descriptors.
func (c *Catalog) Len() int { return len(c.descs) }

// First returns the first descriptor, if any.
func (c *Catalog) First() (Descriptor, bool) {
	if len(c.descs) == 0 {
		return Descriptor{}, false
	}
	return c.descs[0], true
}

// At returns the descriptor at i. It panics when i is out of range, like a
// slice index.
func (c *Catalog) At(i int) Descriptor { return c.descs[i] }

// IndexOf returns the position of d by identity, or -1.
func (c *Catalog) IndexOf(d Descriptor) int {
	for i, x := range c.descs {
		if x.Equal(d) {
			return i
		}
	}
	return -1
}

// Contains reports whether d is part of the catalog.
func (c *Catalog) Contains(d Descriptor) bool { return c.IndexOf(d) >= 0 }

// ByID looks a descriptor up by identity.
func (c *Catalog) ByID(id uuid.UUID) (Descriptor, bool) {
	for _, d := range c.descs {
		if d.id == id {
			return d, true
		}
	}
	return Descriptor{}, false
}

// FindByTitle matches title case-insensitively. A miss wraps ErrNotFound
// with the closest title as a suggestion.
func (c *Catalog) FindByTitle(title string) (Descriptor, error) {
	want := strings.ToLower(strings.TrimSpace(title))
	for _, d := range c.descs {
		if strings.ToLower(d.Title) == want {
			return d, nil
		}
	}
	if s := c.suggest(want); s != "" {
		return Descriptor{}, fmt.Errorf("%w: %q (did you mean %q?)", ErrNotFound, title, s)
	}
	return Descriptor{}, fmt.Errorf("%w: %q", ErrNotFound, title)
}

func (c *Catalog) suggest(want string) string {
	best, bestDist := "", -1
	for _, d := range c.descs {
		dist := levenshtein.ComputeDistance(want, strings.ToLower(d.Title))
		if bestDist < 0 || dist < bestDist {
			best, bestDist = d.Title, dist
		}
	}
	return best
}

// Titles returns all titles in order.
func (c *Catalog) Titles() []string {
	out := make([]string, len(c.descs))
	for i, d := range c.descs {
		out[i] = d.Title
	}
	return out
}
