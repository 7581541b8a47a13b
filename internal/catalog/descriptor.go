// Package catalog holds the demo descriptors shown by the browser and the
// ordered, immutable catalog they live in.
package catalog

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zjrosen/tuitour/internal/preview"
)

// Category classifies a descriptor.
type Category string

// CategoryView is the only category today.
const CategoryView Category = "view"

// ParseCategory validates s. An empty value defaults to CategoryView.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case "", CategoryView:
		return CategoryView, nil
	default:
		return "", fmt.Errorf("unknown category %q", s)
	}
}

// Descriptor describes one demo. Two descriptors are equal only when they
// share an ID, regardless of content.
type Descriptor struct {
	id uuid.UUID

	Title       string
	Subtitle    string
	Icon        string
	Description string // markdown
	Code        string
	CodeFull    string
	Category    Category
	Preview     preview.Factory // nil means no live example
}

// NewDescriptor stamps d with a fresh identity.
func NewDescriptor(d Descriptor) Descriptor {
	d.id = uuid.New()
	if d.Category == "" {
		d.Category = CategoryView
	}
	return d
}

// ID returns the descriptor identity. The zero UUID means the descriptor
// was never constructed through NewDescriptor.
func (d Descriptor) ID() uuid.UUID { return d.id }

// Equal reports identity equality.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.id != uuid.Nil && d.id == other.id
}

// HasCode reports whether a short code sample exists.
func (d Descriptor) HasCode() bool { return d.Code != "" }

// HasExample reports whether a live preview exists.
func (d Descriptor) HasExample() bool { return d.Preview != nil }

// HasFullVariant reports whether a distinct full sample exists.
func (d Descriptor) HasFullVariant() bool {
	return d.CodeFull != "" && d.CodeFull != d.Code
}
