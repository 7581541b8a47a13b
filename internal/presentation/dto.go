package presentation

import (
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/markdown"
)

// DemoDTO represents a catalog entry for presentation
type DemoDTO struct {
	Index          int       `json:"index"`
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Subtitle       string    `json:"subtitle,omitempty"`
	Icon           string    `json:"icon,omitempty"`
	Category       string    `json:"category"`
	HasCode        bool      `json:"has_code"`
	HasFullVariant bool      `json:"has_full_variant"`
	HasExample     bool      `json:"has_example"`
	Links          []LinkDTO `json:"links"` // always present, extracted from the description
}

// LinkDTO represents a link found in a description
type LinkDTO struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}

// FromDescriptor converts the descriptor at position index to a DTO.
func FromDescriptor(index int, d catalog.Descriptor) DemoDTO {
	found := markdown.Links(d.Description)
	links := make([]LinkDTO, len(found))
	for i, l := range found {
		links[i] = LinkDTO{Text: l.Text, URL: l.URL}
	}

	return DemoDTO{
		Index:          index,
		ID:             d.ID().String(),
		Title:          d.Title,
		Subtitle:       d.Subtitle,
		Icon:           d.Icon,
		Category:       string(d.Category),
		HasCode:        d.HasCode(),
		HasFullVariant: d.HasFullVariant(),
		HasExample:     d.HasExample(),
		Links:          links,
	}
}

// FromCatalog converts every entry of c, in order.
func FromCatalog(c *catalog.Catalog) []DemoDTO {
	all := c.All()
	demos := make([]DemoDTO, len(all))
	for i, d := range all {
		demos[i] = FromDescriptor(i, d)
	}
	return demos
}
