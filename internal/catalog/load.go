package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/preview"
)

//go:embed content/demos.yaml
var embeddedDemos []byte

// entry is the YAML shape of one demo.
type entry struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Icon        string `yaml:"icon"`
	Category    string `yaml:"category"`
	Preview     string `yaml:"preview"`
	Description string `yaml:"description"`
	Code        string `yaml:"code"`
	CodeFull    string `yaml:"code_full"`
}

type document struct {
	Demos []entry `yaml:"demos"`
}

// Load builds the catalog from the embedded content.
func Load(reg *preview.Registry) (*Catalog, error) {
	return LoadFrom(bytes.NewReader(embeddedDemos), reg)
}

// LoadFrom builds a catalog from YAML read from r. Preview keys are resolved
// against reg; a nil registry leaves every descriptor without a preview and
// rejects any entry that names one.
func LoadFrom(r io.Reader, reg *preview.Registry) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return New(), nil
		}
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	seen := make(map[string]int, len(doc.Demos))
	descs := make([]Descriptor, 0, len(doc.Demos))
	for i, e := range doc.Demos {
		d, err := e.descriptor(reg)
		if err != nil {
			return nil, fmt.Errorf("demo %d: %w", i+1, err)
		}
		key := strings.ToLower(d.Title)
		if prev, dup := seen[key]; dup {
			return nil, fmt.Errorf("demo %d: duplicate title %q (first at %d)", i+1, d.Title, prev)
		}
		seen[key] = i + 1
		descs = append(descs, d)
	}

	log.Info(log.CatCatalog, "catalog loaded", "demos", len(descs))
	return New(descs...), nil
}

func (e entry) descriptor(reg *preview.Registry) (Descriptor, error) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return Descriptor{}, errors.New("title is empty")
	}
	cat, err := ParseCategory(e.Category)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%q: %w", title, err)
	}

	var factory preview.Factory
	if e.Preview != "" {
		if reg == nil {
			return Descriptor{}, fmt.Errorf("%q: %w: %q", title, preview.ErrUnknownPreview, e.Preview)
		}
		factory, err = reg.Get(e.Preview)
		if err != nil {
			return Descriptor{}, fmt.Errorf("%q: %w", title, err)
		}
	}

	return NewDescriptor(Descriptor{
		Title:       title,
		Subtitle:    e.Subtitle,
		Icon:        e.Icon,
		Description: strings.TrimRight(e.Description, "\n"),
		Code:        strings.TrimRight(e.Code, "\n"),
		CodeFull:    strings.TrimRight(e.CodeFull, "\n"),
		Category:    cat,
		Preview:     factory,
	}), nil
}
