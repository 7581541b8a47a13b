package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuitour/internal/preview"
)

func sample() *Catalog {
	return New(
		Descriptor{Title: "Alpha", Code: "a"},
		Descriptor{Title: "Beta", Code: "b", CodeFull: "b full"},
		Descriptor{Title: "Gamma"},
	)
}

func TestDescriptor_EqualityIsIdentity(t *testing.T) {
	a := NewDescriptor(Descriptor{Title: "Same"})
	b := NewDescriptor(Descriptor{Title: "Same"})

	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))

	copied := a
	copied.Title = "Changed"
	require.True(t, a.Equal(copied))

	require.False(t, Descriptor{}.Equal(Descriptor{}))
}

func TestDescriptor_Flags(t *testing.T) {
	tests := []struct {
		name       string
		d          Descriptor
		hasCode    bool
		hasExample bool
		hasVariant bool
	}{
		{name: "empty", d: Descriptor{}},
		{name: "short only", d: Descriptor{Code: "x"}, hasCode: true},
		{name: "full equals short", d: Descriptor{Code: "x", CodeFull: "x"}, hasCode: true},
		{name: "distinct full", d: Descriptor{Code: "x", CodeFull: "xy"}, hasCode: true, hasVariant: true},
		{name: "full only", d: Descriptor{CodeFull: "xy"}, hasVariant: true},
		{
			name:       "preview",
			d:          Descriptor{Preview: func() preview.Preview { return preview.NewText() }},
			hasExample: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.hasCode, tt.d.HasCode())
			require.Equal(t, tt.hasExample, tt.d.HasExample())
			require.Equal(t, tt.hasVariant, tt.d.HasFullVariant())
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("")
	require.NoError(t, err)
	require.Equal(t, CategoryView, c)

	c, err = ParseCategory("view")
	require.NoError(t, err)
	require.Equal(t, CategoryView, c)

	_, err = ParseCategory("widget")
	require.Error(t, err)
}

func TestCatalog_OrderAndAccessors(t *testing.T) {
	c := sample()
	require.Equal(t, 3, c.Len())
	require.Equal(t, []string{"Alpha", "Beta", "Gamma"}, c.Titles())

	first, ok := c.First()
	require.True(t, ok)
	require.Equal(t, "Alpha", first.Title)
	require.Equal(t, 1, c.IndexOf(c.At(1)))
	require.True(t, c.Contains(c.At(2)))

	got, ok := c.ByID(c.At(1).ID())
	require.True(t, ok)
	require.True(t, got.Equal(c.At(1)))

	_, ok = c.ByID(uuid.New())
	require.False(t, ok)
}

func TestCatalog_IDsAreUnique(t *testing.T) {
	c := sample()
	seen := map[uuid.UUID]bool{}
	for _, d := range c.All() {
		require.NotEqual(t, uuid.Nil, d.ID())
		require.False(t, seen[d.ID()])
		seen[d.ID()] = true
	}
}

func TestCatalog_AllIsDefensiveCopy(t *testing.T) {
	c := sample()
	all := c.All()
	all[0].Title = "Mutated"
	all[1] = Descriptor{}

	require.Equal(t, "Alpha", c.At(0).Title)
	require.Equal(t, 3, c.Len())
}

func TestCatalog_ForeignDescriptorIsNotContained(t *testing.T) {
	c := sample()
	lookalike := NewDescriptor(Descriptor{Title: "Alpha", Code: "a"})
	require.False(t, c.Contains(lookalike))
	require.Equal(t, -1, c.IndexOf(lookalike))
}

func TestCatalog_Empty(t *testing.T) {
	c := New()
	_, ok := c.First()
	require.False(t, ok)
	require.Empty(t, c.All())

	_, err := c.FindByTitle("x")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCatalog_FindByTitle(t *testing.T) {
	c := sample()

	d, err := c.FindByTitle("  beta ")
	require.NoError(t, err)
	require.True(t, d.Equal(c.At(1)))

	_, err = c.FindByTitle("Gama")
	require.ErrorIs(t, err, ErrNotFound)
	require.Contains(t, err.Error(), `did you mean "Gamma"`)
}

func TestLoad_Embedded(t *testing.T) {
	c, err := Load(preview.DefaultRegistry(preview.Deps{}))
	require.NoError(t, err)
	require.Equal(t, []string{
		"Definition", "View", "Navigation", "Styles", "Stacks", "Z Stack", "Grid",
		"Lists", "Button", "Input", "Pickers", "Data flow", "MVVM", "Concurrency",
		"Accessibility",
	}, c.Titles())

	def := c.At(0)
	require.False(t, def.HasCode())
	require.False(t, def.HasExample())
	require.Contains(t, def.Description, "https://github.com/charmbracelet/bubbletea")

	view, err := c.FindByTitle("View")
	require.NoError(t, err)
	require.True(t, view.HasCode())
	require.True(t, view.HasExample())
	require.True(t, view.HasFullVariant())
	require.False(t, strings.HasSuffix(view.Code, "\n"))

	mvvm, err := c.FindByTitle("MVVM")
	require.NoError(t, err)
	require.False(t, mvvm.HasExample())
	require.False(t, mvvm.HasCode())

	stacks, err := c.FindByTitle("Stacks")
	require.NoError(t, err)
	require.False(t, stacks.HasFullVariant())
}

func TestLoadFrom_Validation(t *testing.T) {
	reg := preview.DefaultRegistry(preview.Deps{})
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "empty title",
			yaml:    "demos:\n  - title: \"  \"\n",
			wantErr: "title is empty",
		},
		{
			name:    "duplicate title",
			yaml:    "demos:\n  - title: One\n  - title: one\n",
			wantErr: "duplicate title",
		},
		{
			name:    "unknown category",
			yaml:    "demos:\n  - title: One\n    category: widget\n",
			wantErr: "unknown category",
		},
		{
			name:    "unknown preview",
			yaml:    "demos:\n  - title: One\n    preview: hologram\n",
			wantErr: "unknown preview",
		},
		{
			name:    "unknown field",
			yaml:    "demos:\n  - title: One\n    colour: red\n",
			wantErr: "parsing catalog",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(strings.NewReader(tt.yaml), reg)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadFrom_UnknownPreviewIsSentinel(t *testing.T) {
	_, err := LoadFrom(strings.NewReader("demos:\n  - title: One\n    preview: hologram\n"), preview.NewRegistry())
	require.ErrorIs(t, err, preview.ErrUnknownPreview)
}

func TestLoadFrom_EmptyDocument(t *testing.T) {
	c, err := LoadFrom(strings.NewReader(""), nil)
	require.NoError(t, err)
	require.Equal(t, 0, c.Len())
}

func TestLoadFrom_PreviewFactoryIsFresh(t *testing.T) {
	c, err := LoadFrom(strings.NewReader("demos:\n  - title: One\n    preview: buttons\n"), preview.DefaultRegistry(preview.Deps{}))
	require.NoError(t, err)
	d := c.At(0)
	require.True(t, d.HasExample())
	require.NotSame(t, d.Preview(), d.Preview())
}
