package content

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuitour/internal/cachemanager"
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/markdown"
	"github.com/zjrosen/tuitour/internal/preview"
	"github.com/zjrosen/tuitour/internal/selection"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fakeMarkdown struct {
	calls int
	err   error
}

func (f *fakeMarkdown) Render(s string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "MD:" + s, nil
}

type fakeHighlighter struct {
	calls int
	err   error
}

func (f *fakeHighlighter) Highlight(code, _ string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "HL:" + code, nil
}

func plain(s string) string {
	return ansi.Strip(zone.Scan(s))
}

func abc() (*catalog.Catalog, catalog.Descriptor, catalog.Descriptor, catalog.Descriptor) {
	c := catalog.New(
		catalog.Descriptor{
			Title:       "A",
			Subtitle:    "first",
			Description: "See [Docs](https://docs.example) and [Blog](https://blog.example).",
			Code:        "x",
		},
		catalog.Descriptor{Title: "B"},
		catalog.Descriptor{
			Title:    "C",
			Code:     "line1\nline2",
			CodeFull: "line1\nline2\nline3\nline4",
			Preview:  func() preview.Preview { return preview.NewText() },
		},
	)
	return c, c.At(0), c.At(1), c.At(2)
}

func TestDerive_NoSelection(t *testing.T) {
	vm := Derive(selection.New(catalog.New()))
	require.Equal(t, NoSubtitle, vm.Header.Subtitle)
	require.Equal(t, NoDescription, vm.Header.Description)
	require.False(t, vm.Example.Visible)
	require.Equal(t, NoExample, vm.Example.Placeholder)
	require.False(t, vm.Code.Visible)
	require.Equal(t, NoCode, vm.Code.Placeholder)
	require.Empty(t, vm.Code.Text)
	require.False(t, vm.Code.ShowToggle)
	require.True(t, vm.Header.Expanded)
}

func TestDerive_DescriptorWithoutCodeOrExample(t *testing.T) {
	c, _, b, _ := abc()
	vm := Derive(selection.New(c).Select(b))

	require.Equal(t, "B", vm.Header.Title)
	require.Equal(t, NoSubtitle, vm.Header.Subtitle)
	require.Equal(t, NoDescription, vm.Header.Description)
	require.False(t, vm.Code.Visible)
	require.Equal(t, NoCode, vm.Code.Placeholder)
	require.False(t, vm.Example.Visible)
	require.Equal(t, NoExample, vm.Example.Placeholder)
	require.Empty(t, vm.Header.Links)
}

func TestDerive_HeaderLinks(t *testing.T) {
	c, _, _, _ := abc()
	vm := Derive(selection.New(c))
	require.Equal(t, []markdown.Link{
		{Text: "Docs", URL: "https://docs.example"},
		{Text: "Blog", URL: "https://blog.example"},
	}, vm.Header.Links)
	require.Equal(t, "first", vm.Header.Subtitle)
	require.Equal(t, c.At(0).ID(), vm.DescriptorID)
}

func TestDerive_CodeVariant(t *testing.T) {
	c, _, _, cc := abc()
	st := selection.New(c).Select(cc)

	vm := Derive(st)
	require.True(t, vm.Code.Visible)
	require.True(t, vm.Example.Visible)
	require.True(t, vm.Code.ShowToggle)
	require.Equal(t, VariantShort, vm.Code.VariantLabel)
	require.Equal(t, "line1\nline2", vm.Code.Text)
	require.Equal(t, "+2/-0 lines", vm.Code.DiffSummary)

	vm = Derive(st.ToggleCodeVariant())
	require.Equal(t, VariantFull, vm.Code.VariantLabel)
	require.Equal(t, "line1\nline2\nline3\nline4", vm.Code.Text)
}

func TestDerive_IsPure(t *testing.T) {
	c, _, _, cc := abc()
	st := selection.New(c).Select(cc)
	require.Equal(t, Derive(st), Derive(st))
}

func TestDiffSummary(t *testing.T) {
	tests := []struct {
		short, full, want string
	}{
		{"a", "a\nb", "+1/-0 lines"},
		{"a\nb", "a\nc", "+1/-1 lines"},
		{"a\nb\nc", "a", "+0/-2 lines"},
		{"", "a\nb", "+2/-0 lines"},
		{"same", "same", "+0/-0 lines"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, DiffSummary(tt.short, tt.full), "%q -> %q", tt.short, tt.full)
	}
}

func TestRender_PlaceholdersForMissingSections(t *testing.T) {
	c, _, b, _ := abc()
	st := selection.New(c).Select(b).ToggleExample().ToggleCode()

	r := NewRenderer(&fakeMarkdown{}, &fakeHighlighter{}, nil, Options{Width: 60, Dark: true})
	out := plain(r.Render(Derive(st), Frame{}))

	require.Contains(t, out, NoExample)
	require.Contains(t, out, NoCode)
	require.Contains(t, out, "▾ Example")
	require.Contains(t, out, "▾ Code")
}

func TestRender_CollapsedSectionsShowOnlyTitleBar(t *testing.T) {
	c, _, _, cc := abc()
	st := selection.New(c).Select(cc)

	r := NewRenderer(&fakeMarkdown{}, &fakeHighlighter{}, nil, Options{Width: 60})
	out := plain(r.Render(Derive(st), Frame{Preview: "PREVIEW"}))

	require.Contains(t, out, "▸ Example")
	require.Contains(t, out, "▸ Code")
	require.NotContains(t, out, "PREVIEW")
	require.NotContains(t, out, "HL:")
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 60)
	}
}

func TestRender_ExpandedSections(t *testing.T) {
	c, _, _, cc := abc()
	st := selection.New(c).Select(cc).ToggleExample().ToggleCode()

	r := NewRenderer(&fakeMarkdown{}, &fakeHighlighter{}, nil, Options{Width: 60})
	out := plain(r.Render(Derive(st), Frame{Preview: "PREVIEW"}))

	require.Contains(t, out, "PREVIEW")
	require.Contains(t, out, "HL:line1")
	require.Contains(t, out, "Showing Pure")
	require.Contains(t, out, "+2/-0 lines")
	require.Contains(t, out, "f Pure")
}

func TestRender_HeaderLinksAreNumberedAndZoned(t *testing.T) {
	c, _, _, _ := abc()
	vm := Derive(selection.New(c))
	r := NewRenderer(&fakeMarkdown{}, nil, nil, Options{Width: 80})

	raw := r.RenderHeader(vm, Frame{FocusedLink: 2})
	require.Contains(t, plain(raw), "[1] Docs")
	require.Contains(t, plain(raw), "[2] Blog")
	require.Contains(t, plain(raw), "MD:See")
	require.NotEqual(t, raw, zone.Scan(raw), "expected zone markers")
}

func TestRender_StaticLinksHaveNoZones(t *testing.T) {
	c, _, _, _ := abc()
	vm := Derive(selection.New(c))
	r := NewRenderer(&fakeMarkdown{}, nil, nil, Options{Width: 80, Static: true})

	raw := r.RenderHeader(vm, Frame{})
	require.Contains(t, raw, "[1] Docs")
	require.Equal(t, raw, zone.Scan(raw), "expected no zone markers")
}

func TestRender_MarkdownFailureFallsBackToRaw(t *testing.T) {
	c, _, _, _ := abc()
	r := NewRenderer(&fakeMarkdown{err: errors.New("boom")}, nil, nil, Options{Width: 100})
	out := plain(r.RenderHeader(Derive(selection.New(c)), Frame{}))
	require.Contains(t, out, "See [Docs](https://docs.example)")
}

func TestRender_HighlightFailureFallsBackToPlain(t *testing.T) {
	c, _, _, cc := abc()
	st := selection.New(c).Select(cc).ToggleCode()
	r := NewRenderer(nil, &fakeHighlighter{err: errors.New("boom")}, nil, Options{Width: 60})
	out := plain(r.RenderCode(Derive(st), Frame{}))
	require.Contains(t, out, "line1")
	require.NotContains(t, out, "HL:")
}

func TestRender_CachesByKey(t *testing.T) {
	c, _, _, cc := abc()
	cache := cachemanager.NewInMemoryCacheManager[string, string]("render", time.Minute, time.Minute)
	md := &fakeMarkdown{}
	hl := &fakeHighlighter{}
	r := NewRenderer(md, hl, cache, Options{Width: 60, Dark: true})

	st := selection.New(c).Select(cc).ToggleCode()
	r.Render(Derive(st), Frame{})
	r.Render(Derive(st), Frame{})
	require.Equal(t, 1, md.calls)
	require.Equal(t, 1, hl.calls)

	// Switching variant is a different key.
	r.Render(Derive(st.ToggleCodeVariant()), Frame{})
	require.Equal(t, 2, hl.calls)

	key := Derive(st).DescriptorID.String() + "|code|short|60|dark"
	v, ok := cache.Get(context.Background(), key)
	require.True(t, ok)
	require.Equal(t, "HL:line1\nline2", v)

	// Another width or theme misses.
	NewRenderer(md, hl, cache, Options{Width: 61, Dark: true}).Render(Derive(st), Frame{})
	NewRenderer(md, hl, cache, Options{Width: 60, Dark: false}).Render(Derive(st), Frame{})
	require.Equal(t, 4, hl.calls)
}

func TestActivateLink(t *testing.T) {
	c, _, _, _ := abc()
	vm := Derive(selection.New(c))

	require.Nil(t, ActivateLink(vm, 0))
	require.Nil(t, ActivateLink(vm, 3))

	cmd := ActivateLink(vm, 2)
	require.NotNil(t, cmd)
	require.Equal(t, LinkActivatedMsg{Index: 2, URL: "https://blog.example"}, cmd())
	require.Equal(t, "link-2", LinkZoneID(2))
}
