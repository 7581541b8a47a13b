package linkviewer

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

type fakeClipboard struct {
	copied string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = text
	return nil
}

func pages(bodies map[string]string) fetch.Fetcher {
	return fetch.FetcherFunc(func(_ context.Context, url string) ([]byte, error) {
		body, ok := bodies[url]
		if !ok {
			return nil, errors.New("not found")
		}
		return []byte(body), nil
	})
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestOpen_ShowsLoadingThenContent(t *testing.T) {
	m := New(pages(map[string]string{"https://a.example": "<p>Hello <b>there</b></p>"}), nil).SetSize(80, 24)
	require.False(t, m.Visible())

	m, cmd := m.Open("https://a.example")
	require.True(t, m.Visible())
	require.True(t, m.Loading())
	require.Equal(t, "https://a.example", m.URL())
	require.Contains(t, ansi.Strip(m.View()), "Loading https://a.example")

	m, _ = m.Update(cmd())
	require.False(t, m.Loading())
	require.Equal(t, "Hello there", m.Text())
	require.Contains(t, ansi.Strip(m.View()), "Hello there")
}

func TestOpen_SecondLinkReplacesFirst(t *testing.T) {
	m := New(pages(map[string]string{
		"https://first.example":  "first page",
		"https://second.example": "second page",
	}), nil).SetSize(80, 24)

	m, first := m.Open("https://first.example")
	m, second := m.Open("https://second.example")

	// The first fetch resolves late and must not be shown.
	m, _ = m.Update(first())
	require.True(t, m.Loading())
	require.Equal(t, "https://second.example", m.URL())
	require.Empty(t, m.Text())

	m, _ = m.Update(second())
	require.Equal(t, "second page", m.Text())
	require.NotContains(t, ansi.Strip(m.View()), "first page")
}

func TestOpen_CancelsPreviousFetch(t *testing.T) {
	var firstCtx context.Context
	f := fetch.FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if url == "https://first.example" {
			firstCtx = ctx
		}
		return []byte(url), nil
	})
	m := New(f, nil)
	m, first := m.Open("https://first.example")
	first()
	require.NoError(t, firstCtx.Err())

	m, _ = m.Open("https://second.example")
	require.ErrorIs(t, firstCtx.Err(), context.Canceled)
	_ = m
}

func TestCompletedFetchReleasesContext(t *testing.T) {
	var ctx context.Context
	f := fetch.FetcherFunc(func(c context.Context, _ string) ([]byte, error) {
		ctx = c
		return []byte("done"), nil
	})
	m := New(f, nil).SetSize(80, 24)
	m, cmd := m.Open("https://a.example")
	msg := cmd()
	require.NoError(t, ctx.Err())

	m, _ = m.Update(msg)
	require.Equal(t, "done", m.Text())
	require.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestFetchFailureShowsURLAndError(t *testing.T) {
	m := New(pages(nil), nil).SetSize(80, 24)
	m, cmd := m.Open("https://missing.example")
	m, _ = m.Update(cmd())

	require.Error(t, m.Err())
	out := ansi.Strip(m.View())
	require.Contains(t, out, "https://missing.example")
	require.Contains(t, out, "Could not load page: not found")
}

func TestFetchOverHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><head><script>alert(1)</script></head><body><h1>Bubble Tea</h1><p>A TUI framework &amp; more</p></body></html>`))
	}))
	defer srv.Close()

	m := New(fetch.New(fetch.WithHTTPClient(srv.Client())), nil).SetSize(100, 30)
	m, cmd := m.Open(srv.URL)
	m, _ = m.Update(cmd())

	require.NoError(t, m.Err())
	require.Contains(t, m.Text(), "Bubble Tea")
	require.Contains(t, m.Text(), "A TUI framework & more")
	require.NotContains(t, m.Text(), "<h1>")
}

func TestEscClosesAndDiscardsLateResult(t *testing.T) {
	m := New(pages(map[string]string{"https://a.example": "page"}), nil).SetSize(80, 24)
	m, cmd := m.Open("https://a.example")

	m, closeCmd := m.Update(keyMsg("esc"))
	require.False(t, m.Visible())
	require.Empty(t, m.URL())
	require.NotNil(t, closeCmd)
	require.Equal(t, ClosedMsg{}, closeCmd())

	m, _ = m.Update(cmd())
	require.False(t, m.Visible())
	require.Empty(t, m.Text())
	require.Empty(t, m.View())
}

func TestKeysIgnoredWhileHidden(t *testing.T) {
	m := New(pages(nil), &fakeClipboard{})
	m, cmd := m.Update(keyMsg("y"))
	require.Nil(t, cmd)
	require.False(t, m.Visible())
}

func TestCopyURL(t *testing.T) {
	clip := &fakeClipboard{}
	m := New(pages(nil), clip).SetSize(80, 24)
	m, _ = m.Open("https://a.example")

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	require.Equal(t, toaster.ShowMsg{Message: "Link copied", Style: toaster.StyleSuccess}, cmd())
	require.Equal(t, "https://a.example", clip.copied)
}

func TestCopyURL_Failure(t *testing.T) {
	m := New(pages(nil), &fakeClipboard{err: errors.New("no xclip")}).SetSize(80, 24)
	m, _ = m.Open("https://a.example")

	_, cmd := m.Update(keyMsg("y"))
	msg, ok := cmd().(toaster.ShowMsg)
	require.True(t, ok)
	require.Equal(t, toaster.StyleError, msg.Style)
	require.Contains(t, msg.Message, "no xclip")
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"  a   b  ", "a b"},
		{"a\n\n\n\nb", "a\n\nb"},
		{"\n\n a \n", "a"},
		{"", ""},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, collapseWhitespace(tt.in), "%q", tt.in)
	}
}

func TestOverlayCentersOverBackground(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 60)+"\n", 19) + strings.Repeat(".", 60)
	m := New(pages(nil), nil).SetSize(60, 20)
	require.Equal(t, bg, m.Overlay(bg))

	m, _ = m.Open("https://a.example")
	out := ansi.Strip(m.Overlay(bg))
	require.Contains(t, out, "Link")
	require.Contains(t, out, "[y] copy")
	require.True(t, strings.HasPrefix(strings.Split(out, "\n")[0], "."))
}
