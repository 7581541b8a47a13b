package welcome

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	lipgloss.SetColorProfile(termenv.Ascii)
	os.Exit(m.Run())
}

func TestView_ShowsHeadingTaglineAndButton(t *testing.T) {
	out := ansi.Strip(zone.Scan(New().SetSize(80, 24).View()))
	require.Contains(t, out, "Welcome")
	require.Contains(t, out, "tuitour")
	require.Contains(t, out, "Start")
	require.Contains(t, out, "A guided tour")
	require.Len(t, strings.Split(out, "\n"), 24)
}

func TestView_WrapsTaglineToWidth(t *testing.T) {
	out := ansi.Strip(zone.Scan(New().SetSize(40, 30).View()))
	for _, line := range strings.Split(out, "\n") {
		require.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestUpdate_StartKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{
		{Type: tea.KeyEnter},
		{Type: tea.KeyRunes, Runes: []rune{'s'}},
	} {
		_, cmd := New().Update(k)
		require.NotNil(t, cmd, k.String())
		require.Equal(t, StartMsg{}, cmd())
	}
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	_, cmd := New().Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	require.Nil(t, cmd)
}

func TestUpdate_ClickOutsideButtonIgnored(t *testing.T) {
	m := New().SetSize(80, 24)
	zone.Scan(m.View())
	_, cmd := m.Update(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	require.Nil(t, cmd)
}
