package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"
)

func resetTheme(t *testing.T) {
	t.Helper()
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })
}

func TestApplyTheme_Default(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, defaultPalette[TokenTextPrimary], TextPrimaryColor)
	require.Equal(t, defaultPalette[TokenLink], LinkColor)
}

func TestApplyTheme_ColorOverride(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{
		Colors: map[string]string{"text.primary": "#00FF00", "link": "#123456"},
	}))
	require.Equal(t, "#00FF00", TextPrimaryColor.Dark)
	require.Equal(t, "#00FF00", TextPrimaryColor.Light)
	require.Equal(t, "#123456", LinkColor.Dark)
}

func TestApplyTheme_OverridesDoNotAccumulate(t *testing.T) {
	resetTheme(t)
	require.NoError(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"accent.primary": "#ABCDEF"}}))
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, defaultPalette[TokenAccentPrimary], AccentPrimaryColor)
}

func TestApplyTheme_Mode(t *testing.T) {
	resetTheme(t)
	defer lipgloss.SetHasDarkBackground(true)

	require.NoError(t, ApplyTheme(ThemeConfig{Mode: ModeLight}))
	require.False(t, lipgloss.HasDarkBackground())

	require.NoError(t, ApplyTheme(ThemeConfig{Mode: ModeDark}))
	require.True(t, lipgloss.HasDarkBackground())

	require.ErrorContains(t, ApplyTheme(ThemeConfig{Mode: "sepia"}), "unknown theme mode")
}

func TestApplyTheme_InvalidToken(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"priority.critical": "#FF0000"}})
	require.ErrorContains(t, err, "unknown color token")
}

func TestApplyTheme_InvalidHexColor(t *testing.T) {
	err := ApplyTheme(ThemeConfig{Colors: map[string]string{"text.primary": "not-a-color"}})
	require.ErrorContains(t, err, "invalid hex color")
}

func TestApplyTheme_RunsRebuilders(t *testing.T) {
	resetTheme(t)
	calls := 0
	RegisterStyleRebuilder(func() { calls++ })
	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, 1, calls)
}

func TestEveryTokenHasTarget(t *testing.T) {
	for _, token := range AllTokens() {
		_, ok := colorTargets[token]
		require.True(t, ok, "token %s has no target", token)
		_, ok = defaultPalette[token]
		require.True(t, ok, "token %s has no default", token)
	}
}

func TestIsValidHexColor(t *testing.T) {
	tests := []struct {
		color string
		valid bool
	}{
		{"#FFF", true},
		{"#FFFFFF", true},
		{"#AbCdEf", true},
		{"FFFFFF", false},
		{"#FF", false},
		{"#FFFFFFF", false},
		{"#GGGGGG", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.color, func(t *testing.T) {
			require.Equal(t, tt.valid, isValidHexColor(tt.color))
		})
	}
}
