package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func TestRenderFormSection(t *testing.T) {
	focusColor := lipgloss.Color("#54A0FF")

	tests := []struct {
		name           string
		content        []string
		title          string
		hint           string
		width          int
		wantContains   []string
		wantNotContain []string
	}{
		{
			name:         "basic section with title",
			content:      []string{"  Content line"},
			title:        "▾ Header",
			width:        30,
			wantContains: []string{"╭─ ▾ Header", "│", "Content line", "╰"},
		},
		{
			name:         "section with title and hint",
			content:      []string{"  body"},
			title:        "Code",
			hint:         "f: Full",
			width:        40,
			wantContains: []string{"╭─ Code", "(f: Full)"},
		},
		{
			name:           "empty title renders plain border",
			content:        []string{"Content"},
			width:          20,
			wantContains:   []string{"╭", "╮", "Content", "╯"},
			wantNotContain: []string{"╭─ "},
		},
		{
			name:         "multiple content lines",
			content:      []string{"Line 1", "Line 2", "Line 3"},
			title:        "Items",
			width:        25,
			wantContains: []string{"Line 1", "Line 2", "Line 3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RenderFormSection(tt.content, tt.title, tt.hint, tt.width, false, focusColor)
			for _, want := range tt.wantContains {
				require.Contains(t, result, want)
			}
			for _, notWant := range tt.wantNotContain {
				require.NotContains(t, result, notWant)
			}
		})
	}
}

func TestRenderFormSection_LinesHaveUniformWidth(t *testing.T) {
	result := RenderFormSection([]string{"short", strings.Repeat("x", 80)}, "Title", "hint", 30, false, BorderFocusColor)
	for i, line := range strings.Split(result, "\n") {
		require.Equal(t, 30, lipgloss.Width(line), "line %d: %q", i, line)
	}
}

func TestRenderFormSection_EmptyContent(t *testing.T) {
	result := RenderFormSection(nil, "Title", "", 30, false, BorderFocusColor)
	require.Len(t, strings.Split(result, "\n"), 2)
}

func TestRenderFormSection_FocusChangesColor(t *testing.T) {
	lipgloss.SetColorProfile(termenv.ANSI256)
	defer lipgloss.SetColorProfile(termenv.Ascii)

	focusColor := lipgloss.Color("#54A0FF")
	unfocused := RenderFormSection([]string{"Content"}, "Test", "", 30, false, focusColor)
	focused := RenderFormSection([]string{"Content"}, "Test", "", 30, true, focusColor)
	require.NotEqual(t, unfocused, focused)
}

func TestRenderSectionBar(t *testing.T) {
	bar := RenderSectionBar(IndicatorCollapsed+" Code", "3", 30, false, BorderFocusColor)
	require.NotContains(t, bar, "\n")
	require.Contains(t, bar, "▸ Code")
	require.Contains(t, bar, "(3)")
	require.Equal(t, 30, lipgloss.Width(bar))
}

func TestRenderSectionBar_HintDroppedWhenNarrow(t *testing.T) {
	bar := RenderSectionBar("Example", "press 2 to expand", 16, false, BorderFocusColor)
	require.NotContains(t, bar, "press")
	require.LessOrEqual(t, lipgloss.Width(bar), 16)
}
