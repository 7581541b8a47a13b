package styles

import "github.com/charmbracelet/lipgloss"

// ColorToken represents a named, themeable color.
type ColorToken string

// Color tokens users can override under theme.colors.
const (
	TokenTextPrimary     ColorToken = "text.primary"
	TokenTextSecondary   ColorToken = "text.secondary"
	TokenTextMuted       ColorToken = "text.muted"
	TokenTextDescription ColorToken = "text.description"
	TokenTextPlaceholder ColorToken = "text.placeholder"

	TokenBorderDefault ColorToken = "border.default"
	TokenBorderFocus   ColorToken = "border.focus"

	TokenAccentPrimary   ColorToken = "accent.primary"
	TokenAccentSecondary ColorToken = "accent.secondary"

	TokenLink      ColorToken = "link"
	TokenLinkFocus ColorToken = "link.focus"

	TokenSelectionIndicator  ColorToken = "selection.indicator"
	TokenSelectionBackground ColorToken = "selection.background"

	TokenStatusSuccess ColorToken = "status.success"
	TokenStatusWarning ColorToken = "status.warning"
	TokenStatusError   ColorToken = "status.error"

	TokenButtonText             ColorToken = "button.text"
	TokenButtonPrimaryBg        ColorToken = "button.primary.bg"
	TokenButtonPrimaryFocusBg   ColorToken = "button.primary.focus"
	TokenButtonSecondaryBg      ColorToken = "button.secondary.bg"
	TokenButtonSecondaryFocusBg ColorToken = "button.secondary.focus"

	TokenOverlayTitle  ColorToken = "overlay.title"
	TokenOverlayBorder ColorToken = "overlay.border"

	TokenToastSuccess ColorToken = "toast.success"
	TokenToastError   ColorToken = "toast.error"
	TokenToastInfo    ColorToken = "toast.info"
	TokenToastWarn    ColorToken = "toast.warn"

	TokenSpinner ColorToken = "spinner"
)

// defaultPalette is the built-in light/dark palette every theme starts from.
var defaultPalette = map[ColorToken]lipgloss.AdaptiveColor{
	TokenTextPrimary:     {Light: "#1F1F1F", Dark: "#CCCCCC"},
	TokenTextSecondary:   {Light: "#555555", Dark: "#BBBBBB"},
	TokenTextMuted:       {Light: "#8A8A8A", Dark: "#696969"},
	TokenTextDescription: {Light: "#666666", Dark: "#999999"},
	TokenTextPlaceholder: {Light: "#666666", Dark: "#777777"},

	TokenBorderDefault: {Light: "#C4C4C4", Dark: "#696969"},
	TokenBorderFocus:   {Light: "#1F6FEB", Dark: "#54A0FF"},

	TokenAccentPrimary:   {Light: "#6C3FD1", Dark: "#7D56F4"},
	TokenAccentSecondary: {Light: "#C7417B", Dark: "#F25D94"},

	TokenLink:      {Light: "#1F6FEB", Dark: "#54A0FF"},
	TokenLinkFocus: {Light: "#C7417B", Dark: "#F25D94"},

	TokenSelectionIndicator:  {Light: "#1F1F1F", Dark: "#FFFFFF"},
	TokenSelectionBackground: {Light: "#E4DDFB", Dark: "#3B2F6B"},

	TokenStatusSuccess: {Light: "#43BF6D", Dark: "#73F59F"},
	TokenStatusWarning: {Light: "#D19A00", Dark: "#FECA57"},
	TokenStatusError:   {Light: "#FF6B6B", Dark: "#FF8787"},

	TokenButtonText:             {Light: "#FFFFFF", Dark: "#FFFFFF"},
	TokenButtonPrimaryBg:        {Light: "#1A5276", Dark: "#1A5276"},
	TokenButtonPrimaryFocusBg:   {Light: "#3498DB", Dark: "#3498DB"},
	TokenButtonSecondaryBg:      {Light: "#2D3436", Dark: "#2D3436"},
	TokenButtonSecondaryFocusBg: {Light: "#636E72", Dark: "#636E72"},

	TokenOverlayTitle:  {Light: "#333333", Dark: "#C9C9C9"},
	TokenOverlayBorder: {Light: "#8C8C8C", Dark: "#8C8C8C"},

	TokenToastSuccess: {Light: "#43BF6D", Dark: "#73F59F"},
	TokenToastError:   {Light: "#FF6B6B", Dark: "#FF8787"},
	TokenToastInfo:    {Light: "#1F6FEB", Dark: "#54A0FF"},
	TokenToastWarn:    {Light: "#D19A00", Dark: "#FECA57"},

	TokenSpinner: {Light: "#874BFD", Dark: "#FFFFFF"},
}

// AllTokens returns all valid color tokens for validation.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenTextPrimary,
		TokenTextSecondary,
		TokenTextMuted,
		TokenTextDescription,
		TokenTextPlaceholder,
		TokenBorderDefault,
		TokenBorderFocus,
		TokenAccentPrimary,
		TokenAccentSecondary,
		TokenLink,
		TokenLinkFocus,
		TokenSelectionIndicator,
		TokenSelectionBackground,
		TokenStatusSuccess,
		TokenStatusWarning,
		TokenStatusError,
		TokenButtonText,
		TokenButtonPrimaryBg,
		TokenButtonPrimaryFocusBg,
		TokenButtonSecondaryBg,
		TokenButtonSecondaryFocusBg,
		TokenOverlayTitle,
		TokenOverlayBorder,
		TokenToastSuccess,
		TokenToastError,
		TokenToastInfo,
		TokenToastWarn,
		TokenSpinner,
	}
}
