// Package styles contains Lip Gloss style definitions.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Text hierarchy
	TextPrimaryColor     = defaultPalette[TokenTextPrimary]
	TextSecondaryColor   = defaultPalette[TokenTextSecondary]
	TextMutedColor       = defaultPalette[TokenTextMuted]       // Hints, help text, footers
	TextDescriptionColor = defaultPalette[TokenTextDescription] // Subtitles, body text
	TextPlaceholderColor = defaultPalette[TokenTextPlaceholder] // Placeholders, empty states

	// Borders
	BorderDefaultColor = defaultPalette[TokenBorderDefault]
	BorderFocusColor   = defaultPalette[TokenBorderFocus]

	// Accent (carousel highlight, badges)
	AccentPrimaryColor   = defaultPalette[TokenAccentPrimary]
	AccentSecondaryColor = defaultPalette[TokenAccentSecondary]

	// Links inside rendered descriptions
	LinkColor      = defaultPalette[TokenLink]
	LinkFocusColor = defaultPalette[TokenLinkFocus]

	SelectionIndicatorColor  = defaultPalette[TokenSelectionIndicator]
	SelectionBackgroundColor = defaultPalette[TokenSelectionBackground]

	StatusSuccessColor = defaultPalette[TokenStatusSuccess]
	StatusWarningColor = defaultPalette[TokenStatusWarning]
	StatusErrorColor   = defaultPalette[TokenStatusError]

	ButtonTextColor             = defaultPalette[TokenButtonText]
	ButtonPrimaryBgColor        = defaultPalette[TokenButtonPrimaryBg]
	ButtonPrimaryFocusBgColor   = defaultPalette[TokenButtonPrimaryFocusBg]
	ButtonSecondaryBgColor      = defaultPalette[TokenButtonSecondaryBg]
	ButtonSecondaryFocusBgColor = defaultPalette[TokenButtonSecondaryFocusBg]

	OverlayTitleColor  = defaultPalette[TokenOverlayTitle]
	OverlayBorderColor = defaultPalette[TokenOverlayBorder]

	ToastBorderSuccessColor = defaultPalette[TokenToastSuccess]
	ToastBorderErrorColor   = defaultPalette[TokenToastError]
	ToastBorderInfoColor    = defaultPalette[TokenToastInfo]
	ToastBorderWarnColor    = defaultPalette[TokenToastWarn]

	SpinnerColor = defaultPalette[TokenSpinner]
)

// Styles rebuilt by ApplyTheme. lipgloss.Style captures colours at creation time.
var (
	// Selection indicator style (">" prefix in lists and pickers)
	SelectionIndicatorStyle lipgloss.Style

	PrimaryButtonStyle          lipgloss.Style
	PrimaryButtonFocusedStyle   lipgloss.Style
	SecondaryButtonStyle        lipgloss.Style
	SecondaryButtonFocusedStyle lipgloss.Style

	CarouselItemStyle     lipgloss.Style
	CarouselSelectedStyle lipgloss.Style
	TitleBadgeStyle       lipgloss.Style

	LinkStyle        lipgloss.Style
	LinkFocusedStyle lipgloss.Style

	PlaceholderStyle lipgloss.Style
	HintStyle        lipgloss.Style
	StatusBarStyle   lipgloss.Style
	ErrorStyle       lipgloss.Style
)

func init() {
	rebuildStyles()
}
