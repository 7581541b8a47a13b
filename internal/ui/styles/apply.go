package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// styleRebuilders holds callbacks to rebuild styles in other packages.
var styleRebuilders []func()

// RegisterStyleRebuilder adds a callback that will be called after ApplyTheme
// updates colors. Use this to rebuild styles in packages that depend on styles.
func RegisterStyleRebuilder(fn func()) {
	styleRebuilders = append(styleRebuilders, fn)
}

// Theme modes.
const (
	ModeAuto  = "auto"
	ModeDark  = "dark"
	ModeLight = "light"
)

// ThemeConfig mirrors the theme part of config.Config to avoid circular imports.
type ThemeConfig struct {
	Mode   string            // "auto", "dark", "light" or ""
	Colors map[string]string // token -> hex
}

// ApplyTheme applies a complete theme configuration.
// Order of application:
// 1. Start with the default palette
// 2. Apply individual color overrides
// 3. Force the background mode unless it is auto
// 4. Rebuild all Style objects
func ApplyTheme(cfg ThemeConfig) error {
	palette := maps.Clone(defaultPalette)

	for key, value := range cfg.Colors {
		token := ColorToken(key)
		if !isValidToken(token) {
			return fmt.Errorf("unknown color token: %s", key)
		}
		if !isValidHexColor(value) {
			return fmt.Errorf("invalid hex color for %s: %s", key, value)
		}
		palette[token] = lipgloss.AdaptiveColor{Light: value, Dark: value}
	}

	switch cfg.Mode {
	case "", ModeAuto:
	case ModeDark:
		lipgloss.SetHasDarkBackground(true)
	case ModeLight:
		lipgloss.SetHasDarkBackground(false)
	default:
		return fmt.Errorf("unknown theme mode: %s", cfg.Mode)
	}

	applyColors(palette)
	rebuildStyles()
	return nil
}

// colorTargets maps each token to the variable it drives.
var colorTargets = map[ColorToken]*lipgloss.AdaptiveColor{
	TokenTextPrimary:            &TextPrimaryColor,
	TokenTextSecondary:          &TextSecondaryColor,
	TokenTextMuted:              &TextMutedColor,
	TokenTextDescription:        &TextDescriptionColor,
	TokenTextPlaceholder:        &TextPlaceholderColor,
	TokenBorderDefault:          &BorderDefaultColor,
	TokenBorderFocus:            &BorderFocusColor,
	TokenAccentPrimary:          &AccentPrimaryColor,
	TokenAccentSecondary:        &AccentSecondaryColor,
	TokenLink:                   &LinkColor,
	TokenLinkFocus:              &LinkFocusColor,
	TokenSelectionIndicator:     &SelectionIndicatorColor,
	TokenSelectionBackground:    &SelectionBackgroundColor,
	TokenStatusSuccess:          &StatusSuccessColor,
	TokenStatusWarning:          &StatusWarningColor,
	TokenStatusError:            &StatusErrorColor,
	TokenButtonText:             &ButtonTextColor,
	TokenButtonPrimaryBg:        &ButtonPrimaryBgColor,
	TokenButtonPrimaryFocusBg:   &ButtonPrimaryFocusBgColor,
	TokenButtonSecondaryBg:      &ButtonSecondaryBgColor,
	TokenButtonSecondaryFocusBg: &ButtonSecondaryFocusBgColor,
	TokenOverlayTitle:           &OverlayTitleColor,
	TokenOverlayBorder:          &OverlayBorderColor,
	TokenToastSuccess:           &ToastBorderSuccessColor,
	TokenToastError:             &ToastBorderErrorColor,
	TokenToastInfo:              &ToastBorderInfoColor,
	TokenToastWarn:              &ToastBorderWarnColor,
	TokenSpinner:                &SpinnerColor,
}

func applyColors(palette map[ColorToken]lipgloss.AdaptiveColor) {
	for token, target := range colorTargets {
		if c, ok := palette[token]; ok {
			*target = c
		}
	}
}

// rebuildStyles recreates all Style objects with updated colors.
func rebuildStyles() {
	SelectionIndicatorStyle = lipgloss.NewStyle().Bold(true).Foreground(SelectionIndicatorColor)

	baseButtonStyle := lipgloss.NewStyle().Padding(0, 2).Bold(true)

	PrimaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryBgColor)

	PrimaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonPrimaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	SecondaryButtonStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryBgColor)

	SecondaryButtonFocusedStyle = baseButtonStyle.
		Foreground(ButtonTextColor).
		Background(ButtonSecondaryFocusBgColor).
		Underline(true).
		UnderlineSpaces(true)

	CarouselItemStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	CarouselSelectedStyle = lipgloss.NewStyle().
		Foreground(SelectionIndicatorColor).
		Background(SelectionBackgroundColor).
		Bold(true).
		Padding(0, 1)

	TitleBadgeStyle = lipgloss.NewStyle().
		Foreground(ButtonTextColor).
		Background(AccentPrimaryColor).
		Bold(true).
		Padding(0, 1)

	LinkStyle = lipgloss.NewStyle().Foreground(LinkColor).Underline(true)
	LinkFocusedStyle = lipgloss.NewStyle().Foreground(LinkFocusColor).Underline(true).Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().Foreground(TextPlaceholderColor).Italic(true)
	HintStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(TextSecondaryColor).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(StatusErrorColor).
		Bold(true)

	for _, fn := range styleRebuilders {
		fn()
	}
}

func isValidToken(token ColorToken) bool {
	return slices.Contains(AllTokens(), token)
}

func isValidHexColor(s string) bool {
	if !strings.HasPrefix(s, "#") {
		return false
	}
	hex := s[1:]
	if len(hex) != 3 && len(hex) != 6 {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 64)
	return err == nil
}
