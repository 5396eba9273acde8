package ui

import "charm.land/lipgloss/v2"

// Color palette. Values follow the active theme; see regenerateStyles.
var (
	ColorPrimary     = lipgloss.Color("#7C3AED") // Purple
	ColorSecondary   = lipgloss.Color("#06B6D4") // Cyan
	ColorBorder      = lipgloss.Color("#374151") // Dark gray
	ColorBorderFocus = lipgloss.Color("#FACC15") // Yellow when focused
	ColorBg          = lipgloss.Color("#1F2937") // Dark background
	ColorText        = lipgloss.Color("#F9FAFB") // Light text
	ColorTextMuted   = lipgloss.Color("#9CA3AF") // Muted text
	ColorTextInverse = lipgloss.Color("#1F2937") // Dark text for light backgrounds
	ColorWarning     = lipgloss.Color("#F59E0B") // Amber
	ColorInfo        = lipgloss.Color("#06B6D4") // Cyan
	ColorError       = lipgloss.Color("#EF4444") // Red
)

// Help bar styles
var (
	HelpBarStyle     lipgloss.Style
	HelpKeyStyle     lipgloss.Style
	HelpDescStyle    lipgloss.Style
	HelpSepStyle     lipgloss.Style
	HelpModeStyle    lipgloss.Style
	HelpCounterStyle lipgloss.Style
)

// Panel styles
var (
	PanelBorderStyle        lipgloss.Style
	PanelFocusedBorderStyle lipgloss.Style
	PanelTitleStyle         lipgloss.Style
	PanelFocusedTitleStyle  lipgloss.Style
	PanelTextStyle          lipgloss.Style
)

// Flash styles
var (
	FlashInfoStyle    lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashErrorStyle   lipgloss.Style
)

func init() {
	buildStyles()
}

// buildStyles derives every style from the Color* variables.
func buildStyles() {
	HelpBarStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	HelpKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	HelpSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	HelpModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Padding(0, 1)

	HelpCounterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	// Panel borders are assembled cell by cell in renderPanel so the
	// title can sit inside the top edge; these only carry the colors.
	PanelBorderStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	PanelFocusedBorderStyle = lipgloss.NewStyle().
		Foreground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)

	PanelFocusedTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorBorderFocus)

	PanelTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	FlashInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)

	FlashWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	FlashErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)
}
