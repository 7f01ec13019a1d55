// Package styles contains Lip Gloss style definitions.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pcobb/galvan/internal/config"
)

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor   = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#CCCCCC"} // Main/primary text
	TextSecondaryColor = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#BBBBBB"} // Ids, secondary info
	TextMutedColor     = lipgloss.AdaptiveColor{Light: "#999999", Dark: "#696969"} // Hints, help text, footers

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#A6E3A1"} // Accepted edits
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // Rejected property values

	// Highlight for the selected list entry and property cursor
	HighlightColor = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#7D56F4"}

	// Border for the detail pane
	BorderDefaultColor = lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#696969"}
)

var (
	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(TextPrimaryColor)

	CategoryStyle = lipgloss.NewStyle().Bold(true).Foreground(TextSecondaryColor)

	SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)

	MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)

	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)

	DetailBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(BorderDefaultColor).
				Padding(0, 1)
)

// ApplyTheme overrides the default palette colors from configuration.
// Empty values keep the built-in defaults.
func ApplyTheme(theme config.ThemeConfig) {
	if theme.Highlight != "" {
		HighlightColor = lipgloss.AdaptiveColor{Light: theme.Highlight, Dark: theme.Highlight}
		SelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(HighlightColor)
	}
	if theme.Subtle != "" {
		TextMutedColor = lipgloss.AdaptiveColor{Light: theme.Subtle, Dark: theme.Subtle}
		MutedStyle = lipgloss.NewStyle().Foreground(TextMutedColor)
	}
	if theme.Error != "" {
		StatusErrorColor = lipgloss.AdaptiveColor{Light: theme.Error, Dark: theme.Error}
		ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	}
	if theme.Success != "" {
		StatusSuccessColor = lipgloss.AdaptiveColor{Light: theme.Success, Dark: theme.Success}
		SuccessStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	}
}
