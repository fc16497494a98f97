package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - headings
	colorGreen  = lipgloss.Color("35")  // Green - independent
	colorYellow = lipgloss.Color("220") // Amber - dependent
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - labels
)

// =============================================================================
// Styles
// =============================================================================

var (
	styleTitle   = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleLabel   = lipgloss.NewStyle().Foreground(colorDim)
	styleValue   = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber  = lipgloss.NewStyle().Foreground(colorCyan)
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleMatrix  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)
)

// field renders "label: value" with the label dimmed.
func field(label string, value any) string {
	return fmt.Sprintf("%s %s", styleLabel.Render(label+":"), styleValue.Render(fmt.Sprint(value)))
}

// number renders "label: n" with the number highlighted.
func number(label string, n int) string {
	return fmt.Sprintf("%s %s", styleLabel.Render(label+":"), styleNumber.Render(fmt.Sprint(n)))
}

// independence renders the independence flag in green or amber.
func independence(ok bool) string {
	if ok {
		return styleSuccess.Render("independent")
	}
	return styleWarning.Render("dependent")
}
