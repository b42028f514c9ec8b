package tui

import "github.com/charmbracelet/lipgloss"

var (
	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Background(lipgloss.Color("236")).
			Padding(0, 1).
			Bold(true)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 1)

	docStyle = lipgloss.NewStyle().Padding(1, 2)

	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	dimStyle     = lipgloss.NewStyle().Faint(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	bedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	wakeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)

// hoursStyle grades a nightly duration against the fixed display thresholds.
func hoursStyle(hours float64) lipgloss.Style {
	switch {
	case hours >= 7.0:
		return goodStyle
	case hours >= 6.0:
		return warnStyle
	default:
		return badStyle
	}
}

// debtStyle colors outstanding debt red, surplus green.
func debtStyle(debt float64) lipgloss.Style {
	if debt > 0 {
		return badStyle
	}
	return goodStyle
}
