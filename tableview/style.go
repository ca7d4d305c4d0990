package tableview

import "github.com/charmbracelet/lipgloss"

// Style controls the table view's rendering.
type Style struct {
	Border          lipgloss.Style
	SelectionBorder lipgloss.Style
	Text            lipgloss.Style
	Selection       lipgloss.Style
	Marker          lipgloss.Style
	ActionBar       lipgloss.Style

	// UseCellColors paints each cell with its own fill and text colors.
	UseCellColors bool
}

func DefaultStyle() Style {
	return Style{
		Border:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		SelectionBorder: lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")).Bold(true),
		Text:            lipgloss.NewStyle(),
		Selection:       lipgloss.NewStyle().Background(lipgloss.Color("#dbeafe")),
		Marker:          lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6")).Bold(true),
		ActionBar:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		UseCellColors:   true,
	}
}
