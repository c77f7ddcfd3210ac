package ui

import "github.com/charmbracelet/lipgloss"

// Picker palette, matching the industrial theme accents.

// HeaderStyle returns the style for the picker title.
func HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#58a6ff"))
}

// SelectedRowStyle returns the style for the cursor row.
func SelectedRowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#ffffff")).
		Background(lipgloss.Color("#58a6ff"))
}

// RowStyle returns the style for unselected rows.
func RowStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e6edf3"))
}

// CheckedStyle returns the style for the selection marker.
func CheckedStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3fb950"))
}

// FooterKeyStyle returns the style for keyboard shortcut keys in the footer.
func FooterKeyStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#58a6ff"))
}

// FooterDescStyle returns the style for key descriptions in the footer.
func FooterDescStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7d8590"))
}

// WarnStyle returns the style for the confirm prompt.
func WarnStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#d29922"))
}
