package editor

import "github.com/charmbracelet/lipgloss"

// Style holds the lipgloss styles the editor renders with. The zero value
// renders plain text, which keeps golden output in tests readable.
type Style struct {
	// Gutter styles the separator after the line number.
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style // line number of the cursor row while focused

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style // also used for the 1-cell placeholder at EOL

	// Status styles the whole status row: indent mode on the left,
	// cursor position and read-only marker on the right.
	Status lipgloss.Style
}

// DefaultStyle is a 256-colour theme for dark terminals.
func DefaultStyle() Style {
	dim := lipgloss.Color("240")
	return Style{
		Gutter:        lipgloss.NewStyle().Foreground(dim),
		LineNum:       lipgloss.NewStyle().Foreground(dim),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("235")),
	}
}
