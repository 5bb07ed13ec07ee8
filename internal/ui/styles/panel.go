package styles

import "github.com/charmbracelet/lipgloss"

// PromptPanel frames an input prompt drawn over the memo list.
func PromptPanel(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(T().Primary).
		Padding(0, 1).
		Width(width)
}
