package present

import "github.com/charmbracelet/lipgloss"

// theme groups reusable styles for presenter chrome.
type theme struct {
	status    lipgloss.Style
	statusErr lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			PaddingLeft(1),
		statusErr: lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Bold(true).
			PaddingLeft(1),
	}
}
