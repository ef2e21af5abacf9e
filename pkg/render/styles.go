package render

import "github.com/charmbracelet/lipgloss"

// theme groups the chrome styles around the rendered Markdown body.
type theme struct {
	titleBar lipgloss.Style
	footer   lipgloss.Style
}

func themeFor(name string) theme {
	switch name {
	case "light":
		return theme{
			titleBar: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("235")).
				Background(lipgloss.Color("252")),
			footer: lipgloss.NewStyle().
				Foreground(lipgloss.Color("243")),
		}
	default:
		return theme{
			titleBar: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("63")),
			footer: lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")),
		}
	}
}
