// tui/styles.go
package tui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69"))
	LabelStyle   = lipgloss.NewStyle().Width(12).Foreground(lipgloss.Color("245"))
	FocusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	BlurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ResultStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5733"))
	HelpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
