package settings

import "github.com/charmbracelet/lipgloss"

// Tokyo Night palette
var (
	primaryColor   = lipgloss.Color("#7aa2f7")
	secondaryColor = lipgloss.Color("#9ece6a")
	errorColor     = lipgloss.Color("#f7768e")
	textColor      = lipgloss.Color("#c0caf5")
	dimColor       = lipgloss.Color("#565f89")
	background     = lipgloss.Color("#1a1b26")

	titleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Width(18)

	inputStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1).
			Width(48)

	focusedInputStyle = inputStyle.
				BorderForeground(primaryColor)

	buttonStyle = lipgloss.NewStyle().
			Foreground(textColor).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor)

	focusedButtonStyle = buttonStyle.
				Background(primaryColor).
				Foreground(background).
				Bold(true).
				BorderForeground(primaryColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(dimColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			Italic(true).
			MarginTop(1)

	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 3).
			Margin(1)
)
