package ui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#00a884")
	muted  = lipgloss.Color("243")
	border = lipgloss.Color("#2a3942")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			MarginBottom(1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	helpStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117"))

	messageFromMeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e9edef")).
				Background(lipgloss.Color("#005c4b")).
				Padding(0, 1)

	messageFromOtherStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#e9edef")).
				Background(lipgloss.Color("#202c33")).
				Padding(0, 1)

	messageHeaderStyle = lipgloss.NewStyle().
				Foreground(muted).
				Italic(true)

	reactionStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#3b4a54")).
			Padding(0, 1)

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("117")).
			Bold(true)

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)

	activeTabStyle = tabStyle.
			Foreground(lipgloss.Color("#0b141a")).
			Background(accent)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border)

	overlayStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent)
)
