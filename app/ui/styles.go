package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.Color("#007BFF")
	colorText    = lipgloss.Color("#E6E6E6")
	colorTextDim = lipgloss.Color("#8A8A8A")
	colorError   = lipgloss.Color("#D32F2F")
	colorErrorBg = lipgloss.Color("#FFDDD0")
	colorBorder  = lipgloss.Color("#3C3C3C")
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginBottom(1)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Bold(true)

	descStyle = lipgloss.NewStyle().
			Foreground(colorText)

	imageStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			Italic(true)

	linkStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Foreground(colorError).
			Padding(1, 2).
			Align(lipgloss.Center)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(colorTextDim).
				Padding(1, 2)

	chatStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent)

	userMsgStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorAccent).
			Padding(0, 1)

	botMsgStyle = lipgloss.NewStyle().
			Foreground(colorText)

	errorMsgStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Background(colorErrorBg).
			Padding(0, 1)

	sourcesStyle = lipgloss.NewStyle().
			Foreground(colorTextDim).
			BorderTop(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(colorBorder)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	hintStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)
)
