package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorDarkGray  = lipgloss.Color("#444444")
	colorPurple    = lipgloss.Color("#8524a6")
	colorRed       = lipgloss.Color("#FF5555")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite).
			MarginTop(1).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			MarginBottom(1)

	menuItemStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	menuItemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Bold(true).
				PaddingLeft(2)

	infoStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorRed).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorDarkGray).
			Italic(true).
			MarginTop(1)

	// message cards

	userMessageStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				BorderStyle(lipgloss.RoundedBorder()).
				BorderForeground(colorDarkGray).
				Padding(0, 1)

	assistantHeaderStyle = lipgloss.NewStyle().
				Foreground(colorPurple).
				Bold(true)

	timestampStyle = lipgloss.NewStyle().
			Foreground(colorGray)

	errorMessageStyle = lipgloss.NewStyle().
				Foreground(colorRed)

	fragmentCardStyle = lipgloss.NewStyle().
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colorGray).
				Padding(0, 1)

	activeFragmentCardStyle = fragmentCardStyle.
				BorderForeground(colorPurple)

	// fragment view

	toolbarButtonStyle = lipgloss.NewStyle().
				Foreground(colorWhite).
				Background(colorDarkGray).
				Padding(0, 1)

	disabledButtonStyle = lipgloss.NewStyle().
				Foreground(colorGray).
				Padding(0, 1)
)

const logo = `
 ██╗   ██╗██╗██████╗ ███████╗
 ██║   ██║██║██╔══██╗██╔════╝
 ██║   ██║██║██████╔╝█████╗
 ╚██╗ ██╔╝██║██╔══██╗██╔══╝
  ╚████╔╝ ██║██████╔╝███████╗
   ╚═══╝  ╚═╝╚═════╝ ╚══════╝
`
