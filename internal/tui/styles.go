package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	rule      lipgloss.Style
	success   lipgloss.Style
	errMsg    lipgloss.Style
	quotaMet  lipgloss.Style
	teamRow   lipgloss.Style
	menuKey   lipgloss.Style
	menuHelp  lipgloss.Style
	boxLabel  lipgloss.Style
	inputBox  lipgloss.Style
	logPanel  lipgloss.Style
	logHeader lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Underline(true),
		header:    lipgloss.NewStyle().Bold(true),
		rule:      lipgloss.NewStyle().Faint(true),
		success:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errMsg:    lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		quotaMet:  lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		teamRow:   lipgloss.NewStyle(),
		menuKey:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		menuHelp:  lipgloss.NewStyle().Faint(true),
		boxLabel:  lipgloss.NewStyle().Underline(true),
		inputBox:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		logPanel:  lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		logHeader: lipgloss.NewStyle().Underline(true),
	}
}
