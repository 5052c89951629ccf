package cmd

import "github.com/charmbracelet/lipgloss"

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	skippedStyle = lipgloss.NewStyle().Faint(true)
	totalStyle   = lipgloss.NewStyle().Bold(true)
)
