// Package tui provides the interactive artifact browser using BubbleTea.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains reusable lipgloss styles for the TUI.
var Styles = struct {
	Title   lipgloss.Style
	Help    lipgloss.Style
	Status  lipgloss.Style
	Warning lipgloss.Style
	Note    lipgloss.Style
	Detail  lipgloss.Style
}{
	Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")).Padding(0, 1),
	Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1),
	Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	Note:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	Detail:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
}
