package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	styleCard    = lipgloss.NewStyle().Bold(true).Border(lipgloss.RoundedBorder()).Padding(1, 4)
	styleTarget  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	styleWeak    = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleMedium  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	styleStrong  = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleCursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	styleSubtle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	styleBarFull = lipgloss.NewStyle().Background(lipgloss.Color("10")).SetString(" ")
	styleBarLeft = lipgloss.NewStyle().Background(lipgloss.Color("8")).SetString(" ")
)
