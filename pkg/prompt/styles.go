// Package prompt implements the interactive terminal hosts: the option
// dialog shown before extraction, the save dialog and the progress
// palette.
package prompt

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan  = lipgloss.Color("36")
	colorGreen = lipgloss.Color("35")
	colorWhite = lipgloss.Color("255")
	colorGray  = lipgloss.Color("245")
	colorDim   = lipgloss.Color("240")
)

var (
	styleTitle    = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleGroup    = lipgloss.NewStyle().Bold(true).Foreground(colorGray)
	styleFocused  = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleNormal   = lipgloss.NewStyle().Foreground(colorWhite)
	styleDim      = lipgloss.NewStyle().Foreground(colorDim)
	styleButton   = lipgloss.NewStyle().Padding(0, 2).Foreground(colorWhite).Background(colorDim)
	styleActive   = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(colorWhite).Background(colorCyan)
	styleBarFull  = lipgloss.NewStyle().Foreground(colorGreen)
	styleBarEmpty = lipgloss.NewStyle().Foreground(colorDim)
	stylePanel    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)
