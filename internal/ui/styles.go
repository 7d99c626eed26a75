package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/filetriage/internal/types"
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Padding(0, 1)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	LabelStyle = lipgloss.NewStyle().
			Width(10).
			Foreground(lipgloss.Color("245"))

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("46"))

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("226"))

	// Coral for trash, mint for keep
	TrashStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B"))

	KeepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BFF9E"))
)

var categoryColors = map[types.Category]lipgloss.Color{
	types.Text:   lipgloss.Color("117"),
	types.Image:  lipgloss.Color("213"),
	types.Pdf:    lipgloss.Color("209"),
	types.Binary: lipgloss.Color("250"),
}

// CategoryStyle colours a category label
func CategoryStyle(c types.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(categoryColors[c])
}
