package tui

import (
	"github.com/charmbracelet/lipgloss"

	"heic2jpg/internal/converter"
)

var (
	ColorInk       = lipgloss.Color("#E5E9F0")
	ColorDim       = lipgloss.Color("#7A8291")
	ColorAccent    = lipgloss.Color("#88C0D0")
	ColorAccentAlt = lipgloss.Color("#81A1C1")
	ColorSuccess   = lipgloss.Color("#A3BE8C")
	ColorWarn      = lipgloss.Color("#EBCB8B")
	ColorError     = lipgloss.Color("#BF616A")
)

// OutcomeColor is the color a file name is shown in, by what a conversion
// run does with it.
func OutcomeColor(outcome converter.Outcome) lipgloss.Color {
	switch outcome {
	case converter.OutcomeCandidate:
		return ColorAccent
	case converter.OutcomeSkip:
		return ColorDim
	default:
		return ColorWarn
	}
}

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorAccent)
	labelStyle     = lipgloss.NewStyle().Foreground(ColorInk)
	dimStyle       = lipgloss.NewStyle().Foreground(ColorDim)
	barFilledStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	warnStyle      = lipgloss.NewStyle().Foreground(ColorWarn)
	errorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	valueStyle     = lipgloss.NewStyle().Foreground(ColorInk).Bold(true)
)
