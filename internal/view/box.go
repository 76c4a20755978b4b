// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package view

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pdiddy/citation-panel/pkg/types"
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)

	boxHeader = lipgloss.NewStyle().Bold(true)

	phaseStyles = map[types.Phase]lipgloss.Style{
		types.PhaseLoading:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Italic(true),
		types.PhaseResolved: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		types.PhaseFailed:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	}
)

// Box renders st as a bordered citation panel of the given width. Hidden
// states render as the empty string.
func Box(st types.DisplayState, width int) string {
	e := Render(st)
	if !e.Visible {
		return ""
	}

	style := boxStyle
	if width > 4 {
		style = style.Width(width - 2)
	}
	body := phaseStyles[e.Phase].Render(e.Title)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, boxHeader.Render("Citation"), body))
}
