package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Header draws the top bar: app title on the left, the active search or
// focus note on the right, space-filled to width.
func (s Styles) Header(width int, note string) string {
	left := s.Title.Render(" taskpad ")
	right := s.TitleNote.Render(note)
	w := lipgloss.Width
	filler := lipgloss.NewStyle().Width(max(0, width-2-w(left)-w(right))).Render("")
	return s.TitleBar.Render(lipgloss.JoinHorizontal(lipgloss.Center, left, filler, right)) + "\n"
}
