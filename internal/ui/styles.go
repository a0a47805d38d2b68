package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/taskpad/taskpad/internal/theme"
)

// Styles carries every prebuilt lipgloss style the views use, derived
// from one palette. Switching themes means building a new Styles; no
// color lives in package state.
type Styles struct {
	Text   lipgloss.Style
	Subtle lipgloss.Style

	TitleBar  lipgloss.Style
	Title     lipgloss.Style
	TitleNote lipgloss.Style
	Footer    lipgloss.Style

	Cursor   lipgloss.Style
	Pending  lipgloss.Style
	DoneMark lipgloss.Style
	DoneText lipgloss.Style
	Arrow    lipgloss.Style

	PrioHigh   lipgloss.Style
	PrioMedium lipgloss.Style
	PrioLow    lipgloss.Style

	Tag     lipgloss.Style
	Due     lipgloss.Style
	DueNear lipgloss.Style
	DueSoon lipgloss.Style

	Prompt   lipgloss.Style
	InputOK  lipgloss.Style
	InputBad lipgloss.Style

	Confirm lipgloss.Style
	HelpKey lipgloss.Style
	Heading lipgloss.Style
	Error   lipgloss.Style
}

func NewStyles(t theme.Theme) Styles {
	color := func(c theme.Color) lipgloss.Color { return lipgloss.Color(c.Hex()) }
	return Styles{
		Text:   lipgloss.NewStyle().Foreground(color(t.Text)),
		Subtle: lipgloss.NewStyle().Foreground(color(t.Subtext)),

		TitleBar:  lipgloss.NewStyle().Padding(0, 1),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(color(t.Primary)),
		TitleNote: lipgloss.NewStyle().Foreground(color(t.Accent)),
		Footer:    lipgloss.NewStyle().Foreground(color(t.Subtext)).Padding(0, 1),

		Cursor:   lipgloss.NewStyle().Background(color(t.Surface0)).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(color(t.Primary)),
		DoneMark: lipgloss.NewStyle().Foreground(color(t.Green)),
		DoneText: lipgloss.NewStyle().Strikethrough(true).Foreground(color(t.Surface2)),
		Arrow:    lipgloss.NewStyle().Foreground(color(t.Subtext)),

		PrioHigh:   lipgloss.NewStyle().Foreground(color(t.Red)),
		PrioMedium: lipgloss.NewStyle().Foreground(color(t.Yellow)),
		PrioLow:    lipgloss.NewStyle().Foreground(color(t.Green)),

		Tag:     lipgloss.NewStyle().Foreground(color(t.Accent)),
		Due:     lipgloss.NewStyle().Foreground(color(t.Subtext)),
		DueNear: lipgloss.NewStyle().Foreground(color(t.Yellow)),
		DueSoon: lipgloss.NewStyle().Foreground(color(t.Red)),

		Prompt:   lipgloss.NewStyle().Foreground(color(t.Primary)).Bold(true),
		InputOK:  lipgloss.NewStyle().Foreground(color(t.Green)),
		InputBad: lipgloss.NewStyle().Foreground(color(t.Red)),

		Confirm: lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(color(t.Red)).Padding(1, 2),
		HelpKey: lipgloss.NewStyle().Foreground(color(t.Primary)).Bold(true),
		Heading: lipgloss.NewStyle().Foreground(color(t.Lavender)).Bold(true).Underline(true),
		Error:   lipgloss.NewStyle().Foreground(color(t.Red)).Bold(true),
	}
}
