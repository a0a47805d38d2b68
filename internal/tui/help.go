package tui

import (
	"fmt"
	"strings"
)

var helpKeys = []struct{ key, does string }{
	{"↑/k ↓/j", "move"},
	{"g G", "jump to top / bottom"},
	{"enter", "toggle done"},
	{"a", "add a task"},
	{"s", "add a subtask"},
	{"p", "cycle priority"},
	{"D", "set the due date (empty input clears it)"},
	{"d", "delete (asks first)"},
	{"C", "clear completed (asks first)"},
	{"/", "search titles and tags"},
	{"f", "focus: hide completed"},
	{"t", "next theme"},
	{"+ -", "zoom in / out"},
	{"esc", "cancel"},
	{"q", "quit"},
}

func (m *Model) viewHelp() string {
	var b strings.Builder
	b.WriteString("\n " + m.styles.Heading.Render("Keys") + "\n\n")
	for _, k := range helpKeys {
		b.WriteString("   " + m.styles.HelpKey.Render(fmt.Sprintf("%-9s", k.key)) + " " + m.styles.Text.Render(k.does) + "\n")
	}

	b.WriteString("\n " + m.styles.Heading.Render("Themes") + "\n\n")
	current := m.themes.Current().Name
	for _, name := range m.themes.Names() {
		if name == current {
			b.WriteString("  ➤ " + m.styles.Text.Render(name) + "\n")
		} else {
			b.WriteString("    " + m.styles.Subtle.Render(name) + "\n")
		}
	}

	b.WriteString("\n " + m.styles.Heading.Render("Task text") + "\n\n")
	b.WriteString("   " + m.styles.Subtle.Render(`#tags, a leading urgent:/low: label and phrases like`) + "\n")
	b.WriteString("   " + m.styles.Subtle.Render(`"tomorrow 5pm" or "in 2 weeks" are lifted from what you type.`) + "\n")
	b.WriteString("\n " + m.styles.Subtle.Render("press any key to go back") + "\n")
	return b.String()
}
