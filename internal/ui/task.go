package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/taskpad/taskpad/pkg/task"
	"github.com/taskpad/taskpad/pkg/task/date"
)

// Row renders one task line: cursor, indent arrow, state mark, priority
// symbol, title, then due date and tags.
func (s Styles) Row(info task.Info, depth int, selected bool, now time.Time) string {
	var b strings.Builder

	if selected {
		b.WriteString(s.Cursor.Render(" ➤ "))
	} else {
		b.WriteString("   ")
	}
	if depth > 0 {
		b.WriteString(strings.Repeat("  ", depth-1))
		b.WriteString(s.Arrow.Render(" ↳ "))
	}

	mark := s.Pending.Render("❯")
	title := s.Text
	if selected {
		title = title.Bold(true)
	}
	rendered := title.Render(info.Title)
	if info.Done {
		mark = s.DoneMark.Render("✔")
		rendered = s.DoneText.Render(info.Title)
	}
	b.WriteString(mark)
	b.WriteString(" ")
	b.WriteString(s.Priority(info.Priority))
	b.WriteString(" ")
	b.WriteString(rendered)

	if info.Due != nil {
		b.WriteString(" ")
		b.WriteString(s.DueStyle(*info.Due, now).Render("(due: " + FormatDue(*info.Due, now) + ")"))
	}
	for _, tag := range info.Tags {
		b.WriteString(" ")
		b.WriteString(s.Tag.Render("#" + tag))
	}
	return b.String()
}

// Priority renders the level symbol: ▲ high, ● medium, ▼ low.
func (s Styles) Priority(p task.Priority) string {
	switch p {
	case task.High:
		return s.PrioHigh.Render("▲")
	case task.Low:
		return s.PrioLow.Render("▼")
	}
	return s.PrioMedium.Render("●")
}

// DueStyle picks the urgency color: red when overdue or imminent, yellow
// inside two weeks, muted otherwise.
func (s Styles) DueStyle(due, now time.Time) lipgloss.Style {
	diff := due.Sub(date.StartOfDay(now))
	switch days := int(diff.Hours()) / 24; {
	case days <= 2:
		return s.DueSoon
	case days <= 14:
		return s.DueNear
	default:
		return s.Due
	}
}

// FormatDue humanizes a due instant relative to now. A clock time is
// appended unless the task carries the end-of-day default.
func FormatDue(due, now time.Time) string {
	day := formatDay(due, now)
	if due.Hour() == 23 && due.Minute() == 59 {
		return day
	}
	return day + " " + due.Format("3:04pm")
}

func formatDay(t, now time.Time) string {
	if t.Before(now) {
		return "overdue"
	}
	diff := t.Sub(date.StartOfDay(now))
	switch days := int(diff.Hours()) / 24; {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days < 14:
		return strconv.Itoa(days) + " days"
	case days <= 31:
		return strconv.Itoa(days/7) + " weeks"
	default:
		suffix := ""
		months := days / 31
		if months > 1 {
			suffix = "s"
		}
		return strconv.Itoa(months) + " month" + suffix
	}
}
