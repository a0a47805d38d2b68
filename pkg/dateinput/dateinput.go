package dateinput

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskpad/taskpad/pkg/task/date"
)

// Model is a one-line due date editor with live feedback: while typing,
// it shows ✓ and the resolved date, or ✗ when the phrase means nothing.
// An empty input is valid and stands for "no due date".
type Model struct {
	Input textinput.Model

	// Label, OK and Bad are supplied by the caller so the widget follows
	// the active theme.
	Label lipgloss.Style
	OK    lipgloss.Style
	Bad   lipgloss.Style

	// Now is the reference instant for resolution, swappable in tests.
	Now func() time.Time

	value *time.Time
}

func New() Model {
	i := textinput.New()
	i.Focus()
	i.CharLimit = 40
	i.Prompt = ""
	return Model{
		Input: i,
		Now:   time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); ok {
		m.Input, cmd = m.Input.Update(msg)
		m.value = nil
		if at, ok := date.Resolve(m.Input.Value(), m.Now()); ok {
			m.value = &at
		}
	}
	return m, cmd
}

func (m Model) View() string {
	status := m.Bad.Render(" ✗")
	if m.Input.Value() == "" {
		status = ""
	} else if m.value != nil {
		status = m.OK.Render(" ✓ " + m.value.Format("Mon _2 Jan 15:04"))
	}
	return m.Label.Render("due: ") + m.Input.View() + status
}

// Value is the resolved due date, nil when the input is empty or does
// not resolve.
func (m *Model) Value() *time.Time {
	return m.value
}

// Valid reports whether the current input can be committed: either a
// resolvable phrase or nothing at all.
func (m *Model) Valid() bool {
	return m.Input.Value() == "" || m.value != nil
}

// SetValue seeds the editor with an existing due date. A clock time off
// the end-of-day default is kept in the seeded text, so committing it
// unchanged lands on the same minute.
func (m *Model) SetValue(t *time.Time) {
	m.value = t
	if t == nil {
		m.Input.SetValue("")
		return
	}
	layout := "2 Jan 2006"
	if !t.Equal(date.EndOfDay(*t)) {
		layout = "2 Jan 2006 at 15:04"
	}
	m.Input.SetValue(t.Format(layout))
}

// Reset clears the input and the resolved value.
func (m *Model) Reset() {
	m.Input.Reset()
	m.value = nil
}
