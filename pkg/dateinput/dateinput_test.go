package dateinput

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matryer/is"

	"github.com/taskpad/taskpad/pkg/task/date"
)

var wednesday = time.Date(2021, time.March, 3, 10, 0, 0, 0, time.Local)

func typeString(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestModel_ResolvesWhileTyping(t *testing.T) {
	is := is.New(t)

	m := New()
	m.Now = func() time.Time { return wednesday }

	m = typeString(m, "tomorrow")
	is.True(m.Valid())
	is.Equal(*m.Value(), time.Date(2021, time.March, 4, 23, 59, 0, 0, time.Local))
	is.True(strings.Contains(m.View(), "✓"))
}

func TestModel_RejectsNonsense(t *testing.T) {
	is := is.New(t)

	m := New()
	m.Now = func() time.Time { return wednesday }

	m = typeString(m, "whenever")
	is.True(!m.Valid())
	is.Equal(m.Value(), (*time.Time)(nil))
	is.True(strings.Contains(m.View(), "✗"))
}

func TestModel_EmptyMeansNoDate(t *testing.T) {
	is := is.New(t)

	m := New()
	is.True(m.Valid())
	is.Equal(m.Value(), (*time.Time)(nil))
	is.True(!strings.Contains(m.View(), "✗"))
}

func TestModel_SetValueSeedsTheInput(t *testing.T) {
	is := is.New(t)

	m := New()
	due := time.Date(2021, time.March, 8, 23, 59, 0, 0, time.Local)
	m.SetValue(&due)
	is.Equal(m.Input.Value(), "8 Mar 2021")
	is.True(m.Valid())

	m.Reset()
	is.Equal(m.Input.Value(), "")
	is.Equal(m.Value(), (*time.Time)(nil))
}

func TestModel_SetValueKeepsTheClock(t *testing.T) {
	is := is.New(t)

	m := New()
	due := time.Date(2021, time.March, 5, 14, 0, 0, 0, time.Local)
	m.SetValue(&due)
	is.Equal(m.Input.Value(), "5 Mar 2021 at 14:00")
	is.True(m.Valid())

	// committing the seeded text unchanged lands on the stored instant
	at, ok := date.Resolve(m.Input.Value(), wednesday)
	is.True(ok)
	is.Equal(at, due)
}
