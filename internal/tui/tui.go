package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskpad/taskpad/internal/theme"
	"github.com/taskpad/taskpad/internal/ui"
	"github.com/taskpad/taskpad/pkg/dateinput"
	"github.com/taskpad/taskpad/pkg/persist"
	"github.com/taskpad/taskpad/pkg/task"
)

// status line + key hints
const footerHeight = 2

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeDate
	modeSearch
	modeConfirm
	modeHelp
)

type confirmAction int

const (
	confirmNone confirmAction = iota
	confirmDelete
	confirmClear
)

// Model is the interactive session. Every mutation goes through the
// store and is saved immediately, so quitting at any point loses
// nothing.
type Model struct {
	store   *task.Store
	persist persist.Persistor
	themes  *theme.Manager
	styles  ui.Styles

	mode          mode
	confirm       confirmAction
	confirmTarget task.ID
	confirmText   string
	insertParent  task.ID

	filter  task.Filter
	visible []task.ID
	cursor  int

	viewport viewport.Model
	input    textinput.Model
	date     dateinput.Model

	width, height int
	margin        int

	status    string
	statusErr bool
	banner    string

	now func() time.Time
}

// New assembles the session around an already-loaded store. A non-empty
// warning is kept on screen for the whole session, e.g. when the data
// file could not be read and the session started empty.
func New(store *task.Store, p persist.Persistor, themes *theme.Manager, warning string) *Model {
	in := textinput.New()
	in.Prompt = ""
	in.CharLimit = 120
	in.Focus()

	m := &Model{
		store:   store,
		persist: p,
		themes:  themes,
		input:   in,
		date:    dateinput.New(),
		banner:  warning,
		now:     time.Now,
	}
	m.applyTheme()
	m.updateTasks()
	return m
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.layout()
		m.setCursor(m.cursor)
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.cancel()
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

// handle keys differently based on the current mode
func (m *Model) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeInsert:
		if msg.Type == tea.KeyEnter {
			m.commitInsert()
			return nil
		}
		m.input, cmd = m.input.Update(msg)
	case modeDate:
		if msg.Type == tea.KeyEnter {
			m.commitDue()
			return nil
		}
		m.date, cmd = m.date.Update(msg)
	case modeSearch:
		if msg.Type == tea.KeyEnter {
			m.mode = modeNormal
			return nil
		}
		m.input, cmd = m.input.Update(msg)
		m.filter.Query = m.input.Value()
		m.updateTasks()
		m.setCursor(m.cursor)
	case modeConfirm:
		switch msg.String() {
		case "y", "Y":
			m.confirmed()
		case "n", "N":
			m.mode = modeNormal
			m.confirm = confirmNone
		}
	case modeHelp:
		m.mode = modeNormal
	case modeNormal:
		m.status = ""
		switch msg.String() {
		case "q":
			return tea.Quit
		case "up", "k":
			m.setCursor(m.cursor - 1)
		case "down", "j":
			m.setCursor(m.cursor + 1)
		case "g", "home":
			m.setCursor(0)
		case "G", "end":
			m.setCursor(len(m.visible))
		case "ctrl+u":
			m.setCursor(m.cursor - 10)
		case "ctrl+d":
			m.setCursor(m.cursor + 10)
		case "enter", " ":
			m.toggle()
		case "a":
			m.startInsert("")
		case "s":
			if id := m.atCursor(); id != "" {
				m.startInsert(id)
			}
		case "d":
			m.askDelete()
		case "p":
			m.cyclePriority()
		case "D":
			m.startDate()
		case "/":
			m.startSearch()
		case "f":
			m.filter.Focus = !m.filter.Focus
			m.updateTasks()
			m.setCursor(m.cursor)
		case "C":
			m.askClear()
		case "t":
			t := m.themes.Cycle()
			m.applyTheme()
			m.info("theme: " + t.Name)
		case "h", "f1":
			m.mode = modeHelp
		case "+", "=":
			m.zoom(1)
		case "-", "_":
			m.zoom(-1)
		}
	}
	return cmd
}

// esc backs out of whatever is in progress. In normal mode it drops an
// active search instead.
func (m *Model) cancel() {
	if m.mode == modeNormal || m.mode == modeSearch {
		if m.filter.Query != "" {
			m.filter.Query = ""
			m.updateTasks()
			m.setCursor(m.cursor)
		}
	}
	m.mode = modeNormal
	m.confirm = confirmNone
	m.input.Reset()
	m.date.Reset()
	m.status = ""
}

func (m *Model) startInsert(parent task.ID) {
	m.mode = modeInsert
	m.insertParent = parent
	m.input.Reset()
}

func (m *Model) commitInsert() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.mode = modeNormal
		m.input.Reset()
		return
	}
	var (
		id  task.ID
		err error
	)
	if m.insertParent == "" {
		id, err = m.store.Add(m.input.Value(), m.now())
	} else {
		id, err = m.store.AddSub(m.insertParent, m.input.Value(), m.now())
	}
	if err != nil {
		// stay in insert mode so the text can be fixed
		m.report(err)
		return
	}
	m.mode = modeNormal
	m.input.Reset()
	m.updateTasks()
	m.moveTo(id)
	m.save()
}

func (m *Model) startDate() {
	id := m.atCursor()
	if id == "" {
		return
	}
	info, _ := m.store.Get(id)
	m.mode = modeDate
	m.date.SetValue(info.Due)
}

func (m *Model) commitDue() {
	id := m.atCursor()
	if id == "" {
		m.mode = modeNormal
		return
	}
	if !m.date.Valid() {
		m.report(task.ErrInvalidDate)
		return
	}
	if err := m.store.SetDue(id, m.date.Input.Value(), m.now()); err != nil {
		m.report(err)
		return
	}
	m.mode = modeNormal
	m.date.Reset()
	m.save()
}

func (m *Model) startSearch() {
	m.mode = modeSearch
	m.input.SetValue(m.filter.Query)
	m.input.CursorEnd()
}

func (m *Model) toggle() {
	id := m.atCursor()
	if id == "" {
		return
	}
	if err := m.store.Toggle(id); err != nil {
		m.report(err)
		return
	}
	// focus mode may hide the task the moment it completes
	m.updateTasks()
	m.setCursor(m.cursor)
	m.save()
}

func (m *Model) cyclePriority() {
	id := m.atCursor()
	if id == "" {
		return
	}
	if err := m.store.CyclePriority(id); err != nil {
		m.report(err)
		return
	}
	m.save()
}

func (m *Model) askDelete() {
	id := m.atCursor()
	if id == "" {
		return
	}
	info, _ := m.store.Get(id)
	text := fmt.Sprintf("Delete %q?", info.Title)
	if len(m.store.Children(id)) > 0 {
		text = fmt.Sprintf("Delete %q and its subtasks?", info.Title)
	}
	m.confirm = confirmDelete
	m.confirmTarget = id
	m.confirmText = text
	m.mode = modeConfirm
}

func (m *Model) askClear() {
	m.confirm = confirmClear
	m.confirmText = "Clear all completed tasks?"
	m.mode = modeConfirm
}

func (m *Model) confirmed() {
	switch m.confirm {
	case confirmDelete:
		if err := m.store.Delete(m.confirmTarget); err != nil {
			m.report(err)
		} else {
			m.updateTasks()
			m.setCursor(m.cursor)
			m.save()
		}
	case confirmClear:
		n := m.store.ClearCompleted()
		m.updateTasks()
		m.setCursor(m.cursor)
		suffix := "s"
		if n == 1 {
			suffix = ""
		}
		m.info(fmt.Sprintf("removed %d task%s", n, suffix))
		m.save()
	}
	m.mode = modeNormal
	m.confirm = confirmNone
}

func (m *Model) zoom(delta int) {
	m.margin = clamp(m.margin+delta, 0, 6)
	m.layout()
	m.setCursor(m.cursor)
}

func (m *Model) applyTheme() {
	m.styles = ui.NewStyles(m.themes.Current())
	m.date.Label = m.styles.Prompt
	m.date.OK = m.styles.InputOK
	m.date.Bad = m.styles.InputBad
}

func (m *Model) updateTasks() {
	m.visible = m.store.Visible(m.filter)
}

func (m *Model) save() {
	if err := m.persist.Save(m.store); err != nil {
		m.report(err)
	}
}

func (m *Model) report(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *Model) info(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) layout() {
	header := 1
	if m.banner != "" {
		header++
	}
	m.viewport.Width = max(0, m.width-4*m.margin)
	m.viewport.Height = max(0, m.height-header-footerHeight-2*m.margin)
}

func (m *Model) atCursor() task.ID {
	// if no items visible
	if m.cursor >= len(m.visible) {
		return ""
	}
	return m.visible[m.cursor]
}

func (m *Model) setCursor(value int) {
	size := len(m.visible)
	m.cursor = clamp(value, 0, max(size-1, 0))

	// for when no tasks
	if size == 0 {
		return
	}

	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = m.cursor - m.viewport.Height + 1
	}
	if m.cursor < m.viewport.YOffset {
		m.viewport.YOffset = m.cursor
	}
}

func (m *Model) moveTo(id task.ID) {
	for i, v := range m.visible {
		if v == id {
			m.setCursor(i)
			return
		}
	}
	m.setCursor(m.cursor)
}

func (m *Model) render() {
	m.viewport.SetContent(m.viewTasks())
}

func (m *Model) viewTasks() string {
	if len(m.visible) == 0 {
		return "\n " + m.styles.Subtle.Render(m.emptyHint())
	}
	var b strings.Builder
	for i, id := range m.visible {
		info, ok := m.store.Get(id)
		if !ok {
			continue
		}
		b.WriteString(m.styles.Row(info, m.store.Depth(id), i == m.cursor, m.now()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) emptyHint() string {
	switch {
	case m.store.Len() == 0:
		return "nothing here yet. press 'a' to add a task."
	case m.filter.Query != "":
		return "no tasks match " + strconv.Quote(m.filter.Query) + "."
	default:
		return "all done."
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Header(m.viewport.Width, m.note()))
	if m.banner != "" {
		b.WriteString(m.styles.Error.Render(" ⚠ " + m.banner))
		b.WriteString("\n")
	}
	switch m.mode {
	case modeHelp:
		b.WriteString(m.viewHelp())
	case modeConfirm:
		dialog := m.styles.Confirm.Render(m.confirmText + "\n\nPress 'y' to confirm, 'n' to cancel")
		b.WriteString(lipgloss.Place(m.viewport.Width, m.viewport.Height, lipgloss.Center, lipgloss.Center, dialog))
	default:
		b.WriteString(m.viewport.View())
	}
	b.WriteString("\n")
	b.WriteString(m.statusline())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("q:quit h:help a:add d:delete /:search f:focus t:theme +:zoom"))

	out := b.String()
	if m.margin > 0 {
		out = lipgloss.NewStyle().Margin(m.margin, 2*m.margin).Render(out)
	}
	return out
}

func (m *Model) note() string {
	parts := []string{}
	if m.filter.Query != "" {
		parts = append(parts, "/"+m.filter.Query)
	}
	if m.filter.Focus {
		parts = append(parts, "[Focus]")
	}
	return strings.Join(parts, " ")
}

func (m *Model) statusline() string {
	switch m.mode {
	case modeInsert:
		label := "add: "
		if m.insertParent != "" {
			label = "subtask: "
		}
		return " " + m.styles.Prompt.Render(label) + m.input.View()
	case modeDate:
		return " " + m.date.View()
	case modeSearch:
		return " " + m.styles.Prompt.Render("search: ") + m.input.View()
	}
	if m.status == "" {
		return ""
	}
	if m.statusErr {
		return " " + m.styles.Error.Render(m.status)
	}
	return " " + m.styles.Subtle.Render(m.status)
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}
