// Package tui binds the country directory to a Bubble Tea list.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/dialpick/internal/country"
)

const defaultTitle = "Choose your country"

// chrome is the number of lines View spends outside the list.
const chrome = 4

type address struct {
	section int
	row     int
}

// Model is the picker screen. The directory is only touched from Update.
type Model struct {
	dir      *country.Directory
	input    textinput.Model
	help     help.Model
	keys     KeyMap
	theme    Theme
	title    string
	cursor   int
	offset   int
	pageSize int

	chosen    country.Entry
	hasChosen bool
	cancelled bool
}

// New returns a picker over dir showing pageSize list lines until the
// terminal reports its size.
func New(dir *country.Directory, pageSize int) *Model {
	inp := textinput.New()
	inp.Placeholder = "search name, code or +prefix"
	inp.Prompt = "> "
	inp.Focus()
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Model{
		dir:      dir,
		input:    inp,
		help:     help.New(),
		keys:     DefaultKeyMap(),
		theme:    DefaultTheme(),
		title:    defaultTitle,
		pageSize: pageSize,
	}
}

// Chosen reports the entry picked before the program quit.
func (m *Model) Chosen() (country.Entry, bool) {
	return m.chosen, m.hasChosen
}

func (m *Model) Cancelled() bool { return m.cancelled }

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Height > chrome+1 {
			m.pageSize = msg.Height - chrome
		}
		m.scrollToCursor()
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.input.Value() != "" {
			m.input.SetValue("")
			m.applyQuery()
			return m, nil
		}
		m.cancelled = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize)
		return m, nil
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize)
		return m, nil
	case key.Matches(msg, m.keys.Home):
		m.cursor = 0
		m.scrollToCursor()
		return m, nil
	case key.Matches(msg, m.keys.End):
		m.cursor = len(m.addresses()) - 1
		m.moveCursor(0)
		return m, nil
	case key.Matches(msg, m.keys.Select):
		return m, m.selectCurrent()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.applyQuery()
	}
	return m, cmd
}

func (m *Model) applyQuery() {
	m.dir.SetQuery(m.input.Value())
	m.cursor = 0
	m.offset = 0
}

func (m *Model) selectCurrent() tea.Cmd {
	addrs := m.addresses()
	if len(addrs) == 0 {
		return nil
	}
	at := addrs[m.cursor]
	entry := m.dir.EntryAt(at.section, at.row)
	m.dir.OnSelect(entry)
	m.chosen = entry
	m.hasChosen = true
	return tea.Quit
}

// addresses flattens every selectable (section, row) in display order.
func (m *Model) addresses() []address {
	var out []address
	for s := 0; s < m.dir.SectionCount(); s++ {
		for r := 0; r < m.dir.RowCount(s); r++ {
			out = append(out, address{section: s, row: r})
		}
	}
	return out
}

func (m *Model) moveCursor(delta int) {
	total := len(m.addresses())
	m.cursor += delta
	if m.cursor > total-1 {
		m.cursor = total - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

type line struct {
	header   string
	entry    country.Entry
	selected bool
}

func (m *Model) lines() ([]line, int) {
	var out []line
	cursorLine := 0
	idx := 0
	for s := 0; s < m.dir.SectionCount(); s++ {
		if title := m.dir.SectionTitle(s); title != "" {
			out = append(out, line{header: title})
		}
		for r := 0; r < m.dir.RowCount(s); r++ {
			selected := idx == m.cursor
			if selected {
				cursorLine = len(out)
			}
			out = append(out, line{entry: m.dir.EntryAt(s, r), selected: selected})
			idx++
		}
	}
	return out, cursorLine
}

func (m *Model) scrollToCursor() {
	_, cursorLine := m.lines()
	if cursorLine < m.offset {
		m.offset = cursorLine
	}
	if cursorLine >= m.offset+m.pageSize {
		m.offset = cursorLine - m.pageSize + 1
	}
	if m.cursor == 0 {
		m.offset = 0
	}
}

func label(e country.Entry) string {
	return fmt.Sprintf("%-6s %s", e.Prefix, e.Flag)
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	lines, _ := m.lines()
	if len(lines) == 0 {
		b.WriteString(m.theme.Muted.Render("No matches"))
		if entry, ok := country.Closest(m.dir.All(), m.dir.Query()); ok && m.dir.Mode() == country.Filtering {
			b.WriteString(m.theme.Muted.Render(fmt.Sprintf(" · did you mean %s?", entry.Name)))
		}
		b.WriteString("\n")
	}

	end := min(len(lines), m.offset+m.pageSize)
	for _, ln := range lines[min(m.offset, end):end] {
		switch {
		case ln.header != "":
			b.WriteString(m.theme.Header.Render(ln.header))
		case ln.selected:
			b.WriteString(m.theme.Selected.Render("▸ " + label(ln.entry) + "  " + ln.entry.Name))
		default:
			b.WriteString("  " + m.theme.Prefix.Render(label(ln.entry)) + "  " + m.theme.Name.Render(ln.entry.Name))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}
