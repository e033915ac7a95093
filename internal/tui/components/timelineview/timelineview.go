package timelineview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petboard/internal/timeline"
	"petboard/internal/utils"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	bodyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

// Model is a scrolling read-only view over the merged timeline.
type Model struct {
	entries []timeline.Entry
	offset  int
	width   int
	height  int
}

func New(width, height int) Model {
	return Model{width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetEntries(entries []timeline.Entry) {
	m.entries = entries
	if m.offset > m.maxOffset() {
		m.offset = m.maxOffset()
	}
}

func (m Model) visibleRows() int {
	rows := m.height - 2
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m Model) maxOffset() int {
	max := len(m.entries) - m.visibleRows()
	if max < 0 {
		max = 0
	}
	return max
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < m.maxOffset() {
				m.offset++
			}
		case "home":
			m.offset = 0
		case "end":
			m.offset = m.maxOffset()
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Timeline"))
	b.WriteString("\n")

	if len(m.entries) == 0 {
		b.WriteString(dateStyle.Render("Nessuna attività registrata"))
		return b.String()
	}

	end := m.offset + m.visibleRows()
	if end > len(m.entries) {
		end = len(m.entries)
	}
	for _, e := range m.entries[m.offset:end] {
		b.WriteString(dateStyle.Render(utils.FormatDate(e.When)))
		b.WriteString("  " + e.Icon + " " + e.Title + "\n")
		if e.Body != "" {
			b.WriteString(bodyStyle.Render("    "+e.Body) + "\n")
		}
	}

	if m.maxOffset() > 0 {
		b.WriteString(dateStyle.Render("↑/↓ per scorrere"))
	}
	return b.String()
}
