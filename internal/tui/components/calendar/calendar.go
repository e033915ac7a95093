package calendar

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petboard/internal/models"
	"petboard/internal/utils"
)

// AddEventMsg asks the parent to open the add-event form.
type AddEventMsg struct{}

// DeleteEventMsg asks the parent to confirm deletion of an event.
type DeleteEventMsg struct {
	ID int64
}

// ShiftMonthMsg asks the parent to move the visible month.
type ShiftMonthMsg struct {
	Delta int
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	weekdayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	todayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Underline(true)
	eventStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	cursorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	detailStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
)

// Model renders one month of the health calendar plus the event list for
// that month. The visible month itself lives in the application state; the
// component only receives it.
type Model struct {
	year   int
	month  int
	today  string
	events []models.HealthEvent // events of the visible month, in date order
	cursor int
	width  int
	height int
}

func New(width, height int) Model {
	return Model{width: width, height: height}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetMonth points the calendar at a month and filters the events belonging
// to it. The health collection is ordered by date, so the filtered slice is
// too.
func (m *Model) SetMonth(year, month int, events []models.HealthEvent, today string) {
	m.year = year
	m.month = month
	m.today = today

	prefix := fmt.Sprintf("%04d-%02d-", year, month)
	m.events = m.events[:0]
	for _, e := range events {
		if strings.HasPrefix(e.Date, prefix) {
			m.events = append(m.events, e)
		}
	}
	if m.cursor >= len(m.events) {
		m.cursor = 0
	}
}

// Selected returns the event under the cursor.
func (m Model) Selected() (models.HealthEvent, bool) {
	if m.cursor < len(m.events) {
		return m.events[m.cursor], true
	}
	return models.HealthEvent{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "a":
			return m, func() tea.Msg { return AddEventMsg{} }
		case "d":
			if event, ok := m.Selected(); ok {
				id := event.ID
				return m, func() tea.Msg { return DeleteEventMsg{ID: id} }
			}
		case "left", "h", "[":
			return m, func() tea.Msg { return ShiftMonthMsg{Delta: -1} }
		case "right", "l", "]":
			return m, func() tea.Msg { return ShiftMonthMsg{Delta: 1} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.events)-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(utils.FormatMonth(m.year, m.month)))
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewEvents())

	return b.String()
}

func (m Model) viewGrid() string {
	var b strings.Builder
	b.WriteString(weekdayStyle.Render("Do Lu Ma Me Gi Ve Sa"))
	b.WriteString("\n")

	eventDays := make(map[int]bool)
	for _, e := range m.events {
		var y, mo, d int
		if _, err := fmt.Sscanf(e.Date, "%d-%d-%d", &y, &mo, &d); err == nil {
			eventDays[d] = true
		}
	}

	days := utils.DaysInMonth(m.year, m.month)
	col := utils.FirstWeekday(m.year, m.month)
	b.WriteString(strings.Repeat("   ", col))

	for day := 1; day <= days; day++ {
		cell := fmt.Sprintf("%2d", day)
		date := fmt.Sprintf("%04d-%02d-%02d", m.year, m.month, day)
		switch {
		case date == m.today:
			cell = todayStyle.Render(cell)
		case eventDays[day]:
			cell = eventStyle.Render(cell)
		}
		b.WriteString(cell)

		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		} else {
			b.WriteString(" ")
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewEvents() string {
	if len(m.events) == 0 {
		return weekdayStyle.Render("Nessun evento questo mese")
	}

	var b strings.Builder
	for i, e := range m.events {
		marker := "  "
		title := utils.Sanitize(e.Title)
		line := fmt.Sprintf("%s  %s", e.Date, title)
		if e.Time != "" {
			line = fmt.Sprintf("%s %s  %s", e.Date, e.Time, title)
		}
		if e.Reminder {
			line += " 🔔"
		}
		if i == m.cursor {
			marker = cursorStyle.Render("> ")
			line = cursorStyle.Render(line)
		}
		b.WriteString(marker + line + "\n")
		if i == m.cursor && e.Notes != "" {
			b.WriteString(detailStyle.Render("    "+utils.Sanitize(e.Notes)) + "\n")
		}
	}
	return b.String()
}
