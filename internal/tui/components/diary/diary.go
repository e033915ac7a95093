package diary

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/list"

	"petboard/internal/models"
	"petboard/internal/utils"
)

// AddEntryMsg asks the parent to open the add-entry form.
type AddEntryMsg struct{}

// DeleteEntryMsg asks the parent to confirm deletion of an entry.
type DeleteEntryMsg struct {
	ID int64
}

type Item struct {
	Entry models.DiaryEntry
}

func (i Item) Title() string {
	title := utils.Sanitize(i.Entry.Title)
	if i.Entry.Photo != "" {
		title = utils.Sanitize(i.Entry.Photo) + " " + title
	}
	return title
}

func (i Item) Description() string {
	desc := utils.FormatDate(i.Entry.Date)
	if i.Entry.Text != "" {
		desc += " · " + utils.Truncate(utils.Sanitize(i.Entry.Text), 60)
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Title }

type Model struct {
	list list.Model
}

func New(entries []models.DiaryEntry, width, height int) Model {
	l := list.New(toItems(entries), list.NewDefaultDelegate(), width, height)
	l.Title = "Diario"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return Model{list: l}
}

func toItems(entries []models.DiaryEntry) []list.Item {
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{Entry: e})
	}
	return items
}

// SetEntries replaces the list contents, keeping the cursor in range.
func (m *Model) SetEntries(entries []models.DiaryEntry) {
	m.list.SetItems(toItems(entries))
	if m.list.Index() >= len(entries) && len(entries) > 0 {
		m.list.Select(len(entries) - 1)
	}
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}

// Filtering reports whether the list's filter input is capturing keys.
func (m Model) Filtering() bool {
	return m.list.SettingFilter()
}

// Selected returns the entry under the cursor.
func (m Model) Selected() (models.DiaryEntry, bool) {
	if item, ok := m.list.SelectedItem().(Item); ok {
		return item.Entry, true
	}
	return models.DiaryEntry{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && !m.list.SettingFilter() {
		switch msg.String() {
		case "a":
			return m, func() tea.Msg { return AddEntryMsg{} }
		case "d":
			if entry, ok := m.Selected(); ok {
				id := entry.ID
				return m, func() tea.Msg { return DeleteEntryMsg{ID: id} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.list.View()
}
