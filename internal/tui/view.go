package tui

import (
	"github.com/charmbracelet/lipgloss"

	"petboard/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHome:
		content = m.styles.Doc.Render(m.homeModel.View())
	case StateDiary:
		content = m.styles.Doc.Render(m.diaryModel.View())
	case StateHealth:
		content = m.styles.Doc.Render(m.calendarModel.View())
	case StateShopping:
		content = m.styles.Doc.Render(m.boardModel.View())
	case StateTimeline:
		content = m.styles.Doc.Render(m.timelineModel.View())
	case StateProfile:
		content = m.styles.Doc.Render(m.viewProfile())
	case StateAddDiary, StateAddHealth, StateAddShopping, StateEditProfile:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	ui := lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
	return ui
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, m.styles.ActiveTab.Render(title))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.status == "" {
		return ""
	}
	return m.styles.Status.Render(m.status)
}

func (m Model) viewProfile() string {
	state := m.store.State()
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render("Profilo"),
		"",
		"  "+utils.Sanitize(state.PetAvatar)+"  "+utils.Sanitize(state.PetName),
		m.styles.Subtle.Render("  Tema: "+state.Theme),
		"",
		m.styles.Subtle.Render("  e: modifica"),
	)
}

func (m Model) viewConfirmDelete() string {
	var what string
	switch m.toDelete.kind {
	case "diary":
		what = "questo ricordo"
	case "health":
		what = "questo evento"
	case "shopping":
		what = "questo articolo"
	}
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			m.styles.Danger.Render("Eliminare "+what+"?"),
			"",
			"[y] Sì",
			"[n] No",
		),
	)
}
