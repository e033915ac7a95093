package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"petboard/internal/constants"
	"petboard/internal/logger"
	"petboard/internal/models"
	"petboard/internal/notifier"
	"petboard/internal/reminder"
	"petboard/internal/tui/components/calendar"
	"petboard/internal/tui/components/diary"
	"petboard/internal/tui/components/home"
	"petboard/internal/tui/components/shopboard"
	"petboard/internal/utils"
)

// Board content offset inside the rendered frame: one row of tabs plus the
// document padding. Mouse hit-testing depends on these staying in sync with
// the view layout.
const (
	contentOriginX = 2
	contentOriginY = 2
)

type statusClearMsg struct{}

type reminderSweepMsg struct{}

func scheduleReminderSweep() tea.Cmd {
	return tea.Tick(constants.ReminderSweepInterval, func(time.Time) tea.Msg {
		return reminderSweepMsg{}
	})
}

// setStatus shows a transient message in the status line and schedules its
// dismissal.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.status = msg
	return tea.Tick(constants.StatusMessageTTL, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// drainNotices surfaces notifications the store emitted during this Update.
func (m *Model) drainNotices() tea.Cmd {
	msgs := m.notices.drain()
	if len(msgs) == 0 {
		return nil
	}
	return m.setStatus(msgs[len(msgs)-1])
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentW := msg.Width - 2*contentOriginX
		contentH := msg.Height - contentOriginY - 3
		m.homeModel.SetSize(contentW, contentH)
		m.diaryModel.SetSize(contentW, contentH)
		m.calendarModel.SetSize(contentW, contentH)
		m.boardModel.SetSize(contentW, contentH)
		m.boardModel.SetOrigin(contentOriginX, contentOriginY)
		m.timelineModel.SetSize(contentW, contentH)
		return m, nil

	case statusClearMsg:
		m.status = ""
		return m, nil

	case reminderSweepMsg:
		return m, tea.Batch(m.runReminderSweep(), scheduleReminderSweep())

	case home.TickMsg:
		var cmd tea.Cmd
		m.homeModel, cmd = m.homeModel.Update(msg)
		return m, cmd

	case home.GameOverMsg:
		return m, m.finishGame(msg.Score)

	case tea.MouseMsg:
		switch m.state {
		case StateShopping:
			var cmd tea.Cmd
			m.boardModel, cmd = m.boardModel.HandleMouse(msg)
			return m, cmd
		case StateHome:
			var cmd tea.Cmd
			m.homeModel, cmd = m.homeModel.Update(msg)
			return m, cmd
		}
		return m, nil

	case diary.AddEntryMsg:
		m.diaryForm = &DiaryFormModel{Date: utils.Today(time.Now())}
		m.form = NewDiaryForm(m.diaryForm)
		m.previousState = m.state
		m.state = StateAddDiary
		return m, m.form.Init()

	case diary.DeleteEntryMsg:
		m.toDelete = deleteTarget{kind: "diary", id: msg.ID}
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case calendar.AddEventMsg:
		m.healthForm = &HealthFormModel{
			Type:     models.HealthVisit,
			Date:     utils.Today(time.Now()),
			Reminder: true,
		}
		m.form = NewHealthForm(m.healthForm)
		m.previousState = m.state
		m.state = StateAddHealth
		return m, m.form.Init()

	case calendar.DeleteEventMsg:
		m.toDelete = deleteTarget{kind: "health", id: msg.ID}
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case calendar.ShiftMonthMsg:
		m.store.ShiftMonth(msg.Delta)
		m.refresh()
		return m, nil

	case shopboard.AddItemMsg:
		m.shoppingForm = &ShoppingFormModel{
			Category: models.CategoryFood,
			Quantity: "1",
		}
		m.form = NewShoppingForm(m.shoppingForm)
		m.previousState = m.state
		m.state = StateAddShopping
		return m, m.form.Init()

	case shopboard.DeleteItemMsg:
		m.toDelete = deleteTarget{kind: "shopping", id: msg.ID}
		m.previousState = m.state
		m.state = StateConfirmDelete
		return m, nil

	case shopboard.ToggleItemMsg:
		if err := m.store.ToggleShoppingCompleted(msg.ID); err != nil {
			return m, m.setStatus("⚠ " + err.Error())
		}
		m.refresh()
		return m, nil

	case shopboard.MoveItemMsg:
		if _, err := m.store.Reclassify(msg.ID, msg.Category); err != nil {
			m.refresh()
			return m, m.setStatus("⚠ " + err.Error())
		}
		m.refresh()
		return m, m.drainNotices()
	}

	switch m.state {
	case StateAddDiary, StateAddHealth, StateAddShopping, StateEditProfile:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// While a game or drag is running the component owns the keyboard,
		// except for quit.
		busy := (m.state == StateHome && m.homeModel.Playing()) ||
			(m.state == StateShopping && m.boardModel.Dragging())

		if key.Matches(msg, m.keys.Quit) && !m.diaryFiltering() {
			m.quitting = true
			return m, tea.Quit
		}
		if !busy {
			switch {
			case key.Matches(msg, m.keys.Tab):
				m.state = (m.state + 1) % tabCount
				return m, nil
			case key.Matches(msg, m.keys.ShiftTab):
				m.state = (m.state - 1 + tabCount) % tabCount
				return m, nil
			}
		}
		if m.state == StateProfile && key.Matches(msg, m.keys.Edit) {
			state := m.store.State()
			m.profileForm = &ProfileFormModel{
				Name:   state.PetName,
				Avatar: state.PetAvatar,
				Theme:  state.Theme,
			}
			m.form = NewProfileForm(m.profileForm)
			m.previousState = m.state
			m.state = StateEditProfile
			return m, m.form.Init()
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateHome:
		m.homeModel, cmd = m.homeModel.Update(msg)
	case StateDiary:
		m.diaryModel, cmd = m.diaryModel.Update(msg)
	case StateHealth:
		m.calendarModel, cmd = m.calendarModel.Update(msg)
	case StateShopping:
		m.boardModel, cmd = m.boardModel.Update(msg)
	case StateTimeline:
		m.timelineModel, cmd = m.timelineModel.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m Model) diaryFiltering() bool {
	return m.state == StateDiary && m.diaryModel.Filtering()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = m.previousState
		return m, nil
	}

	var cmds []tea.Cmd
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		if cmd := m.applyForm(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		m.state = m.previousState
	case huh.StateAborted:
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

// applyForm commits the completed form through the store. Validation errors
// land in the status line; the form is already closed at this point.
func (m *Model) applyForm() tea.Cmd {
	var err error
	switch m.state {
	case StateAddDiary:
		_, err = m.store.AddDiary(models.DiaryEntry{
			Date:  m.diaryForm.Date,
			Title: m.diaryForm.Title,
			Text:  m.diaryForm.Text,
			Photo: m.diaryForm.Photo,
		})
	case StateAddHealth:
		_, err = m.store.AddHealth(models.HealthEvent{
			Type:     m.healthForm.Type,
			Date:     m.healthForm.Date,
			Time:     m.healthForm.Time,
			Title:    m.healthForm.Title,
			Notes:    m.healthForm.Notes,
			Reminder: m.healthForm.Reminder,
		})
	case StateAddShopping:
		_, err = m.store.AddShopping(models.ShoppingItem{
			Category: m.shoppingForm.Category,
			Item:     m.shoppingForm.Item,
			Quantity: m.shoppingForm.Quantity,
			Date:     m.shoppingForm.Date,
			Notes:    m.shoppingForm.Notes,
		})
	case StateEditProfile:
		if err = m.store.SetPetName(m.profileForm.Name); err == nil {
			if err = m.store.SetAvatar(m.profileForm.Avatar); err == nil {
				err = m.store.SetTheme(m.profileForm.Theme)
			}
		}
	}

	if err != nil {
		return m.setStatus("⚠ " + err.Error())
	}
	m.refresh()
	return nil
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		var err error
		switch m.toDelete.kind {
		case "diary":
			err = m.store.RemoveDiary(m.toDelete.id)
		case "health":
			err = m.store.RemoveHealth(m.toDelete.id)
		case "shopping":
			err = m.store.RemoveShopping(m.toDelete.id)
		}
		m.state = m.previousState
		m.toDelete = deleteTarget{}
		if err != nil {
			return m, m.setStatus("⚠ " + err.Error())
		}
		m.refresh()
		return m, nil
	case "n", "N", "esc":
		m.state = m.previousState
		m.toDelete = deleteTarget{}
		return m, nil
	}
	return m, nil
}

// finishGame persists a new high score and reports the result.
func (m *Model) finishGame(score int) tea.Cmd {
	highScore, err := m.provider.HighScore()
	if err != nil {
		logger.Warn("failed to read high score", "err", err)
		highScore = 0
	}
	if score > highScore {
		if err := m.provider.SaveHighScore(score); err != nil {
			logger.Error("failed to save high score", "err", err)
			return m.setStatus("⚠ punteggio non salvato")
		}
		m.refresh()
		return m.setStatus(fmt.Sprintf("🏆 Nuovo record: %d punti!", score))
	}
	return m.setStatus(fmt.Sprintf("Partita finita: %d punti", score))
}

// runReminderSweep fires due reminders through the tray notifier, falling
// back to the status line when no tray process is around.
func (m *Model) runReminderSweep() tea.Cmd {
	n := notifier.New()
	var fallback string
	notify := func(title, body string) {
		if err := n.Notify(title, body); err != nil {
			logger.Debug("tray notification failed", "err", err)
			fallback = title + " " + body
		}
	}

	fired := reminder.Sweep(m.store.State(), time.Now(), notify)
	if fired > 0 && fallback != "" {
		return m.setStatus(fallback)
	}
	return nil
}
