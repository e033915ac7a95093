package tui

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"petboard/internal/models"
	"petboard/internal/storage"
	"petboard/internal/store"
	"petboard/internal/timeline"
	"petboard/internal/tui/components/calendar"
	"petboard/internal/tui/components/diary"
	"petboard/internal/tui/components/home"
	"petboard/internal/tui/components/shopboard"
	"petboard/internal/tui/components/timelineview"
	"petboard/internal/utils"
)

type SessionState int

const (
	StateHome SessionState = iota
	StateDiary
	StateHealth
	StateShopping
	StateTimeline
	StateProfile
	StateAddDiary
	StateAddHealth
	StateAddShopping
	StateEditProfile
	StateConfirmDelete
)

// tabCount covers the states reachable through the tab bar.
const tabCount = 6

var tabTitles = []string{"Home", "Diario", "Salute", "Acquisti", "Timeline", "Profilo"}

type DiaryFormModel struct {
	Title string
	Text  string
	Date  string
	Photo string
}

type HealthFormModel struct {
	Type     models.HealthType
	Title    string
	Date     string
	Time     string
	Notes    string
	Reminder bool
}

type ShoppingFormModel struct {
	Item     string
	Category models.ShoppingCategory
	Quantity string
	Date     string
	Notes    string
}

type ProfileFormModel struct {
	Name   string
	Avatar string
	Theme  string
}

// deleteTarget identifies the record a pending confirmation dialog is about.
type deleteTarget struct {
	kind string // "diary", "health", "shopping"
	id   int64
}

// notices buffers store notifications emitted during an Update call so the
// model can surface them in the status line afterwards.
type notices struct {
	mu   sync.Mutex
	msgs []string
}

func (n *notices) push(msg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *notices) drain() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	msgs := n.msgs
	n.msgs = nil
	return msgs
}

type Model struct {
	store         *store.Store
	provider      storage.Provider
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model
	styles        Styles

	homeModel     home.Model
	diaryModel    diary.Model
	calendarModel calendar.Model
	boardModel    shopboard.Model
	timelineModel timelineview.Model

	form         *huh.Form
	diaryForm    *DiaryFormModel
	healthForm   *HealthFormModel
	shoppingForm *ShoppingFormModel
	profileForm  *ProfileFormModel

	toDelete deleteTarget
	notices  *notices
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(st *store.Store, provider storage.Provider) Model {
	n := &notices{}
	st.OnNotify(n.push)

	state := st.State()
	highScore, err := provider.HighScore()
	if err != nil {
		highScore = 0
	}

	hm := home.New(0, 0)
	hm.SetProfile(state.PetName, state.PetAvatar, highScore)

	m := Model{
		store:         st,
		provider:      provider,
		state:         StateHome,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		styles:        NewStyles(LookupTheme(state.Theme)),
		homeModel:     hm,
		diaryModel:    diary.New(state.DiaryEntries, 0, 0),
		calendarModel: calendar.New(0, 0),
		boardModel:    shopboard.New(0, 0),
		timelineModel: timelineview.New(0, 0),
		notices:       n,
	}
	m.refresh()
	return m
}

// refresh re-derives every component from the current application state.
func (m *Model) refresh() {
	state := m.store.State()
	today := utils.Today(time.Now())

	m.styles = NewStyles(LookupTheme(state.Theme))
	m.diaryModel.SetEntries(state.DiaryEntries)
	m.calendarModel.SetMonth(state.CurrentYear, state.CurrentMonth, state.HealthEvents, today)
	m.boardModel.SetItems(state.ShoppingItems)
	m.timelineModel.SetEntries(timeline.Build(state))

	pending := 0
	for _, item := range state.ShoppingItems {
		if !item.Completed {
			pending++
		}
	}
	m.homeModel.SetStats(home.Stats{
		DiaryEntries: len(state.DiaryEntries),
		HealthEvents: len(state.HealthEvents),
		PendingItems: pending,
	}, timeline.Recent(state, 5))

	highScore, err := m.provider.HighScore()
	if err != nil {
		highScore = 0
	}
	m.homeModel.SetProfile(state.PetName, state.PetAvatar, highScore)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHome:
		keys = append(keys, m.keys.Game)
	case StateDiary, StateHealth:
		keys = append(keys, m.keys.Add, m.keys.Delete)
	case StateShopping:
		keys = append(keys, m.keys.Add, m.keys.Grab, m.keys.Toggle)
	case StateProfile:
		keys = append(keys, m.keys.Edit)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right, m.keys.Enter}

	var actions []key.Binding
	switch m.state {
	case StateHome:
		actions = []key.Binding{m.keys.Game}
	case StateDiary, StateHealth:
		actions = []key.Binding{m.keys.Add, m.keys.Delete}
	case StateShopping:
		actions = []key.Binding{m.keys.Add, m.keys.Grab, m.keys.Toggle, m.keys.Delete}
	case StateProfile:
		actions = []key.Binding{m.keys.Edit}
	}

	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return scheduleReminderSweep()
}
