// Package home renders the dashboard landing view: pet profile header,
// record counters, the most recent activity, and the avatar reflex game.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petboard/internal/minigame"
	"petboard/internal/timeline"
	"petboard/internal/utils"
)

// TickMsg moves the game target. Gen ties the tick to the game that
// scheduled it; a stale tick is dropped.
type TickMsg struct {
	Gen int
}

// GameOverMsg reports a finished game so the parent can persist the score.
type GameOverMsg struct {
	Score int
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	avatarStyle = lipgloss.NewStyle().Padding(0, 1)
	statStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("246"))
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	targetStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	scoreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
)

// Stats are the counters shown on the landing view.
type Stats struct {
	DiaryEntries int
	HealthEvents int
	PendingItems int
}

type Model struct {
	engine    *minigame.Engine
	bounds    minigame.Bounds
	cursor    minigame.Position
	petName   string
	avatar    string
	highScore int
	stats     Stats
	recent    []timeline.Entry
	lastScore int
	width     int
	height    int
}

func New(width, height int) Model {
	return Model{
		engine: minigame.New(nil),
		bounds: minigame.Bounds{Width: 12, Height: 5},
		width:  width,
		height: height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetProfile updates the header fields.
func (m *Model) SetProfile(name, avatar string, highScore int) {
	m.petName = utils.Sanitize(name)
	m.avatar = utils.Sanitize(avatar)
	m.highScore = highScore
}

// SetStats updates the counters and the recent activity preview.
func (m *Model) SetStats(stats Stats, recent []timeline.Entry) {
	m.stats = stats
	m.recent = recent
}

// Playing reports whether a game is running, so the parent can route keys.
func (m Model) Playing() bool {
	return m.engine.Active()
}

func (m Model) scheduleTick(now time.Time) tea.Cmd {
	gen := m.engine.Generation()
	return tea.Tick(m.engine.Interval(now), func(time.Time) tea.Msg {
		return TickMsg{Gen: gen}
	})
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// A tick from a previous game or a paused engine is a no-op.
		if msg.Gen != m.engine.Generation() || !m.engine.Active() {
			return m, nil
		}
		m.engine.Advance(m.bounds)
		return m, m.scheduleTick(time.Now())

	case tea.MouseMsg:
		// Scrolling while a game runs ends it, like the original's
		// scroll-to-quit.
		if m.engine.Active() &&
			(msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown) {
			return m.finish()
		}

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.engine.Active() {
		if msg.String() == "g" {
			now := time.Now()
			m.engine.Start(now)
			m.cursor = minigame.Position{}
			m.engine.Advance(m.bounds)
			return m, m.scheduleTick(now)
		}
		return m, nil
	}

	switch msg.String() {
	case "g", "esc":
		return m.finish()
	case "up", "k":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}
	case "down", "j":
		if m.cursor.Y < m.bounds.Height-1 {
			m.cursor.Y++
		}
	case "left", "h":
		if m.cursor.X > 0 {
			m.cursor.X--
		}
	case "right", "l":
		if m.cursor.X < m.bounds.Width-1 {
			m.cursor.X++
		}
	case " ", "enter":
		now := time.Now()
		if m.engine.Hits(m.cursor, now) {
			m.engine.Catch(now)
		} else if m.engine.Miss() {
			return m.finish()
		}
	}
	return m, nil
}

func (m Model) finish() (Model, tea.Cmd) {
	score := m.engine.Stop()
	m.lastScore = score
	if score > m.highScore {
		m.highScore = score
	}
	return m, func() tea.Msg { return GameOverMsg{Score: score} }
}

func (m Model) View() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatarStyle.Render(m.avatar),
		titleStyle.Render(m.petName),
	)

	stats := statStyle.Render(fmt.Sprintf(
		"📖 %d ricordi   💚 %d eventi   🛒 %d da comprare   🏆 record %d",
		m.stats.DiaryEntries, m.stats.HealthEvents, m.stats.PendingItems, m.highScore,
	))

	var body string
	if m.engine.Active() {
		body = m.viewGame()
	} else {
		body = m.viewRecent()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", stats, "", body)
}

func (m Model) viewRecent() string {
	var b strings.Builder
	b.WriteString(subtleStyle.Render("Attività recente"))
	b.WriteString("\n")
	if len(m.recent) == 0 {
		b.WriteString(subtleStyle.Render("  Ancora niente da raccontare"))
		b.WriteString("\n")
	}
	for _, e := range m.recent {
		b.WriteString(fmt.Sprintf("  %s %s  %s\n", e.Icon, e.When, e.Title))
	}
	b.WriteString("\n")
	if m.lastScore > 0 {
		b.WriteString(scoreStyle.Render(fmt.Sprintf("Ultima partita: %d punti", m.lastScore)))
		b.WriteString("\n")
	}
	b.WriteString(subtleStyle.Render("g: gioca con " + m.petName))
	return b.String()
}

func (m Model) viewGame() string {
	var b strings.Builder

	status := fmt.Sprintf("Punti: %d", m.engine.Score())
	if m.engine.ComboActive() {
		status += fmt.Sprintf("  🔥 combo x%d", m.engine.Combo())
	}
	if p := m.engine.ActivePowerUp(time.Now()); p != minigame.PowerUpNone {
		status += "  ⭐ " + string(p)
	}
	status += fmt.Sprintf("  (errori %d)", m.engine.Misses())
	b.WriteString(scoreStyle.Render(status))
	b.WriteString("\n\n")

	target := m.engine.Position()
	big := m.engine.ActivePowerUp(time.Now()) == minigame.PowerUpBig
	for y := 0; y < m.bounds.Height; y++ {
		for x := 0; x < m.bounds.Width; x++ {
			pos := minigame.Position{X: x, Y: y}
			switch {
			case pos == target:
				b.WriteString(targetStyle.Render(m.avatar))
			case pos == m.cursor:
				b.WriteString(cursorStyle.Render("[]"))
			case big && m.engine.Hits(pos, time.Now()):
				// The enlarged target spills into the adjacent cells.
				b.WriteString(targetStyle.Render("()"))
			default:
				b.WriteString(" ·")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("frecce: mira · spazio: acchiappa · esc: stop"))
	return b.String()
}
