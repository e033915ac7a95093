package home

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func startGame(t *testing.T) Model {
	t.Helper()
	m := New(80, 24)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	if !m.Playing() {
		t.Fatal("expected the game to start on g")
	}
	return m
}

func TestModel_WheelEndsGame(t *testing.T) {
	m := startGame(t)

	m, cmd := m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Playing() {
		t.Error("expected scrolling to end the game")
	}
	if cmd == nil {
		t.Fatal("expected a game-over command")
	}
	if _, ok := cmd().(GameOverMsg); !ok {
		t.Errorf("expected GameOverMsg, got %T", cmd())
	}
}

func TestModel_LeftClickDoesNotEndGame(t *testing.T) {
	m := startGame(t)

	m, _ = m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.Playing() {
		t.Error("a plain click must not end the game")
	}
}
