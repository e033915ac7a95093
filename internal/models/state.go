package models

import (
	"time"

	"petboard/internal/constants"
)

// AppState is the full persisted application state: the pet profile, the
// three record collections, and the calendar cursor. The record store owns
// the single live instance; everything else works on snapshots.
type AppState struct {
	PetName       string         `json:"pet_name"`
	PetAvatar     string         `json:"pet_avatar"`
	Theme         string         `json:"theme"`
	DiaryEntries  []DiaryEntry   `json:"diary_entries"`
	HealthEvents  []HealthEvent  `json:"health_events"`
	ShoppingItems []ShoppingItem `json:"shopping_items"`
	CurrentMonth  int            `json:"current_month"` // 1-12
	CurrentYear   int            `json:"current_year"`
}

// DefaultState returns a fresh state with the calendar cursor on the current
// month. Used on first run and whenever the persisted blob cannot be read.
func DefaultState(now time.Time) AppState {
	return AppState{
		PetName:      constants.DefaultPetName,
		PetAvatar:    constants.DefaultAvatar,
		Theme:        constants.DefaultTheme,
		CurrentMonth: int(now.Month()),
		CurrentYear:  now.Year(),
	}
}

// Normalize repairs a state loaded from an older or partial blob so the rest
// of the app can rely on its invariants.
func (s *AppState) Normalize(now time.Time) {
	if s.PetName == "" {
		s.PetName = constants.DefaultPetName
	}
	if s.PetAvatar == "" {
		s.PetAvatar = constants.DefaultAvatar
	}
	if s.Theme == "" {
		s.Theme = constants.DefaultTheme
	}
	if s.CurrentMonth < 1 || s.CurrentMonth > 12 {
		s.CurrentMonth = int(now.Month())
	}
	if s.CurrentYear == 0 {
		s.CurrentYear = now.Year()
	}
}
