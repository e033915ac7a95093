package storage

import "petboard/internal/models"

// Provider persists the whole application state as a single blob under a
// fixed key, plus the minigame high score under its own independent key.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Board state. Load is best-effort: a missing or corrupt blob yields the
	// default state rather than an error, so startup never fails on bad data.
	Load() (models.AppState, error)
	Save(models.AppState) error

	// Minigame high score, independent of the board blob.
	HighScore() (int, error)
	SaveHighScore(score int) error

	// Utils
	Path() string
}
