package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "modernc.org/sqlite"

	"petboard/internal/constants"
	"petboard/internal/logger"
	"petboard/internal/models"
)

// SQLiteStore persists the board in a blobs table keyed the same way the
// JSON store keys its files: one fixed key for the whole state, one for the
// minigame high score.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS blobs (
		key TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.db = db
	return nil
}

func (s *SQLiteStore) Init() error {
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	return s.Save(models.DefaultState(time.Now()))
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) getBlob(key string) (string, bool, error) {
	if err := s.open(); err != nil {
		return "", false, err
	}

	var payload string
	err := s.db.QueryRow("SELECT payload FROM blobs WHERE key = ?", key).Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read blob %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *SQLiteStore) putBlob(key, payload string) error {
	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT INTO blobs (key, payload) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload",
		key, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to write blob %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load() (models.AppState, error) {
	state := models.DefaultState(time.Now())

	payload, ok, err := s.getBlob(constants.StateKey)
	if err != nil {
		return state, err
	}
	if !ok {
		return state, nil
	}

	if err := json.Unmarshal([]byte(payload), &state); err != nil {
		logger.Warn("Stored data is corrupt, falling back to defaults", "path", s.path, "error", err)
		return models.DefaultState(time.Now()), nil
	}

	state.Normalize(time.Now())
	return state, nil
}

func (s *SQLiteStore) Save(state models.AppState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	return s.putBlob(constants.StateKey, string(data))
}

func (s *SQLiteStore) HighScore() (int, error) {
	payload, ok, err := s.getBlob(constants.HighScoreKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}

	score, err := strconv.Atoi(payload)
	if err != nil {
		logger.Warn("Stored high score is corrupt, resetting", "error", err)
		return 0, nil
	}
	return score, nil
}

func (s *SQLiteStore) SaveHighScore(score int) error {
	return s.putBlob(constants.HighScoreKey, strconv.Itoa(score))
}

func (s *SQLiteStore) Path() string {
	return s.path
}
