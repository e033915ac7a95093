package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"petboard/internal/logger"
	"petboard/internal/models"
)

// JSONStore keeps the whole board in one JSON document at the config path.
// The high score lives in a sibling file so the two keys stay independent.
type JSONStore struct {
	path string
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	return s.Save(models.DefaultState(time.Now()))
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) Load() (models.AppState, error) {
	state := models.DefaultState(time.Now())

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			// First run: start from defaults
			return state, nil
		}
		return state, fmt.Errorf("failed to read storage: %w", err)
	}

	if err := json.Unmarshal(data, &state); err != nil {
		// A corrupt blob must not take the app down with it
		logger.Warn("Stored data is corrupt, falling back to defaults", "path", s.path, "error", err)
		return models.DefaultState(time.Now()), nil
	}

	state.Normalize(time.Now())
	return state, nil
}

func (s *JSONStore) Save(state models.AppState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) highScorePath() string {
	base := strings.TrimSuffix(s.path, filepath.Ext(s.path))
	return base + ".highscore"
}

func (s *JSONStore) HighScore() (int, error) {
	data, err := os.ReadFile(s.highScorePath())
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read high score: %w", err)
	}

	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		logger.Warn("Stored high score is corrupt, resetting", "error", err)
		return 0, nil
	}
	return score, nil
}

func (s *JSONStore) SaveHighScore(score int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(s.highScorePath(), []byte(strconv.Itoa(score)), 0600); err != nil {
		return fmt.Errorf("failed to write high score: %w", err)
	}
	return nil
}

func (s *JSONStore) Path() string {
	return s.path
}
