package models

import (
	"time"

	"petboard/internal/constants"
)

// DiaryEntry is a single memory in the pet's digital diary. Entries are
// immutable once created; the only mutation is removal.
type DiaryEntry struct {
	ID        int64     `json:"id"`
	Date      string    `json:"date"` // YYYY-MM-DD format
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Photo     string    `json:"photo,omitempty"` // opaque data URI
	CreatedAt time.Time `json:"timestamp"`
}

func (e *DiaryEntry) Validate() error {
	if e.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if e.Text == "" {
		return &ValidationError{Field: "text"}
	}
	return nil
}
