package models

import (
	"time"

	"petboard/internal/constants"
)

type HealthType string

const (
	HealthVaccination HealthType = "vaccination"
	HealthVisit       HealthType = "visit"
	HealthTherapy     HealthType = "therapy"
	HealthCheckup     HealthType = "checkup"
)

var healthTypeLabels = map[HealthType]string{
	HealthVaccination: "Vaccinazione",
	HealthVisit:       "Visita veterinaria",
	HealthTherapy:     "Terapia",
	HealthCheckup:     "Controllo",
}

// Label returns the display label for the health event type, falling back to
// the raw value for unknown types.
func (t HealthType) Label() string {
	if label, ok := healthTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t HealthType) Valid() bool {
	_, ok := healthTypeLabels[t]
	return ok
}

// HealthEvent is a veterinary appointment, vaccination, therapy, or checkup.
// The health collection is kept sorted ascending by date after every insert.
type HealthEvent struct {
	ID        int64      `json:"id"`
	Type      HealthType `json:"type"`
	Date      string     `json:"date"`           // YYYY-MM-DD format
	Time      string     `json:"time,omitempty"` // HH:MM format
	Title     string     `json:"title"`
	Notes     string     `json:"notes,omitempty"`
	Reminder  bool       `json:"reminder"`
	CreatedAt time.Time  `json:"timestamp"`
}

func (e *HealthEvent) Validate() error {
	if !e.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "unknown health event type"}
	}
	if e.Date == "" {
		return &ValidationError{Field: "date"}
	}
	if _, err := time.Parse(constants.DateFormat, e.Date); err != nil {
		return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
	}
	if e.Time != "" {
		if _, err := time.Parse(constants.TimeFormat, e.Time); err != nil {
			return &ValidationError{Field: "time", Reason: "expected HH:MM"}
		}
	}
	return nil
}
