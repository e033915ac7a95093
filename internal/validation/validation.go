// Package validation checks a loaded application state for internal
// inconsistencies: duplicate ids, unparseable dates, unknown enum values,
// and a health collection that lost its ordering. The checks are
// read-only; reporting is left to the caller.
package validation

import (
	"fmt"
	"time"

	"petboard/internal/constants"
	"petboard/internal/models"
)

// ConflictType classifies a detected inconsistency.
type ConflictType string

const (
	ConflictDuplicateID     ConflictType = "duplicate_id"
	ConflictInvalidDate     ConflictType = "invalid_date"
	ConflictInvalidTime     ConflictType = "invalid_time"
	ConflictUnknownType     ConflictType = "unknown_type"
	ConflictUnknownCategory ConflictType = "unknown_category"
	ConflictUnsortedHealth  ConflictType = "unsorted_health"
)

// Conflict is one detected inconsistency.
type Conflict struct {
	Type        ConflictType
	Description string
	IDs         []int64
}

// Result contains all detected conflicts.
type Result struct {
	Conflicts []Conflict
}

// HasConflicts reports whether any conflict was detected.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts.
func (r *Result) FormatReport() string {
	if !r.HasConflicts() {
		return "No conflicts detected."
	}

	report := "Conflicts detected:\n"
	for _, conflict := range r.Conflicts {
		report += fmt.Sprintf("- %s\n", conflict.Description)
	}
	return report
}

// Validator checks application state for conflicts.
type Validator struct{}

func New() *Validator {
	return &Validator{}
}

// ValidateState runs every check over the three record collections.
func (v *Validator) ValidateState(state models.AppState) Result {
	result := Result{Conflicts: []Conflict{}}

	seen := make(map[int64][]string)
	recordID := func(id int64, label string) {
		seen[id] = append(seen[id], label)
	}

	for _, e := range state.DiaryEntries {
		recordID(e.ID, fmt.Sprintf("diary %q", e.Title))
		if !validDate(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Diary entry %q has invalid date: %s", e.Title, e.Date),
				IDs:         []int64{e.ID},
			})
		}
	}

	prevDate := ""
	for i, e := range state.HealthEvents {
		recordID(e.ID, fmt.Sprintf("health %q", e.Title))
		if !validDate(e.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Health event %q has invalid date: %s", e.Title, e.Date),
				IDs:         []int64{e.ID},
			})
		}
		if e.Time != "" && !validTime(e.Time) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidTime,
				Description: fmt.Sprintf("Health event %q has invalid time: %s", e.Title, e.Time),
				IDs:         []int64{e.ID},
			})
		}
		if !e.Type.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownType,
				Description: fmt.Sprintf("Health event %q has unknown type: %s", e.Title, e.Type),
				IDs:         []int64{e.ID},
			})
		}
		// Dates are YYYY-MM-DD so string order is chronological order.
		if i > 0 && e.Date < prevDate {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnsortedHealth,
				Description: fmt.Sprintf("Health event %q (%s) is out of order", e.Title, e.Date),
				IDs:         []int64{e.ID},
			})
		}
		prevDate = e.Date
	}

	for _, item := range state.ShoppingItems {
		recordID(item.ID, fmt.Sprintf("shopping %q", item.Item))
		// The due date is optional; only a malformed one is a conflict.
		if item.Date != "" && !validDate(item.Date) {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictInvalidDate,
				Description: fmt.Sprintf("Shopping item %q has invalid date: %s", item.Item, item.Date),
				IDs:         []int64{item.ID},
			})
		}
		if !item.Category.Valid() {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictUnknownCategory,
				Description: fmt.Sprintf("Shopping item %q has unknown category: %s", item.Item, item.Category),
				IDs:         []int64{item.ID},
			})
		}
	}

	for id, labels := range seen {
		if len(labels) > 1 {
			result.Conflicts = append(result.Conflicts, Conflict{
				Type:        ConflictDuplicateID,
				Description: fmt.Sprintf("Duplicate record id %d: %v", id, labels),
				IDs:         []int64{id},
			})
		}
	}

	return result
}

func validDate(s string) bool {
	_, err := time.Parse(constants.DateFormat, s)
	return err == nil
}

func validTime(s string) bool {
	_, err := time.Parse(constants.TimeFormat, s)
	return err == nil
}
