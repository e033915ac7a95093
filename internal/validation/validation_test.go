package validation

import (
	"testing"
	"time"

	"petboard/internal/models"
)

func TestValidateState_CleanStateHasNoConflicts(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "2026-02-10", Title: "Al parco"},
	}
	state.HealthEvents = []models.HealthEvent{
		{ID: 2, Type: models.HealthVisit, Date: "2026-01-05", Time: "10:30", Title: "Visita"},
		{ID: 3, Type: models.HealthVaccination, Date: "2026-03-01", Title: "Vaccino"},
	}
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 4, Category: models.CategoryFood, Item: "Crocchette", Date: "2026-02-15"},
	}

	result := New().ValidateState(state)
	if result.HasConflicts() {
		t.Errorf("expected no conflicts, got %s", result.FormatReport())
	}
}

func TestValidateState_DetectsDuplicateIDs(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 7, Date: "2026-02-10", Title: "Uno"},
	}
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 7, Category: models.CategoryFood, Item: "Crocchette", Date: "2026-02-15"},
	}

	result := New().ValidateState(state)
	if !hasConflictType(result, ConflictDuplicateID) {
		t.Errorf("expected a duplicate-id conflict, got %s", result.FormatReport())
	}
}

func TestValidateState_DetectsBadDatesAndTimes(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "10/02/2026", Title: "Formato sbagliato"},
	}
	state.HealthEvents = []models.HealthEvent{
		{ID: 2, Type: models.HealthVisit, Date: "2026-01-05", Time: "25:99", Title: "Ora impossibile"},
	}

	result := New().ValidateState(state)
	if !hasConflictType(result, ConflictInvalidDate) {
		t.Error("expected an invalid-date conflict")
	}
	if !hasConflictType(result, ConflictInvalidTime) {
		t.Error("expected an invalid-time conflict")
	}
}

func TestValidateState_DetectsUnknownEnums(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.HealthEvents = []models.HealthEvent{
		{ID: 1, Type: "grooming", Date: "2026-01-05", Title: "Tipo ignoto"},
	}
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 2, Category: "toys", Item: "Pallina", Date: "2026-02-15"},
	}

	result := New().ValidateState(state)
	if !hasConflictType(result, ConflictUnknownType) {
		t.Error("expected an unknown-type conflict")
	}
	if !hasConflictType(result, ConflictUnknownCategory) {
		t.Error("expected an unknown-category conflict")
	}
}

func TestValidateState_DetectsUnsortedHealth(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.HealthEvents = []models.HealthEvent{
		{ID: 1, Type: models.HealthVisit, Date: "2026-03-01", Title: "Dopo"},
		{ID: 2, Type: models.HealthVisit, Date: "2026-01-05", Title: "Prima"},
	}

	result := New().ValidateState(state)
	if !hasConflictType(result, ConflictUnsortedHealth) {
		t.Errorf("expected an unsorted-health conflict, got %s", result.FormatReport())
	}
}

func hasConflictType(result Result, want ConflictType) bool {
	for _, c := range result.Conflicts {
		if c.Type == want {
			return true
		}
	}
	return false
}

func TestValidateState_AllowsShoppingItemWithoutDueDate(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 1, Category: models.CategoryFood, Item: "Crocchette"},
	}

	result := New().ValidateState(state)
	if result.HasConflicts() {
		t.Errorf("a dateless shopping item is valid, got %s", result.FormatReport())
	}
}
