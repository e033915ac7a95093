package timeline

import (
	"strings"
	"testing"
	"time"

	"petboard/internal/models"
)

func TestBuild_MergesAndSortsDescending(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "2026-02-10", Title: "Al parco", Text: "corsa lunga"},
	}
	state.HealthEvents = []models.HealthEvent{
		{ID: 2, Type: models.HealthVisit, Date: "2026-02-20", Time: "10:30", Title: "Visita veterinaria"},
	}
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 3, Category: models.CategoryFood, Item: "Crocchette", Quantity: "2", Date: "2026-02-15"},
	}

	entries := Build(state)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	wantOrder := []Kind{KindHealth, KindShopping, KindDiary}
	for i, want := range wantOrder {
		if entries[i].Kind != want {
			t.Errorf("entry %d: expected %s, got %s", i, want, entries[i].Kind)
		}
	}

	if entries[0].Body != "Visita veterinaria - 10:30" {
		t.Errorf("unexpected health body %q", entries[0].Body)
	}
	if entries[1].Title != "Promemoria acquisto" || entries[1].Body != "Crocchette (x2)" {
		t.Errorf("unexpected shopping entry %+v", entries[1])
	}
}

func TestBuild_ExcludesCompletedShopping(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 1, Category: models.CategoryFood, Item: "Crocchette", Quantity: "1", Date: "2026-02-15", Completed: true},
		{ID: 2, Category: models.CategorySnack, Item: "Biscotti", Quantity: "1", Date: "2026-02-16"},
	}

	entries := Build(state)
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if !strings.Contains(entries[0].Body, "Biscotti") {
		t.Errorf("expected the pending item, got %+v", entries[0])
	}
}

func TestBuild_TruncatesDiaryPreview(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "2026-02-10", Title: "Lungo", Text: strings.Repeat("a", 300)},
	}

	entries := Build(state)
	if got := len([]rune(entries[0].Body)); got != diaryPreviewLen+3 {
		t.Errorf("expected preview of %d runes plus ellipsis, got %d", diaryPreviewLen, got)
	}
}

func TestBuild_FallsBackToCreationTimestamp(t *testing.T) {
	created := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Title: "Senza data", CreatedAt: created},
	}

	entries := Build(state)
	if entries[0].When != "2026-03-05" {
		t.Errorf("expected creation date fallback, got %q", entries[0].When)
	}
}

func TestRecent_CapsAndOrders(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "2026-02-14", Title: "d1"},
		{ID: 2, Date: "2026-02-13", Title: "d2"},
		{ID: 3, Date: "2026-02-12", Title: "d3"},
		{ID: 4, Date: "2026-02-11", Title: "d4"},
	}
	state.HealthEvents = []models.HealthEvent{
		{ID: 5, Type: models.HealthVisit, Date: "2026-02-01", Title: "h1"},
		{ID: 6, Type: models.HealthVisit, Date: "2026-02-15", Title: "h2"},
		{ID: 7, Type: models.HealthVisit, Date: "2026-02-20", Title: "h3"},
	}

	entries := Recent(state, 5)
	if len(entries) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(entries))
	}

	// Only the newest three diary entries and last two health events
	// qualify, in descending date order.
	if entries[0].Title != "h3" || entries[1].Title != "h2" {
		t.Errorf("expected the two newest health events first, got %q, %q", entries[0].Title, entries[1].Title)
	}
	for _, e := range entries {
		if e.Title == "d4" {
			t.Error("fourth diary entry must not appear")
		}
		if e.Title == "h1" {
			t.Error("oldest health event must not appear")
		}
	}

	capped := Recent(state, 2)
	if len(capped) != 2 {
		t.Errorf("expected cap at 2, got %d", len(capped))
	}
}

func TestBuild_StripsEscapeSequencesFromUserText(t *testing.T) {
	state := models.DefaultState(time.Now())
	state.DiaryEntries = []models.DiaryEntry{
		{ID: 1, Date: "2026-02-10", Title: "Titolo \x1b[2J cattivo", Text: "riga uno\nriga due \x1b[31m"},
	}
	state.HealthEvents = []models.HealthEvent{
		{ID: 2, Type: models.HealthVisit, Date: "2026-02-11", Title: "Visita \x07\x1b[1m"},
	}
	state.ShoppingItems = []models.ShoppingItem{
		{ID: 3, Category: models.CategoryFood, Item: "Crocchette \x1b[2J", Quantity: "1"},
	}

	for _, e := range Build(state) {
		if strings.ContainsRune(e.Title, 0x1b) || strings.ContainsRune(e.Body, 0x1b) {
			t.Errorf("escape sequence leaked into %s entry: %q / %q", e.Kind, e.Title, e.Body)
		}
		if strings.ContainsRune(e.Title, '\n') || strings.ContainsRune(e.Body, '\n') {
			t.Errorf("newline leaked into %s entry: %q / %q", e.Kind, e.Title, e.Body)
		}
	}

	for _, e := range Recent(state, 5) {
		if strings.ContainsRune(e.Title, 0x1b) {
			t.Errorf("escape sequence leaked into recent entry: %q", e.Title)
		}
	}
}
