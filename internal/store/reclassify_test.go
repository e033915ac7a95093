package store

import (
	"strings"
	"testing"

	"petboard/internal/models"
)

func addBoardItem(t *testing.T, st *Store, name string, category models.ShoppingCategory) models.ShoppingItem {
	t.Helper()
	item, err := st.AddShopping(models.ShoppingItem{
		Category: category,
		Item:     name,
		Date:     "2026-02-01",
	})
	if err != nil {
		t.Fatalf("AddShopping failed: %v", err)
	}
	return item
}

func TestReclassify_MovesAndNotifies(t *testing.T) {
	st, provider := newTestStore(t)
	item := addBoardItem(t, st, "Crocchette", models.CategoryFood)

	var notified string
	st.OnNotify(func(msg string) { notified = msg })
	saves := provider.saves

	result, err := st.Reclassify(item.ID, models.CategoryMedicine)
	if err != nil {
		t.Fatalf("Reclassify failed: %v", err)
	}
	if result != ReclassifyMoved {
		t.Fatalf("expected ReclassifyMoved, got %v", result)
	}
	if st.State().ShoppingItems[0].Category != models.CategoryMedicine {
		t.Error("expected item in the medicine column")
	}
	if provider.saves != saves+1 {
		t.Error("a move must persist")
	}
	if !strings.Contains(notified, "Crocchette") || !strings.Contains(notified, "Farmaci") {
		t.Errorf("unexpected notification %q", notified)
	}
}

func TestReclassify_SameCategoryIsNoOp(t *testing.T) {
	st, provider := newTestStore(t)
	item := addBoardItem(t, st, "Crocchette", models.CategoryFood)

	notified := false
	st.OnNotify(func(string) { notified = true })
	saves := provider.saves

	result, err := st.Reclassify(item.ID, models.CategoryFood)
	if err != nil {
		t.Fatalf("Reclassify failed: %v", err)
	}
	if result != ReclassifyUnchanged {
		t.Fatalf("expected ReclassifyUnchanged, got %v", result)
	}
	if provider.saves != saves {
		t.Error("an unchanged drop must not persist")
	}
	if notified {
		t.Error("an unchanged drop must not notify")
	}
}

func TestReclassify_MissingItemIsSilent(t *testing.T) {
	st, _ := newTestStore(t)

	result, err := st.Reclassify(999, models.CategorySnack)
	if err != nil {
		t.Fatalf("expected silent absorption, got %v", err)
	}
	if result != ReclassifyNotFound {
		t.Fatalf("expected ReclassifyNotFound, got %v", result)
	}
}

func TestReclassify_RejectsUnknownCategory(t *testing.T) {
	st, _ := newTestStore(t)
	item := addBoardItem(t, st, "Pallina", models.CategoryAccessory)

	if _, err := st.Reclassify(item.ID, "toys"); err == nil {
		t.Fatal("expected error for unknown category")
	}
	if st.State().ShoppingItems[0].Category != models.CategoryAccessory {
		t.Error("item must not move on invalid category")
	}
}

func TestReclassify_PersistFailureKeepsMove(t *testing.T) {
	st, provider := newTestStore(t)
	item := addBoardItem(t, st, "Sciroppo", models.CategoryFood)
	provider.failSave = true

	result, err := st.Reclassify(item.ID, models.CategoryMedicine)
	if err == nil {
		t.Fatal("expected persistence error to surface")
	}
	if result != ReclassifyMoved {
		t.Fatalf("expected ReclassifyMoved despite save failure, got %v", result)
	}
	if st.State().ShoppingItems[0].Category != models.CategoryMedicine {
		t.Error("in-memory move must stand when persistence fails")
	}
}

func TestReclassify_NotificationStripsEscapeSequences(t *testing.T) {
	st, _ := newTestStore(t)
	item := addBoardItem(t, st, "Crocchette\x1b[2J", models.CategoryFood)

	var notified string
	st.OnNotify(func(msg string) { notified = msg })

	if _, err := st.Reclassify(item.ID, models.CategoryMedicine); err != nil {
		t.Fatalf("Reclassify failed: %v", err)
	}
	if strings.ContainsRune(notified, 0x1b) {
		t.Errorf("escape sequence leaked into the notification: %q", notified)
	}
}
