package diary

import (
	"strings"
	"testing"

	"petboard/internal/models"
)

func TestItem_StripsEscapeSequences(t *testing.T) {
	item := Item{Entry: models.DiaryEntry{
		Date:  "2026-02-10",
		Title: "Titolo \x1b[2J cattivo",
		Text:  "riga uno\nriga \x1b[31mdue",
		Photo: "🐶\x07",
	}}

	if got := item.Title(); strings.ContainsRune(got, 0x1b) || strings.ContainsRune(got, 0x07) {
		t.Errorf("escape leaked into the title: %q", got)
	}
	if got := item.Description(); strings.ContainsRune(got, 0x1b) || strings.ContainsRune(got, '\n') {
		t.Errorf("escape leaked into the description: %q", got)
	}
}

func TestItem_PhotoPrefixesTitle(t *testing.T) {
	item := Item{Entry: models.DiaryEntry{Date: "2026-02-10", Title: "Al parco", Photo: "🐶"}}
	if got := item.Title(); got != "🐶 Al parco" {
		t.Errorf("Title() = %q", got)
	}
}
