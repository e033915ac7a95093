// Package timeline derives the chronological projection of the board: diary
// entries, health events, and pending shopping items merged into one ordered
// sequence. The projection is recomputed on demand and never cached.
package timeline

import (
	"fmt"
	"sort"

	"petboard/internal/constants"
	"petboard/internal/models"
	"petboard/internal/utils"
)

type Kind string

const (
	KindDiary    Kind = "diary"
	KindHealth   Kind = "health"
	KindShopping Kind = "shopping"
)

// Entry is one tagged item of the merged timeline.
type Entry struct {
	Kind  Kind
	Icon  string
	Title string
	Body  string
	// When is the date used for ordering: the record's event date when it has
	// one, otherwise its creation timestamp.
	When string
}

const diaryPreviewLen = 150

// Build merges the three collections into a single sequence sorted descending
// by date. Completed shopping items are excluded; they are no longer pending.
// Ties keep the concatenation order (diary, health, shopping) via the stable
// sort.
func Build(state models.AppState) []Entry {
	entries := make([]Entry, 0, len(state.DiaryEntries)+len(state.HealthEvents)+len(state.ShoppingItems))

	for _, e := range state.DiaryEntries {
		entries = append(entries, Entry{
			Kind:  KindDiary,
			Icon:  "📔",
			Title: utils.Sanitize(e.Title),
			Body:  utils.Truncate(utils.Sanitize(e.Text), diaryPreviewLen),
			When:  orTimestamp(e.Date, e.CreatedAt.Format(constants.DateFormat)),
		})
	}

	for _, e := range state.HealthEvents {
		body := e.Type.Label()
		if e.Time != "" {
			body += " - " + e.Time
		}
		entries = append(entries, Entry{
			Kind:  KindHealth,
			Icon:  "💚",
			Title: utils.Sanitize(e.Title),
			Body:  body,
			When:  orTimestamp(e.Date, e.CreatedAt.Format(constants.DateFormat)),
		})
	}

	for _, it := range state.ShoppingItems {
		if it.Completed {
			continue
		}
		entries = append(entries, Entry{
			Kind:  KindShopping,
			Icon:  "🛒",
			Title: "Promemoria acquisto",
			Body:  fmt.Sprintf("%s (x%s)", utils.Sanitize(it.Item), utils.Sanitize(it.Quantity)),
			When:  orTimestamp(it.Date, it.CreatedAt.Format(constants.DateFormat)),
		})
	}

	// Dates are YYYY-MM-DD so lexicographic order is chronological order
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].When > entries[j].When
	})

	return entries
}

func orTimestamp(date, timestamp string) string {
	if date != "" {
		return date
	}
	return timestamp
}

// Recent returns the home tab's recent-activity strip: the newest diary
// entries and health events, merged and capped.
func Recent(state models.AppState, max int) []Entry {
	var entries []Entry

	for i, e := range state.DiaryEntries {
		if i >= 3 {
			break
		}
		entries = append(entries, Entry{
			Kind:  KindDiary,
			Icon:  "📔",
			Title: utils.Sanitize(e.Title),
			When:  e.Date,
		})
	}

	// Health events are sorted ascending, so walk from the end
	count := 0
	for i := len(state.HealthEvents) - 1; i >= 0 && count < 2; i-- {
		e := state.HealthEvents[i]
		entries = append(entries, Entry{
			Kind:  KindHealth,
			Icon:  "💚",
			Title: utils.Sanitize(e.Title),
			When:  e.Date,
		})
		count++
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].When > entries[j].When
	})

	if len(entries) > max {
		entries = entries[:max]
	}
	return entries
}
