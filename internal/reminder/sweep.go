// Package reminder implements the periodic reminder sweep. The sweep is
// stateless: it fires one notification per qualifying record per run, with no
// de-duplication across runs, so a reminder keeps nudging while its condition
// holds.
package reminder

import (
	"time"

	"petboard/internal/models"
	"petboard/internal/utils"
)

// NotifyFunc delivers one notification to the user.
type NotifyFunc func(title, body string)

// Sweep checks the collections against tomorrow's date and notifies for every
// health event with its reminder flag set and every pending shopping item due
// tomorrow. Returns how many notifications were emitted.
func Sweep(state models.AppState, now time.Time, notify NotifyFunc) int {
	tomorrow := utils.Tomorrow(now)
	fired := 0

	for _, event := range state.HealthEvents {
		if event.Reminder && event.Date == tomorrow {
			notify("PetBoard - Promemoria 💚", "Domani: "+utils.Sanitize(event.Title))
			fired++
		}
	}

	for _, item := range state.ShoppingItems {
		if !item.Completed && item.Date == tomorrow {
			notify("PetBoard - Promemoria acquisto 🛒", "Ricordati di comprare: "+utils.Sanitize(item.Item))
			fired++
		}
	}

	return fired
}
