package cli

import (
	"fmt"
	"strconv"
	"strings"

	"petboard/internal/models"
	"petboard/internal/storage"
	"petboard/internal/store"
)

type Context struct {
	Provider storage.Provider
}

// openStore loads the persisted state and wraps it in a live store. Commands
// share this instead of touching the provider directly so every mutation goes
// through the same validation and persistence path the TUI uses.
func (c *Context) openStore() (*store.Store, error) {
	return store.New(c.Provider)
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %q", s)
	}
	return id, nil
}

func parseCategory(s string) (models.ShoppingCategory, error) {
	cat := models.ShoppingCategory(strings.ToLower(strings.TrimSpace(s)))
	if !cat.Valid() {
		names := make([]string, 0, len(models.Categories))
		for _, c := range models.Categories {
			names = append(names, string(c))
		}
		return "", fmt.Errorf("invalid category %q (use one of: %s)", s, strings.Join(names, "|"))
	}
	return cat, nil
}

func parseHealthType(s string) (models.HealthType, error) {
	t := models.HealthType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", fmt.Errorf("invalid health event type %q (use vaccination|visit|therapy|checkup)", s)
	}
	return t, nil
}
