package store

import (
	"fmt"

	"petboard/internal/logger"
	"petboard/internal/models"
	"petboard/internal/utils"
)

// ReclassifyResult reports what a reclassification actually did.
type ReclassifyResult int

const (
	// ReclassifyNotFound means the item no longer exists. The drag target may
	// have been deleted by another action mid-gesture; this is absorbed
	// silently.
	ReclassifyNotFound ReclassifyResult = iota
	// ReclassifyUnchanged means the destination matches the item's current
	// category. Nothing is mutated, persisted, or announced.
	ReclassifyUnchanged
	// ReclassifyMoved means the item changed bucket and the change was
	// persisted and announced.
	ReclassifyMoved
)

// Reclassify moves the shopping item with the given id into newCategory.
// The category update and the persistence call are one unit: if the save
// fails the in-memory move still stands, and the error is returned so the
// user learns the change may not survive a reload.
func (s *Store) Reclassify(id int64, newCategory models.ShoppingCategory) (ReclassifyResult, error) {
	if !newCategory.Valid() {
		return ReclassifyNotFound, fmt.Errorf("unknown category %q", newCategory)
	}

	var item *models.ShoppingItem
	for i := range s.state.ShoppingItems {
		if s.state.ShoppingItems[i].ID == id {
			item = &s.state.ShoppingItems[i]
			break
		}
	}
	if item == nil {
		logger.Debug("Reclassify target already gone", "id", id)
		return ReclassifyNotFound, nil
	}

	if item.Category == newCategory {
		return ReclassifyUnchanged, nil
	}

	item.Category = newCategory
	err := s.persist()

	if s.notify != nil {
		s.notify(fmt.Sprintf("%q spostato in %s %s", utils.Sanitize(item.Item), newCategory.Label(), newCategory.Icon()))
	}
	s.refresh()
	return ReclassifyMoved, err
}
