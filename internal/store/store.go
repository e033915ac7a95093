package store

import (
	"sort"
	"time"

	"petboard/internal/constants"
	"petboard/internal/logger"
	"petboard/internal/models"
	"petboard/internal/storage"
	"petboard/internal/utils"
)

// Store owns the live application state and is the only writer to the three
// record collections. Every mutation validates, assigns an id when absent,
// applies the change, persists the whole state, and fires the refresh hook.
//
// Persistence failures do not roll the mutation back: the in-memory state
// stays authoritative for the session and the error is returned so the caller
// can warn the user that durability is at risk.
type Store struct {
	state    models.AppState
	provider storage.Provider
	onChange func()
	notify   func(message string)
}

// New loads the persisted state (defaults on a missing or corrupt blob) and
// wraps it in a Store.
func New(provider storage.Provider) (*Store, error) {
	state, err := provider.Load()
	if err != nil {
		return nil, err
	}
	return &Store{
		state:    state,
		provider: provider,
	}, nil
}

// OnChange registers the hook invoked after every applied mutation so
// dependent views can re-derive themselves.
func (s *Store) OnChange(fn func()) {
	s.onChange = fn
}

// OnNotify registers the hook for transient user-facing notifications.
func (s *Store) OnNotify(fn func(message string)) {
	s.notify = fn
}

// State returns a snapshot of the current application state. The collections
// share backing arrays with the live state; callers must treat them as
// read-only.
func (s *Store) State() models.AppState {
	return s.state
}

func (s *Store) persist() error {
	return s.provider.Save(s.state)
}

func (s *Store) refresh() {
	if s.onChange != nil {
		s.onChange()
	}
}

// AddDiary validates and prepends a diary entry, keeping the collection
// most-recent-first by insertion.
func (s *Store) AddDiary(entry models.DiaryEntry) (models.DiaryEntry, error) {
	if entry.Title == "" {
		entry.Title = constants.UntitledDiaryTitle
	}
	if err := entry.Validate(); err != nil {
		return models.DiaryEntry{}, err
	}
	if entry.ID == 0 {
		entry.ID = utils.NewID()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	s.state.DiaryEntries = append([]models.DiaryEntry{entry}, s.state.DiaryEntries...)
	err := s.persist()
	s.refresh()
	return entry, err
}

// RemoveDiary deletes the entry with the given id. An absent id is treated as
// already resolved and is a silent no-op.
func (s *Store) RemoveDiary(id int64) error {
	idx := -1
	for i, e := range s.state.DiaryEntries {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Diary entry already gone", "id", id)
		return nil
	}

	s.state.DiaryEntries = append(s.state.DiaryEntries[:idx], s.state.DiaryEntries[idx+1:]...)
	err := s.persist()
	s.refresh()
	return err
}

// AddHealth validates and inserts a health event. The collection is re-sorted
// ascending by date after every insertion.
func (s *Store) AddHealth(event models.HealthEvent) (models.HealthEvent, error) {
	if event.Title == "" {
		event.Title = event.Type.Label()
	}
	if err := event.Validate(); err != nil {
		return models.HealthEvent{}, err
	}
	if event.ID == 0 {
		event.ID = utils.NewID()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	s.state.HealthEvents = append(s.state.HealthEvents, event)
	// Dates are YYYY-MM-DD so lexicographic order is chronological order
	sort.SliceStable(s.state.HealthEvents, func(i, j int) bool {
		return s.state.HealthEvents[i].Date < s.state.HealthEvents[j].Date
	})

	err := s.persist()
	s.refresh()
	return event, err
}

// RemoveHealth deletes the event with the given id; absent ids are a silent
// no-op.
func (s *Store) RemoveHealth(id int64) error {
	idx := -1
	for i, e := range s.state.HealthEvents {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Health event already gone", "id", id)
		return nil
	}

	s.state.HealthEvents = append(s.state.HealthEvents[:idx], s.state.HealthEvents[idx+1:]...)
	err := s.persist()
	s.refresh()
	return err
}

// AddShopping validates and appends a shopping item.
func (s *Store) AddShopping(item models.ShoppingItem) (models.ShoppingItem, error) {
	if item.Quantity == "" {
		item.Quantity = "1"
	}
	if err := item.Validate(); err != nil {
		return models.ShoppingItem{}, err
	}
	if item.ID == 0 {
		item.ID = utils.NewID()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}

	s.state.ShoppingItems = append(s.state.ShoppingItems, item)
	err := s.persist()
	s.refresh()
	return item, err
}

// RemoveShopping deletes the item with the given id; absent ids are a silent
// no-op.
func (s *Store) RemoveShopping(id int64) error {
	idx := -1
	for i, it := range s.state.ShoppingItems {
		if it.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		logger.Debug("Shopping item already gone", "id", id)
		return nil
	}

	s.state.ShoppingItems = append(s.state.ShoppingItems[:idx], s.state.ShoppingItems[idx+1:]...)
	err := s.persist()
	s.refresh()
	return err
}

// ToggleShoppingCompleted flips the completed flag of the item with the given
// id; absent ids are a silent no-op.
func (s *Store) ToggleShoppingCompleted(id int64) error {
	for i := range s.state.ShoppingItems {
		if s.state.ShoppingItems[i].ID == id {
			s.state.ShoppingItems[i].Completed = !s.state.ShoppingItems[i].Completed
			err := s.persist()
			s.refresh()
			return err
		}
	}
	logger.Debug("Shopping item already gone", "id", id)
	return nil
}

// SetPetName updates the pet's name. Empty names are rejected.
func (s *Store) SetPetName(name string) error {
	if name == "" {
		return &models.ValidationError{Field: "name"}
	}
	s.state.PetName = name
	err := s.persist()
	s.refresh()
	return err
}

// SetAvatar updates the avatar glyph.
func (s *Store) SetAvatar(avatar string) error {
	if avatar == "" {
		return &models.ValidationError{Field: "avatar"}
	}
	s.state.PetAvatar = avatar
	err := s.persist()
	s.refresh()
	return err
}

// SetTheme updates the theme identifier.
func (s *Store) SetTheme(theme string) error {
	if theme == "" {
		return &models.ValidationError{Field: "theme"}
	}
	s.state.Theme = theme
	err := s.persist()
	s.refresh()
	return err
}

// ShiftMonth moves the calendar cursor by delta months, wrapping across year
// boundaries. The cursor is session convenience, not durable state, so it is
// not persisted on its own.
func (s *Store) ShiftMonth(delta int) {
	month := s.state.CurrentMonth + delta
	year := s.state.CurrentYear
	for month > 12 {
		month -= 12
		year++
	}
	for month < 1 {
		month += 12
		year--
	}
	s.state.CurrentMonth = month
	s.state.CurrentYear = year
	s.refresh()
}
