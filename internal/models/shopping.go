package models

import (
	"time"

	"petboard/internal/constants"
)

type ShoppingCategory string

const (
	CategoryFood      ShoppingCategory = "food"
	CategorySnack     ShoppingCategory = "snack"
	CategoryAccessory ShoppingCategory = "accessory"
	CategoryMedicine  ShoppingCategory = "medicine"
)

// Categories lists the four fixed buckets in board order.
var Categories = []ShoppingCategory{
	CategoryFood,
	CategorySnack,
	CategoryAccessory,
	CategoryMedicine,
}

var categoryLabels = map[ShoppingCategory]string{
	CategoryFood:      "Cibo",
	CategorySnack:     "Snack",
	CategoryAccessory: "Accessori",
	CategoryMedicine:  "Farmaci",
}

var categoryIcons = map[ShoppingCategory]string{
	CategoryFood:      "🍖",
	CategorySnack:     "🦴",
	CategoryAccessory: "🎾",
	CategoryMedicine:  "💊",
}

func (c ShoppingCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

func (c ShoppingCategory) Icon() string {
	return categoryIcons[c]
}

func (c ShoppingCategory) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// ShoppingItem is a purchase reminder living in one of the four category
// buckets. After creation only the reclassifier may change the category.
type ShoppingItem struct {
	ID        int64            `json:"id"`
	Category  ShoppingCategory `json:"category"`
	Item      string           `json:"item"`
	Quantity  string           `json:"quantity"`       // free-form, defaults to "1"
	Date      string           `json:"date,omitempty"` // optional due date, YYYY-MM-DD
	Notes     string           `json:"notes,omitempty"`
	Completed bool             `json:"completed"`
	CreatedAt time.Time        `json:"timestamp"`
}

func (i *ShoppingItem) Validate() error {
	if i.Item == "" {
		return &ValidationError{Field: "item"}
	}
	if !i.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}
	// The due date is optional but must be well-formed when present.
	if i.Date != "" {
		if _, err := time.Parse(constants.DateFormat, i.Date); err != nil {
			return &ValidationError{Field: "date", Reason: "expected YYYY-MM-DD"}
		}
	}
	return nil
}
