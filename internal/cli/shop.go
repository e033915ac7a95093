package cli

import (
	"fmt"

	"petboard/internal/models"
	"petboard/internal/store"
	"petboard/internal/utils"
)

type ShopAddCmd struct {
	Item     string `arg:"" help:"Item name."`
	Category string `short:"c" help:"Board column (food|snack|accessory|medicine)." default:"food"`
	Quantity string `short:"q" help:"Quantity." default:"1"`
	Date     string `short:"d" help:"Optional purchase date (YYYY-MM-DD)."`
	Notes    string `short:"n" help:"Free-form notes."`
}

func (c *ShopAddCmd) Run(ctx *Context) error {
	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	item, err := st.AddShopping(models.ShoppingItem{
		Category: category,
		Item:     c.Item,
		Quantity: c.Quantity,
		Date:     c.Date,
		Notes:    c.Notes,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added %s to %s %s (ID: %d)\n", utils.Sanitize(item.Item), category.Label(), category.Icon(), item.ID)
	return nil
}

type ShopListCmd struct {
	Category string `short:"c" help:"Only show one column."`
	All      bool   `short:"a" help:"Include completed items."`
}

func (c *ShopListCmd) Run(ctx *Context) error {
	var only models.ShoppingCategory
	if c.Category != "" {
		cat, err := parseCategory(c.Category)
		if err != nil {
			return err
		}
		only = cat
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	items := st.State().ShoppingItems
	shown := 0
	for _, category := range models.Categories {
		if only != "" && category != only {
			continue
		}
		header := false
		for _, item := range items {
			if item.Category != category {
				continue
			}
			if item.Completed && !c.All {
				continue
			}
			if !header {
				fmt.Printf("%s %s\n", category.Icon(), category.Label())
				header = true
			}
			mark := " "
			if item.Completed {
				mark = "x"
			}
			fmt.Printf("  [%s] %d  %s (x%s)  %s\n", mark, item.ID, utils.Sanitize(item.Item), utils.Sanitize(item.Quantity), item.Date)
			shown++
		}
	}

	if shown == 0 {
		fmt.Println("Shopping board is empty.")
	}
	return nil
}

type ShopDoneCmd struct {
	ID string `arg:"" help:"ID of the item to toggle."`
}

func (c *ShopDoneCmd) Run(ctx *Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	if err := st.ToggleShoppingCompleted(id); err != nil {
		return err
	}
	fmt.Printf("Toggled item %d\n", id)
	return nil
}

type ShopMoveCmd struct {
	ID       string `arg:"" help:"ID of the item to move."`
	Category string `arg:"" help:"Destination column (food|snack|accessory|medicine)."`
}

func (c *ShopMoveCmd) Run(ctx *Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}
	category, err := parseCategory(c.Category)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	result, err := st.Reclassify(id, category)
	if err != nil {
		return err
	}

	switch result {
	case store.ReclassifyMoved:
		fmt.Printf("Moved item %d to %s %s\n", id, category.Label(), category.Icon())
	case store.ReclassifyUnchanged:
		fmt.Printf("Item %d is already in %s\n", id, category.Label())
	case store.ReclassifyNotFound:
		fmt.Printf("No item with ID %d\n", id)
	}
	return nil
}

type ShopDeleteCmd struct {
	ID string `arg:"" help:"ID of the item to delete."`
}

func (c *ShopDeleteCmd) Run(ctx *Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	if err := st.RemoveShopping(id); err != nil {
		return err
	}
	fmt.Printf("Deleted item %d\n", id)
	return nil
}
