package cli

import (
	"fmt"
	"time"

	"petboard/internal/models"
	"petboard/internal/utils"
)

type DiaryAddCmd struct {
	Title string `arg:"" optional:"" help:"Entry title."`
	Text  string `short:"t" help:"Entry text."`
	Date  string `short:"d" help:"Entry date (YYYY-MM-DD), defaults to today."`
	Photo string `short:"p" help:"Emoji or short marker attached to the entry."`
}

func (c *DiaryAddCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	date := c.Date
	if date == "" {
		date = utils.Today(time.Now())
	}

	entry, err := st.AddDiary(models.DiaryEntry{
		Date:  date,
		Title: c.Title,
		Text:  c.Text,
		Photo: c.Photo,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added diary entry: %s (ID: %d)\n", utils.Sanitize(entry.Title), entry.ID)
	return nil
}

type DiaryListCmd struct {
	Date string `short:"d" help:"Only show entries for this date (YYYY-MM-DD)."`
}

func (c *DiaryListCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	entries := st.State().DiaryEntries
	shown := 0
	for _, e := range entries {
		if c.Date != "" && e.Date != c.Date {
			continue
		}
		shown++
		fmt.Printf("%d  %s  %s", e.ID, e.Date, utils.Sanitize(e.Title))
		if e.Photo != "" {
			fmt.Printf(" %s", utils.Sanitize(e.Photo))
		}
		fmt.Println()
		if e.Text != "" {
			fmt.Printf("    %s\n", utils.Truncate(utils.Sanitize(e.Text), 120))
		}
	}

	if shown == 0 {
		fmt.Println("No diary entries.")
	}
	return nil
}

type DiaryDeleteCmd struct {
	ID string `arg:"" help:"ID of the entry to delete."`
}

func (c *DiaryDeleteCmd) Run(ctx *Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	if err := st.RemoveDiary(id); err != nil {
		return err
	}
	fmt.Printf("Deleted diary entry %d\n", id)
	return nil
}
