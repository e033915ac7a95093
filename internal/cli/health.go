package cli

import (
	"fmt"
	"time"

	"petboard/internal/models"
	"petboard/internal/utils"
)

type HealthAddCmd struct {
	Type     string `arg:"" help:"Event type (vaccination|visit|therapy|checkup)."`
	Date     string `arg:"" help:"Event date (YYYY-MM-DD)."`
	Title    string `short:"t" help:"Event title, defaults to the type label."`
	Time     string `short:"T" help:"Event time (HH:MM)."`
	Notes    string `short:"n" help:"Free-form notes."`
	Reminder bool   `short:"r" help:"Fire a reminder the day before." default:"true" negatable:""`
}

func (c *HealthAddCmd) Run(ctx *Context) error {
	eventType, err := parseHealthType(c.Type)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	event, err := st.AddHealth(models.HealthEvent{
		Type:     eventType,
		Date:     c.Date,
		Time:     c.Time,
		Title:    c.Title,
		Notes:    c.Notes,
		Reminder: c.Reminder,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Added health event: %s on %s (ID: %d)\n", utils.Sanitize(event.Title), event.Date, event.ID)
	return nil
}

type HealthListCmd struct {
	Upcoming bool `short:"u" help:"Only show events from today onward."`
}

func (c *HealthListCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	today := utils.Today(time.Now())
	shown := 0
	for _, e := range st.State().HealthEvents {
		if c.Upcoming && e.Date < today {
			continue
		}
		shown++
		line := fmt.Sprintf("%d  %s", e.ID, e.Date)
		if e.Time != "" {
			line += " " + e.Time
		}
		line += fmt.Sprintf("  %-20s %s", e.Type.Label(), utils.Sanitize(e.Title))
		if e.Reminder {
			line += "  [promemoria]"
		}
		fmt.Println(line)
		if e.Notes != "" {
			fmt.Printf("    %s\n", utils.Sanitize(e.Notes))
		}
	}

	if shown == 0 {
		fmt.Println("No health events.")
	}
	return nil
}

type HealthDeleteCmd struct {
	ID string `arg:"" help:"ID of the event to delete."`
}

func (c *HealthDeleteCmd) Run(ctx *Context) error {
	id, err := parseID(c.ID)
	if err != nil {
		return err
	}

	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	if err := st.RemoveHealth(id); err != nil {
		return err
	}
	fmt.Printf("Deleted health event %d\n", id)
	return nil
}
