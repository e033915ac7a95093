package cli

import (
	"fmt"

	"petboard/internal/timeline"
	"petboard/internal/utils"
)

type TimelineCmd struct {
	Limit int `short:"n" help:"Maximum number of entries to show." default:"0"`
}

func (c *TimelineCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	entries := timeline.Build(st.State())
	if c.Limit > 0 && len(entries) > c.Limit {
		entries = entries[:c.Limit]
	}

	if len(entries) == 0 {
		fmt.Println("Timeline is empty.")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s %s\n", utils.FormatDate(e.When), e.Icon, e.Title)
		if e.Body != "" {
			fmt.Printf("    %s\n", e.Body)
		}
	}
	return nil
}

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}
	state := st.State()

	pending := 0
	for _, item := range state.ShoppingItems {
		if !item.Completed {
			pending++
		}
	}

	fmt.Printf("%s %s\n\n", utils.Sanitize(state.PetAvatar), utils.Sanitize(state.PetName))
	fmt.Printf("Diary entries:   %d\n", len(state.DiaryEntries))
	fmt.Printf("Health events:   %d\n", len(state.HealthEvents))
	fmt.Printf("Pending items:   %d\n", pending)

	highScore, err := ctx.Provider.HighScore()
	if err != nil {
		return fmt.Errorf("failed to read high score: %w", err)
	}
	fmt.Printf("Reflex record:   %d\n", highScore)
	return nil
}
