package cli

import (
	"fmt"
	"time"

	"petboard/internal/constants"
	"petboard/internal/logger"
	"petboard/internal/notifier"
	"petboard/internal/reminder"
)

type RemindCmd struct {
	Watch bool `short:"w" help:"Keep running and sweep every hour."`
}

func (c *RemindCmd) Run(ctx *Context) error {
	n := notifier.New()
	notify := func(title, body string) {
		if err := n.Notify(title, body); err != nil {
			// No tray process around; the terminal is the fallback channel.
			logger.Debug("tray notification failed", "err", err)
			fmt.Printf("%s: %s\n", title, body)
		}
	}

	fired, err := c.sweep(ctx, notify)
	if err != nil {
		return err
	}
	fmt.Printf("Reminder sweep fired %d notification(s)\n", fired)

	if !c.Watch {
		return nil
	}

	ticker := time.NewTicker(constants.ReminderSweepInterval)
	defer ticker.Stop()
	for range ticker.C {
		fired, err := c.sweep(ctx, notify)
		if err != nil {
			logger.Error("reminder sweep failed", "err", err)
			continue
		}
		if fired > 0 {
			fmt.Printf("Reminder sweep fired %d notification(s)\n", fired)
		}
	}
	return nil
}

func (c *RemindCmd) sweep(ctx *Context, notify reminder.NotifyFunc) (int, error) {
	st, err := ctx.openStore()
	if err != nil {
		return 0, err
	}
	return reminder.Sweep(st.State(), time.Now(), notify), nil
}
