package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"petboard/internal/backup"
	"petboard/internal/logger"
	"petboard/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *Context) error {
	st, err := ctx.openStore()
	if err != nil {
		return err
	}

	// Automatic backup on startup, after a successful load.
	if _, err := backup.NewManager(ctx.Provider.Path()).Create(); err != nil {
		logger.Warn("automatic backup failed", "err", err)
	}

	p := tea.NewProgram(tui.NewModel(st, ctx.Provider),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Alas, there's been an error: %v", err)
		os.Exit(1)
	}
	return nil
}
