package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"petboard/internal/cli"
	"petboard/internal/constants"
	"petboard/internal/errors"
	"petboard/internal/logger"
	"petboard/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/petboard/petboard.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init  cli.InitCmd `cmd:"" help:"Initialize petboard storage."`
	Tui   cli.TuiCmd  `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Diary struct {
		Add    cli.DiaryAddCmd    `cmd:"" help:"Add a diary entry."`
		List   cli.DiaryListCmd   `cmd:"" help:"List diary entries."`
		Delete cli.DiaryDeleteCmd `cmd:"" help:"Delete a diary entry."`
	} `cmd:"" help:"Manage the pet diary."`
	Health struct {
		Add    cli.HealthAddCmd    `cmd:"" help:"Add a health event."`
		List   cli.HealthListCmd   `cmd:"" help:"List health events."`
		Delete cli.HealthDeleteCmd `cmd:"" help:"Delete a health event."`
	} `cmd:"" help:"Manage the health calendar."`
	Shop struct {
		Add    cli.ShopAddCmd    `cmd:"" help:"Add a shopping item."`
		List   cli.ShopListCmd   `cmd:"" help:"Show the shopping board."`
		Done   cli.ShopDoneCmd   `cmd:"" help:"Toggle an item's completed state."`
		Move   cli.ShopMoveCmd   `cmd:"" help:"Move an item to another column."`
		Delete cli.ShopDeleteCmd `cmd:"" help:"Delete a shopping item."`
	} `cmd:"" help:"Manage the shopping board."`
	Timeline cli.TimelineCmd `cmd:"" help:"Show the merged activity timeline."`
	Stats    cli.StatsCmd    `cmd:"" help:"Show board statistics."`
	Profile  struct {
		Show   cli.ProfileShowCmd   `cmd:"" help:"Show the pet profile." default:"1"`
		Name   cli.ProfileNameCmd   `cmd:"" help:"Set the pet name."`
		Avatar cli.ProfileAvatarCmd `cmd:"" help:"Set the avatar emoji."`
		Theme  cli.ProfileThemeCmd  `cmd:"" help:"Set the color theme."`
	} `cmd:"" help:"Manage the pet profile."`
	Remind cli.RemindCmd `cmd:"" help:"Run a reminder sweep."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run diagnostics."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("petboard"),
		kong.Description("Pet care dashboard: diary, health calendar, shopping board"),
		kong.UsageOnError(),
		kong.Vars{"version": constants.Version},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// Storage backend follows the file extension.
	var provider storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		provider = storage.NewJSONStore(CLI.Config)
	} else {
		provider = storage.NewSQLiteStore(CLI.Config)
	}

	appCtx := &cli.Context{Provider: provider}

	err := ctx.Run(appCtx)
	if cerr := provider.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}
}
