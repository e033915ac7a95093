package constants

import "time"

const (
	AppName           = "petboard"
	DefaultConfigPath = "~/.config/petboard/petboard.db"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Storage keys. The board blob and the minigame high score are persisted
	// under independent keys so a failed board write never touches the score.
	StateKey     = "petboard_data"
	HighScoreKey = "petboard_minigame_highscore"

	// Default profile values
	DefaultPetName = "Fido"
	DefaultAvatar  = "🐶"
	DefaultTheme   = "default"

	// Untitled diary entries get this placeholder title
	UntitledDiaryTitle = "Ricordo senza titolo"

	// Transient status messages auto-dismiss after this long
	StatusMessageTTL = 2 * time.Second

	// ReminderSweepInterval is how often the reminder sweep runs while the
	// app stays open
	ReminderSweepInterval = time.Hour

	// Notify constants
	NotifierLockfileName   = "petboard-notifier.lock"
	NotificationDurationMs = 5000
	TrayAppIdentifier      = "com.petboard.tray"
)
