package constants

import "time"

// Minigame balancing. The movement interval shrinks as the score grows so the
// target gets harder to pin down.
const (
	MinigameBaseInterval   = 800 * time.Millisecond
	MinigameMinInterval    = 200 * time.Millisecond
	MinigameSpeedDecrement = 40 * time.Millisecond // interval reduction per point

	MinigameComboWindow    = 2 * time.Second
	MinigameComboThreshold = 3

	MinigamePowerUpChance   = 0.15
	MinigamePowerUpDuration = 5 * time.Second

	// The active movement pattern switches every this many moves
	MinigamePatternChangeInterval = 5

	// Five missed clicks end the game
	MinigameMaxMisses = 5

	// Slow power-up stretches the movement interval by this factor
	MinigameSlowFactor = 1.8
)
