// Package minigame implements the avatar reflex game as a pure state machine.
// The presentation layer drives it with explicit clock values and renders the
// target wherever the engine puts it; all scoring, combo, and power-up rules
// live here so they can be tested deterministically with a seeded source.
package minigame

import (
	"math/rand"
	"time"

	"petboard/internal/constants"
)

type PowerUp string

const (
	PowerUpNone   PowerUp = ""
	PowerUpSlow   PowerUp = "slow"
	PowerUpDouble PowerUp = "double"
	PowerUpBig    PowerUp = "big"
)

var powerUps = []PowerUp{PowerUpSlow, PowerUpDouble, PowerUpBig}

// Bounds is the playfield the target may occupy, in presentation cells.
type Bounds struct {
	Width  int
	Height int
}

// Position is the target's location within the playfield.
type Position struct {
	X int
	Y int
}

// Engine is the game state machine: Idle until Start, Active until Stop.
type Engine struct {
	rng *rand.Rand

	active       bool
	score        int
	combo        int
	misses       int
	lastCatch    time.Time
	powerUp      PowerUp
	powerUpUntil time.Time
	pattern      Pattern
	moveCount    int
	pos          Position

	// generation invalidates movement ticks scheduled before the last state
	// transition, so a tick from a finished game is a no-op
	generation int
}

// New creates an engine. A nil source gets a time-seeded one; tests inject a
// fixed seed.
func New(rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{rng: rng}
}

func (e *Engine) Active() bool     { return e.active }
func (e *Engine) Score() int       { return e.score }
func (e *Engine) Misses() int      { return e.misses }
func (e *Engine) Position() Position { return e.pos }
func (e *Engine) Generation() int  { return e.generation }

// Combo returns the current streak length.
func (e *Engine) Combo() int { return e.combo }

// ComboActive reports whether the streak is long enough to multiply points.
func (e *Engine) ComboActive() bool {
	return e.combo >= constants.MinigameComboThreshold
}

// ActivePowerUp returns the power-up in effect at now, expiring it lazily.
func (e *Engine) ActivePowerUp(now time.Time) PowerUp {
	if e.powerUp != PowerUpNone && now.After(e.powerUpUntil) {
		e.powerUp = PowerUpNone
	}
	return e.powerUp
}

// Hits reports whether a click at p lands on the target. Normally only the
// target's own cell counts; under the big power-up the target is enlarged and
// every adjacent cell counts too.
func (e *Engine) Hits(p Position, now time.Time) bool {
	if p == e.pos {
		return true
	}
	if e.ActivePowerUp(now) != PowerUpBig {
		return false
	}
	dx := p.X - e.pos.X
	dy := p.Y - e.pos.Y
	return dx >= -1 && dx <= 1 && dy >= -1 && dy <= 1
}

// Start transitions Idle → Active and resets all per-game state.
func (e *Engine) Start(now time.Time) {
	e.active = true
	e.score = 0
	e.combo = 0
	e.misses = 0
	e.lastCatch = now
	e.powerUp = PowerUpNone
	e.pattern = PatternRandom
	e.moveCount = 0
	e.generation++
}

// Stop transitions Active → Idle and returns the final score. The caller owns
// high-score persistence; the generation bump invalidates any outstanding
// movement tick.
func (e *Engine) Stop() int {
	e.active = false
	e.generation++
	return e.score
}

// Interval returns how long the target rests before its next move. It shrinks
// as the score grows; the slow power-up stretches it back out.
func (e *Engine) Interval(now time.Time) time.Duration {
	interval := constants.MinigameBaseInterval - time.Duration(e.score)*constants.MinigameSpeedDecrement
	if interval < constants.MinigameMinInterval {
		interval = constants.MinigameMinInterval
	}
	if e.ActivePowerUp(now) == PowerUpSlow {
		interval = time.Duration(float64(interval) * constants.MinigameSlowFactor)
	}
	return interval
}

// Catch registers a hit on the target and returns the points awarded: one
// point normally, the streak length once the combo threshold is reached,
// doubled under the double power-up. A catch may also spawn a power-up
// (at most one active at a time) and always resets the miss counter.
func (e *Engine) Catch(now time.Time) int {
	if !e.active {
		return 0
	}

	if now.Sub(e.lastCatch) < constants.MinigameComboWindow {
		e.combo++
	} else {
		e.combo = 1
	}
	e.lastCatch = now

	points := 1
	if e.combo >= constants.MinigameComboThreshold {
		points = e.combo
	}
	if e.ActivePowerUp(now) == PowerUpDouble {
		points *= 2
	}
	e.score += points

	if e.powerUp == PowerUpNone && e.rng.Float64() < constants.MinigamePowerUpChance {
		e.powerUp = powerUps[e.rng.Intn(len(powerUps))]
		e.powerUpUntil = now.Add(constants.MinigamePowerUpDuration)
	}

	e.misses = 0
	return points
}

// Miss registers a click outside the target. Reaching the miss limit forces
// the game back to Idle; the caller checks the return value and stops the
// movement timer.
func (e *Engine) Miss() (ended bool) {
	if !e.active {
		return false
	}
	e.misses++
	return e.misses >= constants.MinigameMaxMisses
}
