package minigame

import (
	"math"

	"petboard/internal/constants"
)

// Pattern selects how the target relocates on each move.
type Pattern string

const (
	PatternRandom Pattern = "random"
	PatternCircle Pattern = "circle"
	PatternZigzag Pattern = "zigzag"
	PatternBounce Pattern = "bounce"
)

var patterns = []Pattern{PatternRandom, PatternCircle, PatternZigzag, PatternBounce}

// Pattern returns the movement pattern currently in effect.
func (e *Engine) Pattern() Pattern {
	return e.pattern
}

// Advance relocates the target inside bounds and returns its new position.
// The pattern is re-rolled every few moves for variety.
func (e *Engine) Advance(bounds Bounds) Position {
	if !e.active {
		return e.pos
	}

	if e.moveCount%constants.MinigamePatternChangeInterval == 0 {
		e.pattern = patterns[e.rng.Intn(len(patterns))]
	}

	maxX := bounds.Width - 1
	maxY := bounds.Height - 1
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}

	var x, y int
	switch e.pattern {
	case PatternCircle:
		angle := float64(e.moveCount) * math.Pi / 4
		radius := float64(min(maxX, maxY)) / 3
		x = maxX/2 + int(math.Cos(angle)*radius)
		y = maxY/2 + int(math.Sin(angle)*radius)

	case PatternZigzag:
		if e.moveCount%2 == 0 {
			x = maxX * 2 / 10
		} else {
			x = maxX * 8 / 10
		}
		if maxY > 0 {
			y = (maxY / 8) * (e.moveCount % 8)
		}

	case PatternBounce:
		step := max(2, maxX/3)
		x = e.pos.X + e.rng.Intn(2*step+1) - step
		y = e.pos.Y + e.rng.Intn(2*step+1) - step

	default: // PatternRandom
		x = e.rng.Intn(maxX + 1)
		y = e.rng.Intn(maxY + 1)
	}

	e.pos = Position{X: clamp(x, 0, maxX), Y: clamp(y, 0, maxY)}
	e.moveCount++
	return e.pos
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
