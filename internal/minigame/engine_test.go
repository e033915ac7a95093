package minigame

import (
	"math/rand"
	"testing"
	"time"

	"petboard/internal/constants"
)

// halfSource always yields 0.5 from Float64, so no power-up ever spawns
// (chance is 0.15) and tests stay deterministic.
type halfSource struct{}

func (halfSource) Int63() int64    { return 1 << 62 }
func (halfSource) Seed(seed int64) {}

// zeroSource always yields 0, so a power-up spawns on every eligible catch
// and the pick lands on the first entry (slow).
type zeroSource struct{}

func (zeroSource) Int63() int64    { return 0 }
func (zeroSource) Seed(seed int64) {}

// bigSource makes Float64 tiny (a power-up always spawns) and Intn(3) yield 2,
// so every eligible catch grants the big power-up.
type bigSource struct{}

func (bigSource) Int63() int64    { return 2 << 32 }
func (bigSource) Seed(seed int64) {}

func newEngine(src rand.Source) *Engine {
	return New(rand.New(src))
}

func TestEngine_StartResetsState(t *testing.T) {
	e := newEngine(halfSource{})
	now := time.Now()

	e.Start(now)
	e.Catch(now)
	e.Miss()
	gen := e.Generation()

	e.Start(now.Add(time.Minute))
	if e.Score() != 0 || e.Misses() != 0 || e.Combo() != 0 {
		t.Errorf("Start must reset score/misses/combo, got %d/%d/%d", e.Score(), e.Misses(), e.Combo())
	}
	if e.Generation() == gen {
		t.Error("Start must bump the generation")
	}
	if !e.Active() {
		t.Error("engine must be active after Start")
	}
}

func TestEngine_FirstCatchAwardsOnePoint(t *testing.T) {
	e := newEngine(halfSource{})
	now := time.Now()
	e.Start(now)

	if points := e.Catch(now.Add(time.Second)); points != 1 {
		t.Errorf("expected 1 point, got %d", points)
	}
}

func TestEngine_ComboAwardsStreakLength(t *testing.T) {
	e := newEngine(halfSource{})
	t0 := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	e.Start(t0)

	p1 := e.Catch(t0.Add(time.Second))
	p2 := e.Catch(t0.Add(2 * time.Second))
	p3 := e.Catch(t0.Add(3 * time.Second))

	if p1 != 1 || p2 != 1 {
		t.Errorf("catches below the threshold award 1 point, got %d, %d", p1, p2)
	}
	if p3 != constants.MinigameComboThreshold {
		t.Errorf("third consecutive catch awards the streak length, got %d", p3)
	}
	if e.Score() != 5 {
		t.Errorf("expected total score 5, got %d", e.Score())
	}
	if !e.ComboActive() {
		t.Error("combo must be active at the threshold")
	}
}

func TestEngine_ComboBreaksOutsideWindow(t *testing.T) {
	e := newEngine(halfSource{})
	t0 := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	e.Start(t0)

	e.Catch(t0.Add(time.Second))
	e.Catch(t0.Add(2 * time.Second))
	// Gap beyond the combo window resets the streak.
	if points := e.Catch(t0.Add(10 * time.Second)); points != 1 {
		t.Errorf("a catch outside the window restarts the streak, got %d", points)
	}
	if e.Combo() != 1 {
		t.Errorf("expected combo 1, got %d", e.Combo())
	}
}

func TestEngine_MissLimitEndsGame(t *testing.T) {
	e := newEngine(halfSource{})
	e.Start(time.Now())

	for i := 0; i < constants.MinigameMaxMisses-1; i++ {
		if e.Miss() {
			t.Fatalf("game ended after %d misses", i+1)
		}
	}
	if !e.Miss() {
		t.Error("reaching the miss limit must end the game")
	}
}

func TestEngine_CatchResetsMisses(t *testing.T) {
	e := newEngine(halfSource{})
	now := time.Now()
	e.Start(now)

	e.Miss()
	e.Miss()
	e.Catch(now.Add(time.Second))
	if e.Misses() != 0 {
		t.Errorf("a catch must clear the miss counter, got %d", e.Misses())
	}
}

func TestEngine_IntervalShrinksToFloor(t *testing.T) {
	e := newEngine(halfSource{})
	t0 := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	e.Start(t0)

	if got := e.Interval(t0); got != constants.MinigameBaseInterval {
		t.Errorf("expected base interval at score 0, got %v", got)
	}

	// Catches spaced beyond the combo window award one point each.
	now := t0
	for i := 0; i < 30; i++ {
		now = now.Add(3 * time.Second)
		e.Catch(now)
	}
	if got := e.Interval(now); got != constants.MinigameMinInterval {
		t.Errorf("interval must bottom out at the floor, got %v", got)
	}
}

func TestEngine_SlowPowerUpStretchesInterval(t *testing.T) {
	e := newEngine(zeroSource{})
	t0 := time.Date(2026, 2, 14, 10, 0, 0, 0, time.UTC)
	e.Start(t0)

	catchTime := t0.Add(time.Second)
	e.Catch(catchTime) // spawns the slow power-up with zeroSource

	if got := e.ActivePowerUp(catchTime); got != PowerUpSlow {
		t.Fatalf("expected slow power-up, got %q", got)
	}

	base := constants.MinigameBaseInterval - constants.MinigameSpeedDecrement
	want := time.Duration(float64(base) * constants.MinigameSlowFactor)
	if got := e.Interval(catchTime); got != want {
		t.Errorf("expected stretched interval %v, got %v", want, got)
	}

	// After its duration the power-up expires and the interval snaps back.
	after := catchTime.Add(constants.MinigamePowerUpDuration + time.Second)
	if got := e.ActivePowerUp(after); got != PowerUpNone {
		t.Errorf("expected expired power-up, got %q", got)
	}
	if got := e.Interval(after); got != base {
		t.Errorf("expected plain interval %v, got %v", base, got)
	}
}

func TestEngine_StopReturnsScoreAndInvalidatesTicks(t *testing.T) {
	e := newEngine(halfSource{})
	now := time.Now()
	e.Start(now)
	e.Catch(now.Add(time.Second))
	gen := e.Generation()

	score := e.Stop()
	if score != 1 {
		t.Errorf("expected final score 1, got %d", score)
	}
	if e.Active() {
		t.Error("engine must be idle after Stop")
	}
	if e.Generation() == gen {
		t.Error("Stop must bump the generation so stale ticks are dropped")
	}
}

func TestEngine_CatchWhileIdleIsNoOp(t *testing.T) {
	e := newEngine(halfSource{})

	if points := e.Catch(time.Now()); points != 0 {
		t.Errorf("idle catch must award nothing, got %d", points)
	}
	if e.Miss() {
		t.Error("idle miss must not end anything")
	}
}

func TestEngine_AdvanceStaysInBounds(t *testing.T) {
	e := New(rand.New(rand.NewSource(42)))
	bounds := Bounds{Width: 12, Height: 5}
	e.Start(time.Now())

	for i := 0; i < 200; i++ {
		pos := e.Advance(bounds)
		if pos.X < 0 || pos.X >= bounds.Width || pos.Y < 0 || pos.Y >= bounds.Height {
			t.Fatalf("move %d left the playfield: %+v", i, pos)
		}
	}
}

func TestEngine_PatternRotates(t *testing.T) {
	e := New(rand.New(rand.NewSource(7)))
	bounds := Bounds{Width: 12, Height: 5}
	e.Start(time.Now())

	seen := map[Pattern]bool{}
	for i := 0; i < 100; i++ {
		e.Advance(bounds)
		seen[e.Pattern()] = true
	}
	if len(seen) < 2 {
		t.Errorf("expected the movement pattern to change over time, saw %v", seen)
	}
}

func TestEngine_HitsRequiresExactCellByDefault(t *testing.T) {
	e := newEngine(halfSource{})
	now := time.Now()
	e.Start(now)

	// A fresh engine leaves the target at the origin.
	if !e.Hits(Position{X: 0, Y: 0}, now) {
		t.Error("the target's own cell must hit")
	}
	if e.Hits(Position{X: 1, Y: 0}, now) {
		t.Error("an adjacent cell must not hit without the big power-up")
	}
}

func TestEngine_BigPowerUpEnlargesHitRegion(t *testing.T) {
	e := newEngine(bigSource{})
	now := time.Now()
	e.Start(now)

	e.Catch(now) // spawns the big power-up with bigSource
	if got := e.ActivePowerUp(now); got != PowerUpBig {
		t.Fatalf("expected big power-up, got %q", got)
	}

	if !e.Hits(Position{X: 1, Y: 1}, now) {
		t.Error("a diagonal neighbor must hit while big is active")
	}
	if !e.Hits(Position{X: 0, Y: 1}, now) {
		t.Error("a direct neighbor must hit while big is active")
	}
	if e.Hits(Position{X: 2, Y: 0}, now) {
		t.Error("a cell two away must not hit even while big is active")
	}

	after := now.Add(constants.MinigamePowerUpDuration + time.Second)
	if e.Hits(Position{X: 1, Y: 1}, after) {
		t.Error("the enlarged region must shrink back when the power-up expires")
	}
	if !e.Hits(Position{X: 0, Y: 0}, after) {
		t.Error("the target's own cell must still hit after expiry")
	}
}
