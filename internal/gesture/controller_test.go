package gesture

import "testing"

func boardZones() *ZoneIndex {
	zones := NewZoneIndex()
	zones.Register("food", Rect{X: 0, Y: 0, Width: 10, Height: 10})
	zones.Register("snack", Rect{X: 10, Y: 0, Width: 10, Height: 10})
	return zones
}

func TestController_DragAndDropCommits(t *testing.T) {
	c := NewController(boardZones())

	if !c.Lift(7, Point{X: 1, Y: 1}) {
		t.Fatal("lift on idle controller must succeed")
	}
	if c.Phase() != PhaseLifted {
		t.Fatalf("expected PhaseLifted, got %v", c.Phase())
	}

	c.Move(Point{X: 12, Y: 3})
	if c.Phase() != PhaseDragging {
		t.Fatalf("expected PhaseDragging, got %v", c.Phase())
	}
	if zone, ok := c.Hovered(); !ok || zone != "snack" {
		t.Fatalf("expected snack hovered, got %q (%v)", zone, ok)
	}

	outcome, ok := c.Drop()
	if !ok {
		t.Fatal("expected drop to commit")
	}
	if outcome.ItemID != 7 || outcome.Zone != "snack" {
		t.Errorf("unexpected outcome %+v", outcome)
	}
	if c.Active() {
		t.Error("controller must be idle after drop")
	}
}

func TestController_DropOutsideZonesCancels(t *testing.T) {
	c := NewController(boardZones())

	c.Lift(7, Point{X: 1, Y: 1})
	c.Move(Point{X: 50, Y: 50})
	if _, ok := c.Hovered(); ok {
		t.Fatal("no zone should be hovered outside the board")
	}

	if _, ok := c.Drop(); ok {
		t.Error("drop outside every zone must not commit")
	}
	if c.Active() {
		t.Error("controller must be idle after a cancelled drop")
	}
}

func TestController_DropWithoutMoveCancels(t *testing.T) {
	c := NewController(boardZones())

	// Lift over a zone but never move: a click, not a drag.
	c.Lift(7, Point{X: 1, Y: 1})
	if _, ok := c.Drop(); ok {
		t.Error("a lift with no movement must not commit")
	}
}

func TestController_SecondLiftIgnored(t *testing.T) {
	c := NewController(boardZones())

	c.Lift(7, Point{X: 1, Y: 1})
	if c.Lift(8, Point{X: 2, Y: 2}) {
		t.Fatal("lift during an active gesture must be refused")
	}
	if id, _ := c.ItemID(); id != 7 {
		t.Errorf("active gesture must keep the first item, got %d", id)
	}
}

func TestController_KeyboardHoverAndDrop(t *testing.T) {
	c := NewController(boardZones())

	c.Lift(3, Point{X: 0, Y: 0})
	c.HoverZone("snack")
	if c.Phase() != PhaseDragging {
		t.Fatalf("hovering by id must enter dragging, got %v", c.Phase())
	}

	c.Unhover()
	if _, ok := c.Hovered(); ok {
		t.Fatal("Unhover must clear the hovered zone")
	}

	c.HoverZone("food")
	outcome, ok := c.Drop()
	if !ok || outcome.Zone != "food" {
		t.Errorf("expected commit on food, got %+v (%v)", outcome, ok)
	}
}

func TestController_CancelClearsState(t *testing.T) {
	c := NewController(boardZones())

	c.Lift(3, Point{X: 0, Y: 0})
	c.Move(Point{X: 5, Y: 5})
	c.Cancel()

	if c.Active() {
		t.Error("controller must be idle after cancel")
	}
	if _, ok := c.Drop(); ok {
		t.Error("drop after cancel must be a no-op")
	}
}

func TestZoneIndex_TopmostWinsAndReplaces(t *testing.T) {
	zones := NewZoneIndex()
	zones.Register("below", Rect{X: 0, Y: 0, Width: 10, Height: 10})
	zones.Register("above", Rect{X: 5, Y: 5, Width: 10, Height: 10})

	if id, _ := zones.ZoneAt(Point{X: 7, Y: 7}); id != "above" {
		t.Errorf("last-registered zone must win on overlap, got %q", id)
	}
	if id, _ := zones.ZoneAt(Point{X: 1, Y: 1}); id != "below" {
		t.Errorf("expected below, got %q", id)
	}

	// Re-registering an id replaces its bounds in place.
	zones.Register("below", Rect{X: 100, Y: 100, Width: 5, Height: 5})
	if _, ok := zones.ZoneAt(Point{X: 1, Y: 1}); ok {
		t.Error("old bounds must be gone after re-registration")
	}
	if id, _ := zones.ZoneAt(Point{X: 102, Y: 102}); id != "below" {
		t.Errorf("expected relocated zone to hit, got %q", id)
	}

	zones.Reset()
	if _, ok := zones.ZoneAt(Point{X: 7, Y: 7}); ok {
		t.Error("reset must clear all zones")
	}
}

func TestRect_ContainsBounds(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 2}

	cases := []struct {
		p    Point
		want bool
	}{
		{Point{2, 3}, true},
		{Point{5, 4}, true},
		{Point{6, 3}, false}, // right edge is exclusive
		{Point{2, 5}, false}, // bottom edge is exclusive
		{Point{1, 3}, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.p); got != tc.want {
			t.Errorf("Contains(%+v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}
