// Package gesture implements the drag-and-drop lifecycle as a small state
// machine over a normalized event vocabulary (lift, move, hover, drop,
// cancel). Input devices translate their raw events into this vocabulary, so
// the lifecycle logic never knows whether a drag came from the mouse or from
// keyboard drag mode.
package gesture

// Phase is the controller's lifecycle state.
type Phase int

const (
	// PhaseIdle: no gesture in flight.
	PhaseIdle Phase = iota
	// PhaseLifted: an item was picked up but has not moved yet.
	PhaseLifted
	// PhaseDragging: the item is moving; a drop zone may be hovered.
	PhaseDragging
)

// Outcome is a committed drop: the dragged item and the zone it landed on.
type Outcome struct {
	ItemID int64
	Zone   ZoneID
}

// Controller owns exactly one active gesture at a time.
type Controller struct {
	zones    *ZoneIndex
	phase    Phase
	itemID   int64
	origin   Point
	pointer  Point
	hovered  ZoneID
	hasHover bool
}

func NewController(zones *ZoneIndex) *Controller {
	return &Controller{zones: zones}
}

func (c *Controller) Phase() Phase {
	return c.phase
}

// Active reports whether a gesture is in flight.
func (c *Controller) Active() bool {
	return c.phase != PhaseIdle
}

// ItemID returns the dragged item, valid only while a gesture is active.
func (c *Controller) ItemID() (int64, bool) {
	return c.itemID, c.phase != PhaseIdle
}

// Pointer returns the current pointer position of the active gesture.
func (c *Controller) Pointer() Point {
	return c.pointer
}

// Hovered returns the currently hovered drop zone, if any.
func (c *Controller) Hovered() (ZoneID, bool) {
	return c.hovered, c.hasHover
}

// Lift starts a gesture over the given item. A lift while another gesture is
// active is disallowed and ignored; the caller learns this from the return
// value.
func (c *Controller) Lift(itemID int64, at Point) bool {
	if c.phase != PhaseIdle {
		return false
	}
	c.phase = PhaseLifted
	c.itemID = itemID
	c.origin = at
	c.pointer = at
	return true
}

// Move advances the gesture to the new pointer position and recomputes the
// hovered zone by hit-testing the registered regions. At most one zone is
// hovered at a time; entering a new zone replaces the previous hover.
func (c *Controller) Move(to Point) {
	if c.phase == PhaseIdle {
		return
	}
	c.phase = PhaseDragging
	c.pointer = to

	if id, ok := c.zones.ZoneAt(to); ok {
		c.setHover(id)
	} else {
		c.clearHover()
	}
}

// HoverZone hovers a zone directly by id, for input devices that address
// zones rather than coordinates (keyboard drag mode).
func (c *Controller) HoverZone(id ZoneID) {
	if c.phase == PhaseIdle {
		return
	}
	c.phase = PhaseDragging
	c.setHover(id)
}

// Unhover clears the hovered zone without ending the gesture.
func (c *Controller) Unhover() {
	if c.phase == PhaseIdle {
		return
	}
	c.clearHover()
}

// Drop ends the gesture. If a zone is hovered the drop commits and the
// outcome is returned; otherwise the gesture is cancelled. Either way all
// gesture state is cleared unconditionally.
func (c *Controller) Drop() (Outcome, bool) {
	if c.phase == PhaseIdle {
		return Outcome{}, false
	}

	committed := c.phase == PhaseDragging && c.hasHover
	outcome := Outcome{ItemID: c.itemID, Zone: c.hovered}
	c.reset()

	if !committed {
		return Outcome{}, false
	}
	return outcome, true
}

// Cancel ends the gesture with no data effect.
func (c *Controller) Cancel() {
	c.reset()
}

func (c *Controller) setHover(id ZoneID) {
	c.hovered = id
	c.hasHover = true
}

func (c *Controller) clearHover() {
	c.hovered = ""
	c.hasHover = false
}

func (c *Controller) reset() {
	c.phase = PhaseIdle
	c.itemID = 0
	c.origin = Point{}
	c.pointer = Point{}
	c.clearHover()
}
