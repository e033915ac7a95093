package gesture

// Point is a pointer position in the presentation's coordinate space.
type Point struct {
	X int
	Y int
}

// Rect is an axis-aligned bounding region.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// ZoneID names a registered drop zone.
type ZoneID string

// Zone binds a drop zone to its bounding region.
type Zone struct {
	ID     ZoneID
	Bounds Rect
}

// ZoneIndex is the registered set of drop-zone bounding regions. Hit-testing
// is a pure function over this set, independent of any presentation tree; the
// view re-registers zones whenever the layout changes.
type ZoneIndex struct {
	zones []Zone
}

func NewZoneIndex() *ZoneIndex {
	return &ZoneIndex{}
}

// Reset clears all registered zones.
func (z *ZoneIndex) Reset() {
	z.zones = z.zones[:0]
}

// Register adds a zone. Registering the same id again replaces its bounds.
func (z *ZoneIndex) Register(id ZoneID, bounds Rect) {
	for i := range z.zones {
		if z.zones[i].ID == id {
			z.zones[i].Bounds = bounds
			return
		}
	}
	z.zones = append(z.zones, Zone{ID: id, Bounds: bounds})
}

// ZoneAt returns the zone under the point. When regions overlap the most
// recently registered zone wins, mirroring topmost-element hit-testing.
func (z *ZoneIndex) ZoneAt(p Point) (ZoneID, bool) {
	for i := len(z.zones) - 1; i >= 0; i-- {
		if z.zones[i].Bounds.Contains(p) {
			return z.zones[i].ID, true
		}
	}
	return "", false
}
