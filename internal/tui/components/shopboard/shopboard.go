// Package shopboard renders the four-column shopping board and translates
// terminal input into the drag-and-drop vocabulary. Mouse drags and keyboard
// drag mode feed the same gesture controller, so a drop commits the same way
// regardless of the device that produced it.
package shopboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"petboard/internal/gesture"
	"petboard/internal/models"
	"petboard/internal/utils"
)

// AddItemMsg asks the parent to open the add-item form.
type AddItemMsg struct{}

// DeleteItemMsg asks the parent to confirm deletion of an item.
type DeleteItemMsg struct {
	ID int64
}

// ToggleItemMsg asks the parent to flip an item's completed flag.
type ToggleItemMsg struct {
	ID int64
}

// MoveItemMsg reports a committed drop: the item and its destination column.
type MoveItemMsg struct {
	ID       int64
	Category models.ShoppingCategory
}

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	draggingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	hoverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Underline(true)
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

type itemCell struct {
	id     int64
	bounds gesture.Rect
}

// Model is the board component. It owns the zone index and the gesture
// controller; the parent forwards raw mouse events and the board renders the
// drag state the controller reports.
type Model struct {
	items      []models.ShoppingItem
	zones      *gesture.ZoneIndex
	controller *gesture.Controller
	cells      []itemCell

	col     int
	row     int
	originX int
	originY int
	width   int
	height  int
}

func New(width, height int) Model {
	zones := gesture.NewZoneIndex()
	return Model{
		zones:      zones,
		controller: gesture.NewController(zones),
		width:      width,
		height:     height,
	}
}

// SetOrigin tells the board where it sits in terminal coordinates so mouse
// hit-testing lines up with the rendered cells.
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
	m.layout()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.layout()
}

// SetItems replaces the board contents and recomputes the hit regions.
func (m *Model) SetItems(items []models.ShoppingItem) {
	m.items = items
	m.layout()
	m.clampCursor()
}

// layout re-registers the drop zones and item cells from the current items
// and geometry. Zones cover whole columns; each item occupies one row.
func (m *Model) layout() {
	m.zones.Reset()
	m.cells = m.cells[:0]

	colW := m.columnWidth()
	for i, category := range models.Categories {
		x := m.originX + i*colW
		m.zones.Register(gesture.ZoneID(category), gesture.Rect{
			X: x, Y: m.originY, Width: colW, Height: m.height,
		})

		row := m.originY + 1
		for _, item := range m.items {
			if item.Category != category {
				continue
			}
			m.cells = append(m.cells, itemCell{
				id:     item.ID,
				bounds: gesture.Rect{X: x, Y: row, Width: colW, Height: 1},
			})
			row++
		}
	}
}

func (m Model) columnWidth() int {
	w := m.width / len(models.Categories)
	if w < 12 {
		w = 12
	}
	return w
}

func (m Model) itemAt(p gesture.Point) (int64, bool) {
	for _, cell := range m.cells {
		if cell.bounds.Contains(p) {
			return cell.id, true
		}
	}
	return 0, false
}

func (m Model) columnItems(category models.ShoppingCategory) []models.ShoppingItem {
	var items []models.ShoppingItem
	for _, item := range m.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return items
}

// Selected returns the item under the keyboard cursor.
func (m Model) Selected() (models.ShoppingItem, bool) {
	items := m.columnItems(models.Categories[m.col])
	if m.row < len(items) {
		return items[m.row], true
	}
	return models.ShoppingItem{}, false
}

// Dragging reports whether a gesture is in flight.
func (m Model) Dragging() bool {
	return m.controller.Active()
}

func (m *Model) clampCursor() {
	items := m.columnItems(models.Categories[m.col])
	if m.row >= len(items) {
		m.row = len(items) - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

// HandleMouse translates raw mouse events into gesture events. Press over an
// item lifts it, motion drags, release drops. A release outside every zone
// cancels via the controller's own drop rules.
func (m Model) HandleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	p := gesture.Point{X: msg.X, Y: msg.Y}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if id, ok := m.itemAt(p); ok {
			m.controller.Lift(id, p)
		}
	case tea.MouseActionMotion:
		m.controller.Move(p)
	case tea.MouseActionRelease:
		return m.drop()
	}
	return m, nil
}

func (m Model) drop() (Model, tea.Cmd) {
	outcome, ok := m.controller.Drop()
	if !ok {
		return m, nil
	}
	category := models.ShoppingCategory(outcome.Zone)
	id := outcome.ItemID
	return m, func() tea.Msg { return MoveItemMsg{ID: id, Category: category} }
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.controller.Active() {
		return m.updateDragging(keyMsg)
	}

	switch keyMsg.String() {
	case "a":
		return m, func() tea.Msg { return AddItemMsg{} }
	case "d":
		if item, ok := m.Selected(); ok {
			id := item.ID
			return m, func() tea.Msg { return DeleteItemMsg{ID: id} }
		}
	case "x":
		if item, ok := m.Selected(); ok {
			id := item.ID
			return m, func() tea.Msg { return ToggleItemMsg{ID: id} }
		}
	case " ":
		if item, ok := m.Selected(); ok {
			cell, found := m.cellFor(item.ID)
			at := gesture.Point{X: cell.bounds.X, Y: cell.bounds.Y}
			if !found {
				at = gesture.Point{}
			}
			m.controller.Lift(item.ID, at)
			// Start keyboard drag hovering the item's own column.
			m.controller.HoverZone(gesture.ZoneID(item.Category))
		}
	case "left", "h":
		if m.col > 0 {
			m.col--
			m.clampCursor()
		}
	case "right", "l":
		if m.col < len(models.Categories)-1 {
			m.col++
			m.clampCursor()
		}
	case "up", "k":
		if m.row > 0 {
			m.row--
		}
	case "down", "j":
		items := m.columnItems(models.Categories[m.col])
		if m.row < len(items)-1 {
			m.row++
		}
	}
	return m, nil
}

// updateDragging is keyboard drag mode: left/right retarget the hovered
// column, space or enter drops, esc cancels.
func (m Model) updateDragging(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.controller.HoverZone(gesture.ZoneID(models.Categories[m.hoverShift(-1)]))
	case "right", "l":
		m.controller.HoverZone(gesture.ZoneID(models.Categories[m.hoverShift(1)]))
	case " ", "enter":
		return m.drop()
	case "esc":
		m.controller.Cancel()
	}
	return m, nil
}

// hoverShift computes the column index delta steps away from the currently
// hovered column, clamped to the board.
func (m Model) hoverShift(delta int) int {
	current := 0
	if id, ok := m.controller.Hovered(); ok {
		for i, category := range models.Categories {
			if gesture.ZoneID(category) == id {
				current = i
				break
			}
		}
	}
	next := current + delta
	if next < 0 {
		next = 0
	}
	if next > len(models.Categories)-1 {
		next = len(models.Categories) - 1
	}
	return next
}

func (m Model) View() string {
	colW := m.columnWidth()
	draggedID, dragging := m.controller.ItemID()
	hoveredZone, hasHover := m.controller.Hovered()

	columns := make([]string, 0, len(models.Categories))
	for i, category := range models.Categories {
		var b strings.Builder

		header := fmt.Sprintf("%s %s", category.Icon(), category.Label())
		if hasHover && gesture.ZoneID(category) == hoveredZone {
			header = hoverStyle.Render(header + " ◂")
		} else {
			header = headerStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")

		items := m.columnItems(category)
		if len(items) == 0 {
			b.WriteString(emptyStyle.Render("(vuoto)"))
			b.WriteString("\n")
		}
		for j, item := range items {
			line := fmt.Sprintf("%s (x%s)", utils.Sanitize(item.Item), utils.Sanitize(item.Quantity))
			switch {
			case dragging && item.ID == draggedID:
				line = draggingStyle.Render("⇡ " + line)
			case item.Completed:
				line = doneStyle.Render("✓ " + line)
			case i == m.col && j == m.row && !dragging:
				line = selectedStyle.Render("> " + line)
			default:
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteString("\n")
		}

		columns = append(columns, lipgloss.NewStyle().Width(colW).Render(b.String()))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, columns...)

	hint := "space: grab · x: done · a: add · d: delete"
	if dragging {
		hint = "←/→: choose column · space/enter: drop · esc: cancel"
	}
	return board + "\n" + emptyStyle.Render(hint)
}

func (m Model) cellFor(id int64) (itemCell, bool) {
	for _, cell := range m.cells {
		if cell.id == id {
			return cell, true
		}
	}
	return itemCell{}, false
}
