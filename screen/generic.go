package screen

import (
	"fmt"

	"git.patyhank.net/falloutBot/guilib/gui"
)

// Generic is a chest shaped grid that only keeps items in memory. Nothing is shown to anyone, so SetItem
// and UpdateItem behave the same, apart from Updates counting refreshes.
type Generic struct {
	Height int         // Height of the grid. The width is always gui.Columns.
	Slots  []*gui.Item // nil for empty slots.

	// Updates counts the slots placed through UpdateItem.
	Updates int
}

func NewGeneric(height int) *Generic {
	return &Generic{
		Height: height,
		Slots:  make([]*gui.Item, height*gui.Columns),
	}
}

/* gui.Grid */

func (g *Generic) Rows() int          { return g.Height }
func (g *Generic) Type() gui.Type     { return gui.TypeChest }
func (g *Generic) Paginated() bool    { return false }
func (g *Generic) HasItem(i int) bool { return g.Slots[i] != nil }
func (g *Generic) SetItem(i int, it *gui.Item) {
	g.Slots[i] = it
}
func (g *Generic) UpdateItem(i int, it *gui.Item) {
	g.Updates++
	g.Slots[i] = it
}

/* Getter & Setter */

func (g *Generic) GetSlot(i int) *gui.Item { return g.Slots[i] }

// SetSlot is SetItem with bounds checking.
func (g *Generic) SetSlot(i int, it *gui.Item) error {
	if i < 0 || i >= len(g.Slots) {
		return fmt.Errorf("slot index %d out of bounds. maximum index is %d", i, len(g.Slots)-1)
	}
	g.Slots[i] = it
	return nil
}

func (g *Generic) Count() int {
	return len(g.Slots)
}

// Row returns the slots of a 1-based row.
func (g *Generic) Row(row int) []*gui.Item {
	start := gui.Slot(row, 1)
	return g.Slots[start : start+gui.Columns]
}
