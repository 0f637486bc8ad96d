package screen

import (
	"testing"

	"git.patyhank.net/falloutBot/guilib/gui"
	"github.com/df-mc/dragonfly/server/item"
)

func TestGenericFill(t *testing.T) {
	g := NewGeneric(4)
	pane := gui.NewItem(item.NewStack(item.Stick{}, 1))
	button := gui.NewItem(item.NewStack(item.Emerald{}, 1))

	gui.Setting(g).FillBorder(pane)
	gui.Setting(g).FillBetweenPoints(2, 5, 2, 5, button)

	for row := 1; row <= 4; row++ {
		for col, it := range g.Row(row) {
			border := row == 1 || row == 4 || col == 0 || col == 8
			switch {
			case row == 2 && col == 4:
				if it != button {
					t.Errorf("row %d col %d: button missing", row, col+1)
				}
			case border && it != pane:
				t.Errorf("row %d col %d: border missing", row, col+1)
			case !border && it != nil:
				t.Errorf("row %d col %d: interior filled", row, col+1)
			}
		}
	}
}

func TestGenericUpdates(t *testing.T) {
	g := NewGeneric(2)
	it := gui.NewItem(item.NewStack(item.Stick{}, 1))

	if err := gui.Updating(g).Fill(it); err != nil {
		t.Fatalf("Fill: %v", err)
	}
	if g.Updates != 18 {
		t.Errorf("Updates = %d, want 18", g.Updates)
	}
	gui.Updating(g).FillTop(it)
	if g.Updates != 18 {
		t.Errorf("FillTop replaced occupied slots: Updates = %d", g.Updates)
	}
}

func TestGenericSetSlot(t *testing.T) {
	g := NewGeneric(1)
	it := gui.NewItem(item.NewStack(item.Stick{}, 1))
	if err := g.SetSlot(8, it); err != nil {
		t.Fatalf("SetSlot(8): %v", err)
	}
	if g.GetSlot(8) != it || !g.HasItem(8) {
		t.Errorf("slot 8 not set")
	}
	if err := g.SetSlot(9, it); err == nil {
		t.Errorf("SetSlot(9) on a single row accepted")
	}
	if g.Count() != 9 {
		t.Errorf("Count() = %d, want 9", g.Count())
	}
}
