package main

import (
	"errors"
	"strings"
	"testing"

	"git.patyhank.net/falloutBot/guilib/gui"
	"git.patyhank.net/falloutBot/guilib/screen"
)

func TestPaneItems(t *testing.T) {
	items, err := paneItems([]string{"black", "White"})
	if err != nil {
		t.Fatalf("paneItems: %v", err)
	}
	if len(items) != 2 || items[0] == items[1] {
		t.Fatalf("got %d distinct items, want 2", len(items))
	}
	if _, err := paneItems([]string{"mauve"}); err == nil {
		t.Errorf("unknown colour accepted")
	}
	if _, err := paneItems(nil); err == nil {
		t.Errorf("empty palette accepted")
	}
}

func TestFillRegion(t *testing.T) {
	palette, _ := paneItems([]string{"red"})
	tests := []struct {
		region string
		points []int
		filled int
	}{
		{"top", nil, 9},
		{"bottom", nil, 9},
		{"border", nil, 20},
		{"between", []int{1, 1, 2, 2}, 4},
		{"fill", nil, 27},
	}
	for _, tt := range tests {
		g := screen.NewGeneric(3)
		if err := fillRegion(gui.Setting(g), tt.region, tt.points, palette); err != nil {
			t.Fatalf("%s: %v", tt.region, err)
		}
		n := 0
		for _, it := range g.Slots {
			if it != nil {
				n++
			}
		}
		if n != tt.filled {
			t.Errorf("%s: filled %d slots, want %d", tt.region, n, tt.filled)
		}
	}

	if err := fillRegion(gui.Setting(screen.NewGeneric(3)), "between", []int{1, 2}, palette); err == nil {
		t.Errorf("between with two points accepted")
	}
}

func TestFillRegionPaginated(t *testing.T) {
	palette, _ := paneItems([]string{"red"})
	p := gui.NewPaginatedMenu(gui.PaginatedConfig{Config: gui.Config{Rows: 2}})
	err := fillRegion(p.Filler(), "fill", nil, palette)
	if !errors.Is(err, gui.ErrPaginatedFill) {
		t.Errorf("fill on paginated menu: got %v, want %v", err, gui.ErrPaginatedFill)
	}
}

func TestRender(t *testing.T) {
	palette, _ := paneItems([]string{"red", "blue"})
	g := screen.NewGeneric(2)
	kept := gui.NewItem(palette[0].Stack())
	g.Slots[17] = kept
	gui.Setting(g).FillTop(palette...)

	lines := strings.Split(strings.TrimSuffix(render(g, palette, kept), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("rendered %d lines, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "A") || !strings.Contains(lines[0], "B") {
		t.Errorf("top row %q misses palette letters", lines[0])
	}
	if !strings.HasPrefix(lines[1], ". . .") || !strings.Contains(lines[1], "#") {
		t.Errorf("second row %q", lines[1])
	}
}
