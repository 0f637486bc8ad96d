package gui

// Grid is the container a Filler places items into. Menu and PaginatedMenu implement it, as does
// screen.Generic.
type Grid interface {
	// Rows returns the number of rows of the grid. Every row is Columns slots wide.
	Rows() int
	// Type returns the container type, which decides how many slots Fill covers.
	Type() Type
	// Paginated reports if the grid manages its own pages.
	Paginated() bool
	// HasItem reports if the slot currently holds an item.
	HasItem(slot int) bool
	// SetItem stores the item at the slot.
	SetItem(slot int, it *Item)
	// UpdateItem stores the item at the slot and refreshes it for anyone currently viewing the grid.
	UpdateItem(slot int, it *Item)
}

// Filler fills regions of a Grid. Every method takes the items to alternate between, at least one must be
// passed. Passing a single item fills the region with that item only.
type Filler interface {
	// FillTop fills the first row. Non-empty slots are left as they are.
	FillTop(items ...*Item)
	// FillBottom fills the last row. Non-empty slots are left as they are.
	FillBottom(items ...*Item)
	// FillBorder fills the outer ring of the grid, replacing non-empty slots. Grids with two rows or fewer
	// have no border and are left untouched.
	FillBorder(items ...*Item)
	// FillBetweenPoints fills the rectangle spanned by the two 1-based points, replacing non-empty slots.
	FillBetweenPoints(rowFrom, colFrom, rowTo, colTo int, items ...*Item)
	// Fill fills every usable slot of the grid. Non-empty slots are left as they are. ErrPaginatedFill is
	// returned for paginated grids, which are left untouched.
	Fill(items ...*Item) error
}

// Setting returns a Filler that places items using Grid.SetItem.
func Setting(g Grid) Filler {
	return &commonFiller{grid: g, place: g.SetItem}
}

// Updating returns a Filler that places items using Grid.UpdateItem, so that viewers of an open menu see
// the change straight away.
func Updating(g Grid) Filler {
	return &commonFiller{grid: g, place: g.UpdateItem}
}

// commonFiller implements every region of Filler on top of a single placement function.
type commonFiller struct {
	grid  Grid
	place func(slot int, it *Item)
}

func (f *commonFiller) put(slot int, it *Item, overwrite bool) {
	if !overwrite && f.grid.HasItem(slot) {
		return
	}
	f.place(slot, it)
}

func (f *commonFiller) FillTop(items ...*Item) {
	p := newPalette(items)
	for i := 0; i < Columns; i++ {
		f.put(i, p.at(i), false)
	}
}

func (f *commonFiller) FillBottom(items ...*Item) {
	p := newPalette(items)
	size := f.grid.Rows() * Columns
	for i := Columns; i > 0; i-- {
		f.put(size-i, p.at(i), false)
	}
}

func (f *commonFiller) FillBorder(items ...*Item) {
	rows := f.grid.Rows()
	if rows <= 2 {
		return
	}
	p := newPalette(items)
	size := rows * Columns
	for i := 0; i < size; i++ {
		if i <= 8 ||
			(i >= size-8 && i <= size-2) ||
			i%Columns == 0 ||
			i%Columns == 8 {
			f.put(i, p.at(i), true)
		}
	}
}

func (f *commonFiller) FillBetweenPoints(rowFrom, colFrom, rowTo, colTo int, items ...*Item) {
	minRow, maxRow := min(rowFrom, rowTo), max(rowFrom, rowTo)
	minCol, maxCol := min(colFrom, colTo), max(colFrom, colTo)

	p := newPalette(items)
	rows := f.grid.Rows()
	for row := 1; row <= rows; row++ {
		for col := 1; col <= Columns; col++ {
			if row < minRow || row > maxRow || col < minCol || col > maxCol {
				continue
			}
			slot := Slot(row, col)
			f.put(slot, p.at(slot), true)
		}
	}
}

func (f *commonFiller) Fill(items ...*Item) error {
	if f.grid.Paginated() {
		return ErrPaginatedFill
	}
	p := newPalette(items)

	t := f.grid.Type()
	n := t.Limit()
	if t == TypeChest {
		n *= f.grid.Rows()
	}
	for i := 0; i < n; i++ {
		f.put(i, p.at(i), false)
	}
	return nil
}

// palette cycles through the items a region is filled with. Index i of the palette is the item placed
// at slot i, wrapping around as many times as the grid needs.
type palette []*Item

func newPalette(items []*Item) palette {
	if len(items) == 0 {
		panic("gui: fill called without items")
	}
	return items
}

func (p palette) at(i int) *Item {
	return p[i%len(p)]
}
