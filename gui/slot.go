package gui

// Columns is the width of every menu grid.
const Columns = 9

// Slot translates a 1-based row and column to a slot index.
func Slot(row, col int) int {
	return (col + (row-1)*Columns) - 1
}
