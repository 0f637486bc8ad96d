package gui

import "errors"

var (
	ErrPaginatedFill = errors.New("paginated menus do not support full filling")
	ErrInvalidSlot   = errors.New("slot out of range")
	ErrNotOpen       = errors.New("menu is not open")
)
