package gui

import (
	"sync"

	"github.com/df-mc/atomic"
)

// PaginatedConfig holds the settings of a PaginatedMenu.
type PaginatedConfig struct {
	Config
	// PageSize is the number of page items shown at once. If zero, every slot without an item of the menu
	// itself is used.
	PageSize int
}

// PaginatedMenu is a Menu that shows a list of page items in the slots it has no item of its own in, one
// page at a time. Items set on the menu itself, such as navigation buttons, stay on every page. A
// PaginatedMenu cannot be filled entirely.
type PaginatedMenu struct {
	*Menu

	pageSize int
	page     atomic.Int32

	mu      sync.Mutex
	entries []*Item
}

func NewPaginatedMenu(conf PaginatedConfig) *PaginatedMenu {
	p := &PaginatedMenu{Menu: NewMenu(conf.Config), pageSize: conf.PageSize}
	p.page.Store(1)
	p.Menu.paginated = true
	p.Menu.layer = p
	return p
}

// AddPageItem appends items to the pages. Viewers see them on the next update.
func (p *PaginatedMenu) AddPageItem(items ...*Item) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = append(p.entries, items...)
}

// ClearPageItems removes all page items and goes back to the first page.
func (p *PaginatedMenu) ClearPageItems() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.entries = nil
	p.page.Store(1)
}

func (p *PaginatedMenu) PageItems() []*Item {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*Item(nil), p.entries...)
}

// Page returns the current page, starting at 1.
func (p *PaginatedMenu) Page() int {
	return int(p.page.Load())
}

// PageSize returns the number of page items shown per page.
func (p *PaginatedMenu) PageSize() int {
	return p.sizeFor(p.freeSlots())
}

func (p *PaginatedMenu) sizeFor(free []int) int {
	if p.pageSize <= 0 || p.pageSize > len(free) {
		return len(free)
	}
	return p.pageSize
}

// Pages returns the number of pages. There is always at least one.
func (p *PaginatedMenu) Pages() int {
	size := p.PageSize()
	p.mu.Lock()
	n := len(p.entries)
	p.mu.Unlock()
	if size <= 0 || n == 0 {
		return 1
	}
	return (n + size - 1) / size
}

// Next moves to the next page. False is returned if already on the last page.
func (p *PaginatedMenu) Next() bool {
	if p.Page() >= p.Pages() {
		return false
	}
	p.page.Inc()
	p.refresh()
	return true
}

// Previous moves to the previous page. False is returned if already on the first page.
func (p *PaginatedMenu) Previous() bool {
	if p.Page() <= 1 {
		return false
	}
	p.page.Dec()
	p.refresh()
	return true
}

func (p *PaginatedMenu) refresh() {
	if !p.Opened() {
		return
	}
	if err := p.Update(); err != nil {
		p.log.Warnf("menu %q: page %d: %v", p.Title(), p.Page(), err)
	}
}

// pageItems is called with the menu's lock held.
func (p *PaginatedMenu) pageItems(free []int) map[int]*Item {
	size := p.sizeFor(free)
	p.mu.Lock()
	defer p.mu.Unlock()

	view := map[int]*Item{}
	start := (p.Page() - 1) * size
	for i, slot := range free[:size] {
		if start+i >= len(p.entries) {
			break
		}
		view[slot] = p.entries[start+i]
	}
	return view
}
