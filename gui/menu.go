package gui

import (
	"fmt"
	"sort"
	"sync"

	"github.com/df-mc/atomic"
	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/item/inventory"
	"github.com/goxiaoy/go-eventbus"
	log "github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
)

// Config holds the settings a Menu is created with. The zero value is a one row chest.
type Config struct {
	// Title is shown at the top of the container.
	Title string
	// Rows is the number of rows of a chest menu, between 1 and 6. Other types always have one row.
	Rows int
	Type Type
	// WindowID is the window the menu's contents are sent to viewers in.
	WindowID uint32
	// Logger defaults to the logrus standard logger.
	Logger *log.Logger
	// Bus receives a *ClickEvent for every click. A new bus is created if nil.
	Bus *eventbus.EventBus
}

// Menu is a grid of items shown to viewers through an inventory. Items stored with SetItem are only sent
// when the menu is opened or updated, UpdateItem sends them right away if the menu is open.
type Menu struct {
	conf Config
	rows int
	log  *log.Logger
	bus  *eventbus.EventBus

	mu        sync.Mutex
	items     map[int]*Item
	layer     pageLayer
	pageView  map[int]*Item
	paginated bool

	inv       *inventory.Inventory
	open      atomic.Bool
	rendering atomic.Bool

	vMu      sync.Mutex
	viewers  map[Viewer]struct{}
	handlers []ClickHandler
}

// pageLayer supplies items for the slots a menu has no item of its own in.
type pageLayer interface {
	pageItems(free []int) map[int]*Item
}

// NewMenu creates an empty Menu using the config passed.
func NewMenu(conf Config) *Menu {
	if conf.Logger == nil {
		conf.Logger = log.StandardLogger()
	}
	if conf.Bus == nil {
		conf.Bus = eventbus.New()
	}
	rows := conf.Rows
	if conf.Type != TypeChest {
		rows = 1
	} else if rows < 1 || rows > 6 {
		conf.Logger.Warnf("menu %q: invalid row count %d, using 1", conf.Title, rows)
		rows = 1
	}
	m := &Menu{
		conf:     conf,
		rows:     rows,
		log:      conf.Logger,
		bus:      conf.Bus,
		items:    map[int]*Item{},
		pageView: map[int]*Item{},
		viewers:  map[Viewer]struct{}{},
	}
	m.inv = inventory.New(m.Size(), func(slot int, _, after item.Stack) {
		if m.rendering.Load() || !m.open.Load() {
			return
		}
		m.broadcastSlot(slot, after)
	})
	return m
}

func (m *Menu) Title() string           { return m.conf.Title }
func (m *Menu) Rows() int               { return m.rows }
func (m *Menu) Type() Type              { return m.conf.Type }
func (m *Menu) Paginated() bool         { return m.paginated }
func (m *Menu) WindowID() uint32        { return m.conf.WindowID }
func (m *Menu) Bus() *eventbus.EventBus { return m.bus }

// Size returns the number of slots of the menu's inventory.
func (m *Menu) Size() int {
	if m.conf.Type == TypeChest {
		return m.rows * Columns
	}
	return m.conf.Type.Size()
}

// Inventory returns the inventory holding what viewers currently see.
func (m *Menu) Inventory() *inventory.Inventory {
	return m.inv
}

// Opened reports if the menu has at least one viewer.
func (m *Menu) Opened() bool {
	return m.open.Load()
}

// Filler returns a Filler that stores items without sending them to viewers.
func (m *Menu) Filler() Filler {
	return Setting(m)
}

// LiveFiller returns a Filler that sends every placed item to viewers of an open menu.
func (m *Menu) LiveFiller() Filler {
	return Updating(m)
}

func (m *Menu) validateSlot(slot int) {
	if slot < 0 || slot >= m.Size() {
		panic(fmt.Errorf("menu %q: slot %d not in [0, %d): %w", m.conf.Title, slot, m.Size(), ErrInvalidSlot))
	}
}

// SetItem stores an item at the slot. The slot must be within the menu's size.
func (m *Menu) SetItem(slot int, it *Item) {
	m.validateSlot(slot)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[slot] = it
}

// UpdateItem stores an item at the slot and, if the menu is open, sends it to all viewers.
func (m *Menu) UpdateItem(slot int, it *Item) {
	m.SetItem(slot, it)
	if !m.open.Load() {
		return
	}
	if err := m.inv.SetItem(slot, it.Stack()); err != nil {
		m.log.Warnf("menu %q: update slot %d: %v", m.conf.Title, slot, err)
	}
}

// RemoveItem clears a slot. Viewers see the change on the next update.
func (m *Menu) RemoveItem(slot int) {
	m.validateSlot(slot)
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, slot)
}

func (m *Menu) HasItem(slot int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[slot]
	return ok
}

// Item returns the item stored at the slot. Items shown by a page are not included.
func (m *Menu) Item(slot int) (*Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[slot]
	return it, ok
}

// Items returns a copy of all stored items by slot.
func (m *Menu) Items() map[int]*Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return maps.Clone(m.items)
}

// itemAt returns the item shown at the slot, including page items.
func (m *Menu) itemAt(slot int) (*Item, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if it, ok := m.items[slot]; ok {
		return it, true
	}
	it, ok := m.pageView[slot]
	return it, ok
}

func (m *Menu) freeSlots() []int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.freeSlotsLocked()
}

func (m *Menu) freeSlotsLocked() []int {
	var free []int
	for i := 0; i < m.Size(); i++ {
		if _, ok := m.items[i]; !ok {
			free = append(free, i)
		}
	}
	return free
}

// render writes every item into the inventory and returns the resulting contents.
func (m *Menu) render() []item.Stack {
	m.mu.Lock()
	stacks := make([]item.Stack, m.Size())
	for slot, it := range m.items {
		stacks[slot] = it.Stack()
	}
	m.pageView = map[int]*Item{}
	if m.layer != nil {
		for slot, it := range m.layer.pageItems(m.freeSlotsLocked()) {
			m.pageView[slot] = it
			stacks[slot] = it.Stack()
		}
	}
	m.mu.Unlock()

	m.rendering.Store(true)
	defer m.rendering.Store(false)
	for slot, s := range stacks {
		if err := m.inv.SetItem(slot, s); err != nil {
			m.log.Warnf("menu %q: render slot %d: %v", m.conf.Title, slot, err)
		}
	}
	return stacks
}

// Show renders the menu and sends it to the viewer, which is kept until Close is called for it.
func (m *Menu) Show(v Viewer) error {
	stacks := m.render()
	m.vMu.Lock()
	m.viewers[v] = struct{}{}
	m.vMu.Unlock()
	m.open.Store(true)

	m.log.Debugf("menu %q: opened for viewer %T", m.conf.Title, v)
	return v.ViewContents(m.conf.WindowID, stacks)
}

// Close removes the viewer. The menu is closed once the last viewer is removed.
func (m *Menu) Close(v Viewer) {
	m.vMu.Lock()
	defer m.vMu.Unlock()
	delete(m.viewers, v)
	if len(m.viewers) == 0 {
		m.open.Store(false)
	}
}

// Viewers returns everyone the menu is currently shown to.
func (m *Menu) Viewers() []Viewer {
	m.vMu.Lock()
	defer m.vMu.Unlock()
	viewers := make([]Viewer, 0, len(m.viewers))
	for v := range m.viewers {
		viewers = append(viewers, v)
	}
	return viewers
}

// Update renders the menu again and sends the full contents to all viewers.
func (m *Menu) Update() error {
	if !m.open.Load() {
		return ErrNotOpen
	}
	stacks := m.render()
	var firstErr error
	for _, v := range m.Viewers() {
		if err := v.ViewContents(m.conf.WindowID, stacks); err != nil {
			m.log.Warnf("menu %q: send contents: %v", m.conf.Title, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (m *Menu) broadcastSlot(slot int, s item.Stack) {
	for _, v := range m.Viewers() {
		if err := v.ViewSlot(m.conf.WindowID, slot, s); err != nil {
			m.log.Warnf("menu %q: send slot %d: %v", m.conf.Title, slot, err)
		}
	}
}

// AddClickHandler registers handlers that run on every click, highest priority first.
func (m *Menu) AddClickHandler(handlers ...ClickHandler) {
	m.vMu.Lock()
	defer m.vMu.Unlock()
	m.handlers = append(m.handlers, handlers...)
	sort.SliceStable(m.handlers, func(i, j int) bool {
		return m.handlers[i].Priority > m.handlers[j].Priority
	})
}
