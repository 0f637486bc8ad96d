package gui

import (
	"context"
	"fmt"

	"github.com/goxiaoy/go-eventbus"
)

// ClickEvent is published on a menu's bus for every click in it.
type ClickEvent struct {
	Menu   *Menu
	Slot   int
	Viewer Viewer
	// Item is the item shown in the clicked slot, or nil if the slot is empty.
	Item *Item

	cancelled bool
}

// Cancel stops the clicked item's action and any lower priority handlers from running.
func (e *ClickEvent) Cancel()         { e.cancelled = true }
func (e *ClickEvent) Cancelled() bool { return e.cancelled }

// ClickHandler handles clicks in a menu. Handlers with a higher priority run first, and a handler returning
// an error stops the click from being handled further.
type ClickHandler struct {
	Priority int
	F        func(e *ClickEvent) error
}

// Click handles a click of the viewer in the slot passed. The event is published on the menu's bus, passed
// to the menu's click handlers and finally to the action of the clicked item.
func (m *Menu) Click(ctx context.Context, slot int, v Viewer) error {
	if !m.open.Load() {
		return ErrNotOpen
	}
	if slot < 0 || slot >= m.Size() {
		return fmt.Errorf("click in menu %q at %d: %w", m.conf.Title, slot, ErrInvalidSlot)
	}
	it, _ := m.itemAt(slot)
	e := &ClickEvent{Menu: m, Slot: slot, Viewer: v, Item: it}

	if err := eventbus.Publish[*ClickEvent](m.bus)(ctx, e); err != nil {
		m.log.Warnf("menu %q: publish click: %v", m.conf.Title, err)
	}

	m.vMu.Lock()
	handlers := append([]ClickHandler(nil), m.handlers...)
	m.vMu.Unlock()
	for _, h := range handlers {
		if e.cancelled {
			return nil
		}
		if err := h.F(e); err != nil {
			return fmt.Errorf("click in menu %q at %d: %w", m.conf.Title, slot, err)
		}
	}
	if e.cancelled || it == nil {
		return nil
	}
	if action := it.Action(); action != nil {
		action(e)
	}
	return nil
}
