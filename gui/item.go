package gui

import (
	"sync"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/google/uuid"
)

// Action is run when a viewer clicks the slot an Item is shown in.
type Action func(e *ClickEvent)

// Item is an entry of a menu. The same Item may be shown in many slots and many menus at once, it is only
// ever compared by reference.
type Item struct {
	// ID uniquely identifies the item across menus.
	ID uuid.UUID

	mu     sync.RWMutex
	stack  item.Stack
	action Action
}

// NewItem returns an Item showing the stack passed. The action is optional.
func NewItem(stack item.Stack, action ...Action) *Item {
	it := &Item{ID: uuid.New(), stack: stack}
	if len(action) > 0 {
		it.action = action[0]
	}
	return it
}

// Stack returns the stack the item is displayed as.
func (it *Item) Stack() item.Stack {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.stack
}

// SetStack changes the displayed stack. Menus showing the item pick up the change on their next update.
func (it *Item) SetStack(stack item.Stack) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.stack = stack
}

func (it *Item) Action() Action {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return it.action
}

func (it *Item) SetAction(action Action) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.action = action
}
