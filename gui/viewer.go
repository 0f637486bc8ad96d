package gui

import (
	"fmt"

	"github.com/df-mc/dragonfly/server/item"
	"github.com/df-mc/dragonfly/server/world"
	"github.com/sandertv/gophertunnel/minecraft/protocol"
	"github.com/sandertv/gophertunnel/minecraft/protocol/packet"
	log "github.com/sirupsen/logrus"
)

// Viewer is someone a menu is shown to.
type Viewer interface {
	// ViewContents shows the full contents of a window.
	ViewContents(windowID uint32, stacks []item.Stack) error
	// ViewSlot shows a change of a single slot of a window.
	ViewSlot(windowID uint32, slot int, stack item.Stack) error
}

// PacketWriter is implemented by *minecraft.Conn.
type PacketWriter interface {
	WritePacket(pk packet.Packet) error
}

// ConnViewer shows menus to a player connected over the network.
type ConnViewer struct {
	conn PacketWriter
	log  *log.Logger
}

func NewConnViewer(conn PacketWriter, logger *log.Logger) *ConnViewer {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &ConnViewer{conn: conn, log: logger}
}

// ViewContents ...
func (v *ConnViewer) ViewContents(windowID uint32, stacks []item.Stack) error {
	content := make([]protocol.ItemInstance, len(stacks))
	for i, s := range stacks {
		content[i] = InstanceFromItem(s)
	}
	if err := v.conn.WritePacket(&packet.InventoryContent{
		WindowID: windowID,
		Content:  content,
	}); err != nil {
		v.log.Warn("write inventory content ", err)
		return fmt.Errorf("write contents of window %d: %w", windowID, err)
	}
	return nil
}

// ViewSlot ...
func (v *ConnViewer) ViewSlot(windowID uint32, slot int, stack item.Stack) error {
	if err := v.conn.WritePacket(&packet.InventorySlot{
		WindowID: windowID,
		Slot:     uint32(slot),
		NewItem:  InstanceFromItem(stack),
	}); err != nil {
		v.log.Warn("write inventory slot ", err)
		return fmt.Errorf("write slot %d of window %d: %w", slot, windowID, err)
	}
	return nil
}

// StackFromItem converts an item.Stack to its network ItemStack representation. Only the custom name and
// lore of the stack are written to its NBT, which is all a menu needs to display.
func StackFromItem(it item.Stack) protocol.ItemStack {
	if it.Empty() {
		return protocol.ItemStack{}
	}

	var blockRuntimeID uint32
	if b, ok := it.Item().(world.Block); ok {
		blockRuntimeID = world.BlockRuntimeID(b)
	}

	rid, meta, _ := world.ItemRuntimeID(it.Item())

	return protocol.ItemStack{
		ItemType: protocol.ItemType{
			NetworkID:     rid,
			MetadataValue: uint32(meta),
		},
		HasNetworkID:   true,
		Count:          uint16(it.Count()),
		BlockRuntimeID: int32(blockRuntimeID),
		NBTData:        displayNBT(it),
	}
}

// InstanceFromItem converts an item.Stack to its network ItemInstance representation.
func InstanceFromItem(it item.Stack) protocol.ItemInstance {
	return protocol.ItemInstance{
		Stack: StackFromItem(it),
	}
}

func displayNBT(it item.Stack) map[string]any {
	display := map[string]any{}
	if name := it.CustomName(); name != "" {
		display["Name"] = name
	}
	if lore := it.Lore(); len(lore) > 0 {
		display["Lore"] = lore
	}
	if len(display) == 0 {
		return nil
	}
	return map[string]any{"display": display}
}
