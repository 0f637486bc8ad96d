package gui

// Type is the shape of the container a menu is shown in. Only chests are
// rectangular; every other type has a fixed number of usable slots.
type Type uint8

const (
	TypeChest Type = iota
	TypeWorkbench
	TypeHopper
	TypeDispenser
	TypeBrewing
)

// Limit returns the number of slots that may be filled. For a chest this is the number of slots per row.
func (t Type) Limit() int {
	switch t {
	case TypeHopper:
		return 5
	case TypeDispenser:
		return 8
	case TypeBrewing:
		return 4
	default:
		return 9
	}
}

// Size returns the number of slots the container holds, including slots Limit leaves out. For a chest this
// is the number of slots per row.
func (t Type) Size() int {
	switch t {
	case TypeWorkbench:
		return 10
	case TypeHopper, TypeBrewing:
		return 5
	default:
		return 9
	}
}

func (t Type) String() string {
	switch t {
	case TypeChest:
		return "chest"
	case TypeWorkbench:
		return "workbench"
	case TypeHopper:
		return "hopper"
	case TypeDispenser:
		return "dispenser"
	case TypeBrewing:
		return "brewing"
	}
	return "unknown"
}
