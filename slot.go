package probemap

// slotState tags a table slot. The zero value is slotEmpty so a freshly
// allocated table needs no initialisation.
type slotState uint8

const (
	// never occupied since the table was allocated; ends a lookup
	slotEmpty slotState = iota
	slotOccupied
	// removed entry; lookups probe past it, inserts may reuse it
	slotTombstone
)

// slot is one cell of the open-addressing table. key and value are only
// meaningful while state is slotOccupied.
type slot struct {
	state slotState
	key   string
	value *Point
}
