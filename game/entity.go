package game

import (
	"fmt"

	"geek/meta"
)

// UID is the referee-assigned identifier, stable for an entity's lifetime
// and unique across both teams and all entity kinds within one game.
type UID uint32

// EntityKind discriminates the records tracked in the registry.
type EntityKind int

const (
	KindMiner EntityKind = iota
	KindOpponentMiner
	KindBuriedRadar
	KindBuriedTrap
)

// EntityKindFromCode decodes a wire type code.
func EntityKindFromCode(code int) (EntityKind, error) {
	switch code {
	case meta.CodeMiner:
		return KindMiner, nil
	case meta.CodeOpponentMiner:
		return KindOpponentMiner, nil
	case meta.CodeBuriedRadar:
		return KindBuriedRadar, nil
	case meta.CodeBuriedTrap:
		return KindBuriedTrap, nil
	default:
		return 0, fmt.Errorf("unknown entity type: %d", code)
	}
}

// EntityRef points from a UID to the arena slot holding the record. For
// buried radars and traps the index is unused; their positions live in
// separate maps keyed by UID.
type EntityRef struct {
	Kind  EntityKind
	Index int
}

// Item is what a robot can hold.
type Item int

const (
	NoItem Item = iota
	ItemRadar
	ItemTrap
	ItemOre
)

// ItemFromCode decodes a wire item code. The referee sends -1 for empty
// hands; any unrecognized code also maps to no item rather than an error.
func ItemFromCode(code int) Item {
	switch code {
	case meta.CodeItemRadar:
		return ItemRadar
	case meta.CodeItemTrap:
		return ItemTrap
	case meta.CodeItemOre:
		return ItemOre
	default:
		return NoItem
	}
}

// Miner mirrors one robot, own or opponent. Opponent robots are tracked
// for position and visibility only; their Order field stays zero-valued.
type Miner struct {
	Pos   Position
	Item  Item
	UID   UID
	Alive bool
	Order Order
}
