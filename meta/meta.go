// meta/meta.go
package meta

// Wire codes used by the referee protocol.
const (
	CodeMiner         = 0
	CodeOpponentMiner = 1
	CodeBuriedRadar   = 2
	CodeBuriedTrap    = 3

	CodeItemNone  = -1
	CodeItemRadar = 2
	CodeItemTrap  = 3
	CodeItemOre   = 4
)

// DeadSentinel is the off-board coordinate the referee reports for both
// axes of a destroyed robot.
const DeadSentinel = -1

// MoveSpeed is how many cells a robot covers per turn.
const MoveSpeed = 4

// RadarRange is the distance a buried radar reveals ore within.
const RadarRange = 4

// ItemCooldown is the restock delay after a radar or trap is granted.
const ItemCooldown = 5

// MaxTurns bounds the game loop, matching the referee's game length.
const MaxTurns = 200
