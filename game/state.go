package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// GameState is the incrementally maintained model of the partially
// observed world. It owns every mutable structure across turns; nothing
// here is safe for concurrent use, and nothing needs to be.
type GameState struct {
	Grid           *Grid
	MyScore        int
	OpponentScore  int
	Miners         []*Miner
	OpponentMiners []*Miner
	Entities       map[UID]EntityRef
	BuriedRadars   map[UID]Position
	BuriedTraps    map[UID]Position
	RadarCooldown  int
	TrapCooldown   int

	rng *rand.Rand

	// radarCarrier is the index of the miner on the radar mission, or
	// noCarrier. Written only by radar.go so the singleton invariant is
	// checkable in one place.
	radarCarrier int
}

// NewGameState creates the model for a board of the given size. The
// random source drives exploration fallback targets; injecting it keeps
// tests deterministic.
func NewGameState(width, height int, rng *rand.Rand) *GameState {
	if rng == nil {
		panic("nil random source")
	}
	return &GameState{
		Grid:         NewGrid(width, height),
		Entities:     make(map[UID]EntityRef),
		BuriedRadars: make(map[UID]Position),
		BuriedTraps:  make(map[UID]Position),
		rng:          rng,
		radarCarrier: noCarrier,
	}
}

// robot resolves a registry reference to a robot record. The registry and
// the arenas must agree; a dangling reference means the model is corrupt.
func (gs *GameState) robot(ref EntityRef) *Miner {
	var arena []*Miner
	switch ref.Kind {
	case KindMiner:
		arena = gs.Miners
	case KindOpponentMiner:
		arena = gs.OpponentMiners
	default:
		panic(fmt.Sprintf("entity ref kind %d is not a robot", int(ref.Kind)))
	}
	if ref.Index < 0 || ref.Index >= len(arena) {
		panic(fmt.Sprintf("robot index %d out of range", ref.Index))
	}
	return arena[ref.Index]
}
