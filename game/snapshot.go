package game

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"geek/meta"
)

// CellObservation is one cell's reading from the current turn.
type CellObservation struct {
	X, Y     int
	Ore      int
	OreKnown bool
	HasHole  bool
}

// EntityObservation is one visible entity. Type and item codes are left
// raw so that decoding failures can be contained per record.
type EntityObservation struct {
	UID      UID
	TypeCode int
	X, Y     int
	ItemCode int
}

// Snapshot is one turn's complete observation of scores, grid deltas,
// cooldowns, and visible entities.
type Snapshot struct {
	MyScore       int
	OpponentScore int
	Cells         []CellObservation
	RadarCooldown int
	TrapCooldown  int
	Entities      []EntityObservation
}

// Apply merges one turn's snapshot into the model. Malformed records are
// logged and skipped; the rest of the snapshot still applies, so a few
// corrupt fields never cost the turn.
func (gs *GameState) Apply(snap Snapshot) {
	gs.MyScore = snap.MyScore
	gs.OpponentScore = snap.OpponentScore
	gs.RadarCooldown = snap.RadarCooldown
	gs.TrapCooldown = snap.TrapCooldown

	for _, c := range snap.Cells {
		if gs.Grid.Cell(c.X, c.Y) == nil {
			log.Warn().Int("x", c.X).Int("y", c.Y).
				Msg("cell observation out of bounds")
			continue
		}
		// This turn's reading fully replaces whatever was known before;
		// an unknown reading wipes a previous estimate.
		gs.Grid.SetOre(c.X, c.Y, c.Ore, c.OreKnown)
		gs.Grid.SetHole(c.X, c.Y, c.HasHole)
	}

	for _, e := range snap.Entities {
		if err := gs.applyEntity(e); err != nil {
			log.Warn().Err(err).Uint32("uid", uint32(e.UID)).
				Msg("skipping entity observation")
		}
	}
}

func (gs *GameState) applyEntity(obs EntityObservation) error {
	ref, known := gs.Entities[obs.UID]
	if !known {
		return gs.createEntity(obs)
	}

	switch ref.Kind {
	case KindMiner, KindOpponentMiner:
		m := gs.robot(ref)
		if obs.X == meta.DeadSentinel && obs.Y == meta.DeadSentinel {
			// Off-board sentinel: the robot is gone. Idempotent, and the
			// last real position is kept.
			m.Alive = false
			return nil
		}
		m.Pos = Position{X: obs.X, Y: obs.Y}
		m.Item = ItemFromCode(obs.ItemCode)
	case KindBuriedRadar:
		if _, ok := gs.BuriedRadars[obs.UID]; !ok {
			return fmt.Errorf("buried radar %d has no recorded position", obs.UID)
		}
		gs.BuriedRadars[obs.UID] = Position{X: obs.X, Y: obs.Y}
	case KindBuriedTrap:
		if _, ok := gs.BuriedTraps[obs.UID]; !ok {
			return fmt.Errorf("buried trap %d has no recorded position", obs.UID)
		}
		gs.BuriedTraps[obs.UID] = Position{X: obs.X, Y: obs.Y}
	}
	return nil
}

func (gs *GameState) createEntity(obs EntityObservation) error {
	kind, err := EntityKindFromCode(obs.TypeCode)
	if err != nil {
		return err
	}

	switch kind {
	case KindMiner:
		m := &Miner{
			Pos:   Position{X: obs.X, Y: obs.Y},
			Item:  ItemFromCode(obs.ItemCode),
			UID:   obs.UID,
			Alive: true,
			Order: GoToRandom(gs.rng, gs.Grid.Width, gs.Grid.Height),
		}
		gs.Entities[obs.UID] = EntityRef{Kind: KindMiner, Index: len(gs.Miners)}
		gs.Miners = append(gs.Miners, m)
	case KindOpponentMiner:
		// Opponent orders are never tracked, and no randomness is
		// consumed so the injected stream stays stable.
		m := &Miner{
			Pos:   Position{X: obs.X, Y: obs.Y},
			Item:  ItemFromCode(obs.ItemCode),
			UID:   obs.UID,
			Alive: true,
		}
		gs.Entities[obs.UID] = EntityRef{Kind: KindOpponentMiner, Index: len(gs.OpponentMiners)}
		gs.OpponentMiners = append(gs.OpponentMiners, m)
	case KindBuriedRadar:
		gs.Entities[obs.UID] = EntityRef{Kind: KindBuriedRadar}
		gs.BuriedRadars[obs.UID] = Position{X: obs.X, Y: obs.Y}
	case KindBuriedTrap:
		gs.Entities[obs.UID] = EntityRef{Kind: KindBuriedTrap}
		gs.BuriedTraps[obs.UID] = Position{X: obs.X, Y: obs.Y}
	}
	return nil
}
