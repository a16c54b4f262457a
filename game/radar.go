package game

import (
	"fmt"

	"geek/utils"
)

const noCarrier = -1

// HasRadarCarrier reports whether some miner currently owns the radar
// mission.
func (gs *GameState) HasRadarCarrier() bool {
	return gs.radarCarrier != noCarrier
}

// RadarCarrier returns the index of the miner on the radar mission.
func (gs *GameState) RadarCarrier() (int, bool) {
	if gs.radarCarrier == noCarrier {
		return 0, false
	}
	return gs.radarCarrier, true
}

// AssignRadar hands the radar mission to the living miner whose row is
// closest to the middle of the board, first index winning ties, and gives
// it a random burial destination. Central robots make the best future
// coverage. Reports false when no miner is alive, which can legitimately
// happen near game end.
func (gs *GameState) AssignRadar() bool {
	if gs.HasRadarCarrier() {
		panic("radar mission is already assigned")
	}

	middle := gs.Grid.Height / 2
	best := noCarrier
	bestDist := 0
	for i, m := range gs.Miners {
		if !m.Alive {
			continue
		}
		dist := utils.Abs(m.Pos.Y - middle)
		if best == noCarrier || dist < bestDist {
			best = i
			bestDist = dist
		}
	}
	if best == noCarrier {
		return false
	}

	gs.radarCarrier = best
	gs.Miners[best].Order = DeployRadarToRandom(gs.rng, gs.Grid.Width, gs.Grid.Height)
	return true
}

// ReleaseRadar ends the radar mission held by the given miner, typically
// the turn its radar gets buried.
func (gs *GameState) ReleaseRadar(minerIndex int) {
	if gs.radarCarrier != minerIndex {
		panic(fmt.Sprintf("miner %d is not the radar carrier", minerIndex))
	}
	gs.radarCarrier = noCarrier
}
