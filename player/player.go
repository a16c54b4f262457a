// Package player derives one action per owned robot per turn from the
// refreshed world model.
package player

import (
	"fmt"

	"geek/game"
)

// TakeTurn advances every owned robot's order and returns exactly one
// action per robot, dead ones included as wait placeholders. The radar
// carrier is pinned before the loop so every robot sees the same holder
// within a turn.
func TakeTurn(gs *game.GameState) []game.Action {
	actions := make([]game.Action, 0, len(gs.Miners))
	carrier, onMission := gs.RadarCarrier()

	for i := range gs.Miners {
		switch {
		case !gs.Miners[i].Alive:
			actions = append(actions, game.Wait())
		case onMission && i == carrier:
			actions = append(actions, radarMissionAction(gs, i))
		default:
			actions = append(actions, regularAction(gs, i))
		}
	}
	return actions
}

// radarMissionAction runs the carrier branch: fetch a radar at the home
// column, haul it to the chosen spot, bury it, and hand the mission back.
func radarMissionAction(gs *game.GameState, i int) game.Action {
	miner := gs.Miners[i]
	if miner.Order.Kind != game.OrderDeployRadar {
		panic(fmt.Sprintf("radar carrier %d holds order kind %d", i, int(miner.Order.Kind)))
	}
	dest := miner.Order.Destination()

	if miner.Item == game.ItemRadar {
		if miner.Pos.Dist(dest) == 0 {
			// Bury it right here and let the mission go; the policy picks
			// a fresh carrier on a later turn.
			gs.ReleaseRadar(i)
			miner.Order = gs.ChooseOrder(i)
			return game.Dig(dest.X, dest.Y)
		}
		return game.Move(dest.X, dest.Y)
	}
	if miner.Pos.X != 0 {
		return game.BackToHQ(miner.Pos)
	}
	return game.Request(game.RequestRadar)
}

func regularAction(gs *game.GameState, i int) game.Action {
	miner := gs.Miners[i]

	switch miner.Order.Kind {
	case game.OrderGoTo, game.OrderDigAt:
		dest := miner.Order.Destination()
		if miner.Pos.Dist(dest) > 0 {
			// Still traveling. A deposit freshly revealed by a radar may
			// be worth aborting the trip for, so re-check every turn.
			if other := gs.ChooseOrder(i); other.IsDigging() {
				miner.Order = other
				to := other.Destination()
				return game.Move(to.X, to.Y)
			}
			return game.Move(dest.X, dest.Y)
		}

		cell := gs.Grid.Cell(dest.X, dest.Y)
		if cell == nil {
			// Orders are built in bounds; still, never skip the turn.
			return game.Wait()
		}
		switch {
		case miner.Item == game.ItemOre:
			miner.Order = game.Order{Kind: game.OrderDeliver, X: dest.X, Y: dest.Y}
			return game.BackToHQ(miner.Pos)
		case !cell.OreKnown && !cell.HasHole:
			// Unknown cell: probing it is the whole point of being here.
			return game.Dig(dest.X, dest.Y)
		case cell.OreKnown && cell.OreAmount > 0:
			// Dig the ore and already commit to delivering it; no turn is
			// wasted waiting for the yield.
			miner.Order = game.Order{Kind: game.OrderDeliver, X: dest.X, Y: dest.Y}
			return game.Dig(dest.X, dest.Y)
		default:
			next := gs.ChooseOrder(i)
			miner.Order = next
			to := next.Destination()
			return game.Move(to.X, to.Y)
		}

	case game.OrderDeliver:
		if miner.Pos.X != 0 {
			return game.BackToHQ(miner.Pos).WithComment("going back to HQ!")
		}
		next := gs.ChooseOrder(i)
		miner.Order = next
		to := next.Destination()
		return game.Move(to.X, to.Y).WithComment("changing order!")

	default:
		panic(fmt.Sprintf("miner %d holds order kind %d without the radar mission",
			i, int(miner.Order.Kind)))
	}
}
