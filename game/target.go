package game

// ChooseOrder finds the most appealing next order for the given miner: a
// commitment to dig the nearest cell known to hold ore, or a random
// explore target when no ore is known anywhere.
//
// The scan is row-major (y outer, x inner) and a strict comparison keeps
// the first cell among equal distances, so the result is deterministic for
// a given grid. Chosen targets are not reserved; two miners may converge
// on the same cell.
func (gs *GameState) ChooseOrder(minerIndex int) Order {
	if minerIndex < 0 || minerIndex >= len(gs.Miners) {
		panic("miner index out of range")
	}
	miner := gs.Miners[minerIndex]

	var best Order
	bestDist := -1
	for y := 0; y < gs.Grid.Height; y++ {
		for x := 0; x < gs.Grid.Width; x++ {
			cell := gs.Grid.Cell(x, y)
			if !cell.OreKnown || cell.OreAmount <= 0 {
				continue
			}
			dist := miner.Pos.Dist(Position{X: x, Y: y})
			if bestDist < 0 || dist < bestDist {
				best = Order{Kind: OrderDigAt, X: x, Y: y}
				bestDist = dist
			}
		}
	}

	if bestDist >= 0 {
		return best
	}
	return GoToRandom(gs.rng, gs.Grid.Width, gs.Grid.Height)
}
