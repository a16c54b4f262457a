// Package gamemaster simulates the referee for local games and tests: it
// holds the true world, serves snapshots, and resolves the agent's
// actions. Only the agent's own team acts; the opponent idles.
package gamemaster

import (
	"geek/game"
	"geek/meta"
	"geek/utils"
)

// unit is the authoritative record of one robot.
type unit struct {
	uid   game.UID
	pos   game.Position
	item  game.Item
	alive bool
}

// LocalGame is an authoritative world used to exercise the agent without
// the real referee.
type LocalGame struct {
	width, height int
	ore           []int
	holes         []bool
	miners        []*unit
	opponents     []*unit
	radars        map[game.UID]game.Position
	myScore       int
	radarCooldown int
	trapCooldown  int
	nextUID       game.UID
}

// NewLocalGame seeds oreAmount ore in every cell outside the home column
// and spawns both teams' robots spread along the home column.
func NewLocalGame(width, height, robots, oreAmount int) *LocalGame {
	g := &LocalGame{
		width:  width,
		height: height,
		ore:    make([]int, width*height),
		holes:  make([]bool, width*height),
		radars: make(map[game.UID]game.Position),
	}
	for y := 0; y < height; y++ {
		for x := 1; x < width; x++ {
			g.ore[y*width+x] = oreAmount
		}
	}
	for r := 0; r < robots; r++ {
		spawn := game.Position{X: 0, Y: (r * height) / robots}
		g.miners = append(g.miners, &unit{uid: g.allocUID(), pos: spawn, alive: true})
		g.opponents = append(g.opponents, &unit{uid: g.allocUID(), pos: spawn, alive: true})
	}
	return g
}

func (g *LocalGame) allocUID() game.UID {
	uid := g.nextUID
	g.nextUID++
	return uid
}

func (g *LocalGame) MyScore() int { return g.myScore }

func (g *LocalGame) RadarCount() int { return len(g.radars) }

// Snapshot reports the world as the agent would see it: holes are always
// visible, ore counts only within radar range.
func (g *LocalGame) Snapshot() game.Snapshot {
	snap := game.Snapshot{
		MyScore:       g.myScore,
		RadarCooldown: g.radarCooldown,
		TrapCooldown:  g.trapCooldown,
	}

	for y := 0; y < g.height; y++ {
		for x := 1; x < g.width; x++ {
			obs := game.CellObservation{X: x, Y: y, HasHole: g.holes[y*g.width+x]}
			if g.visible(x, y) {
				obs.Ore = g.ore[y*g.width+x]
				obs.OreKnown = true
			}
			snap.Cells = append(snap.Cells, obs)
		}
	}

	for _, u := range g.miners {
		snap.Entities = append(snap.Entities, observe(u, meta.CodeMiner))
	}
	for _, u := range g.opponents {
		snap.Entities = append(snap.Entities, observe(u, meta.CodeOpponentMiner))
	}
	for uid, pos := range g.radars {
		snap.Entities = append(snap.Entities, game.EntityObservation{
			UID:      uid,
			TypeCode: meta.CodeBuriedRadar,
			X:        pos.X,
			Y:        pos.Y,
			ItemCode: meta.CodeItemNone,
		})
	}
	return snap
}

func observe(u *unit, typeCode int) game.EntityObservation {
	obs := game.EntityObservation{
		UID:      u.uid,
		TypeCode: typeCode,
		X:        u.pos.X,
		Y:        u.pos.Y,
		ItemCode: itemCode(u.item),
	}
	if !u.alive {
		obs.X = meta.DeadSentinel
		obs.Y = meta.DeadSentinel
	}
	return obs
}

func itemCode(item game.Item) int {
	switch item {
	case game.ItemRadar:
		return meta.CodeItemRadar
	case game.ItemTrap:
		return meta.CodeItemTrap
	case game.ItemOre:
		return meta.CodeItemOre
	default:
		return meta.CodeItemNone
	}
}

func (g *LocalGame) visible(x, y int) bool {
	p := game.Position{X: x, Y: y}
	for _, pos := range g.radars {
		if pos.Dist(p) <= meta.RadarRange {
			return true
		}
	}
	return false
}

// Play resolves one turn of the agent's actions, indexed by miner.
func (g *LocalGame) Play(actions []game.Action) {
	if g.radarCooldown > 0 {
		g.radarCooldown--
	}
	if g.trapCooldown > 0 {
		g.trapCooldown--
	}

	for i, a := range actions {
		if i >= len(g.miners) {
			break
		}
		u := g.miners[i]
		if !u.alive {
			continue
		}
		switch a.Kind {
		case game.ActionMove:
			dest := game.Position{
				X: utils.Clamp(a.X, 0, g.width-1),
				Y: utils.Clamp(a.Y, 0, g.height-1),
			}
			g.moveToward(u, dest)
		case game.ActionDig:
			g.dig(u, a.X, a.Y)
		case game.ActionRequest:
			if u.pos.X == 0 && a.Item == game.RequestRadar && g.radarCooldown == 0 {
				u.item = game.ItemRadar
				g.radarCooldown = meta.ItemCooldown
			}
		}
	}

	// Deliveries resolve on arrival at the home column.
	for _, u := range g.miners {
		if u.alive && u.pos.X == 0 && u.item == game.ItemOre {
			g.myScore++
			u.item = game.NoItem
		}
	}
}

// moveToward walks up to MoveSpeed cells, x axis first.
func (g *LocalGame) moveToward(u *unit, dest game.Position) {
	budget := meta.MoveSpeed

	dx := dest.X - u.pos.X
	step := utils.Clamp(dx, -budget, budget)
	u.pos.X += step
	budget -= utils.Abs(step)

	dy := dest.Y - u.pos.Y
	step = utils.Clamp(dy, -budget, budget)
	u.pos.Y += step
}

// dig opens a hole on the targeted cell when the robot stands on or next
// to it. A carried radar gets buried; otherwise available ore is mined.
func (g *LocalGame) dig(u *unit, x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return
	}
	target := game.Position{X: x, Y: y}
	if u.pos.Dist(target) > 1 {
		return
	}

	idx := y*g.width + x
	g.holes[idx] = true

	if u.item == game.ItemRadar {
		g.radars[g.allocUID()] = target
		u.item = game.NoItem
		return
	}
	if g.ore[idx] > 0 && u.item == game.NoItem {
		g.ore[idx]--
		u.item = game.ItemOre
	}
}
