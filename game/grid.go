package game

import "geek/utils"

// Position is a cell coordinate on the board.
type Position struct {
	X, Y int
}

// Dist returns the Manhattan distance to another position.
func (p Position) Dist(o Position) int {
	return utils.Abs(p.X-o.X) + utils.Abs(p.Y-o.Y)
}

// Cell describes the current knowledge about a single board cell.
type Cell struct {
	OreAmount int
	OreKnown  bool
	HasHole   bool
}

// Grid holds per-cell knowledge for the whole board. It is created once at
// game start and mutated every turn by snapshot application.
type Grid struct {
	Width  int
	Height int
	Cells  []Cell
}

func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
	}
}

// Cell returns the cell at (x, y), or nil when out of bounds.
func (g *Grid) Cell(x, y int) *Cell {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return &g.Cells[y*g.Width+x]
}

// SetOre replaces the cell's ore knowledge with this turn's reading.
func (g *Grid) SetOre(x, y, amount int, known bool) {
	if cell := g.Cell(x, y); cell != nil {
		cell.OreAmount = amount
		cell.OreKnown = known
	}
}

// SetHole replaces the cell's hole flag with this turn's reading.
func (g *Grid) SetHole(x, y int, hole bool) {
	if cell := g.Cell(x, y); cell != nil {
		cell.HasHole = hole
	}
}
