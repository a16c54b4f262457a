package game

import "golang.org/x/exp/rand"

// OrderKind discriminates the per-robot order variants.
type OrderKind int

const (
	// OrderGoTo is exploration toward a candidate cell, abandoned as soon
	// as a better digging target shows up.
	OrderGoTo OrderKind = iota
	// OrderDigAt is a commitment to dig a specific cell.
	OrderDigAt
	// OrderDeployRadar belongs to the single robot on the radar mission.
	OrderDeployRadar
	// OrderDeliver returns ore to the home column. The coordinates keep
	// the origin dig site; the travel destination is always x = 0.
	OrderDeliver
)

// Order is the current multi-turn intention of an owned robot,
// re-evaluated every turn.
type Order struct {
	Kind OrderKind
	X, Y int
}

// GoToRandom picks a uniform random explore target outside the home
// column.
func GoToRandom(rng *rand.Rand, width, height int) Order {
	return Order{Kind: OrderGoTo, X: 1 + rng.Intn(width-1), Y: rng.Intn(height)}
}

// DeployRadarToRandom picks a uniform random burial spot outside the home
// column.
func DeployRadarToRandom(rng *rand.Rand, width, height int) Order {
	return Order{Kind: OrderDeployRadar, X: 1 + rng.Intn(width-1), Y: rng.Intn(height)}
}

// Destination returns the cell this order is headed to.
func (o Order) Destination() Position {
	return Position{X: o.X, Y: o.Y}
}

// IsDigging reports whether the order commits to digging a known cell.
func (o Order) IsDigging() bool {
	return o.Kind == OrderDigAt
}
