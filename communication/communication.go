// Package communication carries the referee protocol: it turns the raw
// text stream into snapshots and the chosen actions back into text.
package communication

import "geek/game"

// Communicator is an interface that abstracts the channel to the referee.
type Communicator interface {
	// ReadBoard reads the one-time board dimensions announcement.
	ReadBoard() (width, height int, err error)
	// ReadSnapshot reads one turn's observations.
	ReadSnapshot() (game.Snapshot, error)
	// SendActions submits one action per owned robot.
	SendActions(actions []game.Action) error
}
