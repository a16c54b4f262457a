package engine

import (
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"geek/experiments/metrics"
	"geek/game"
	"geek/gamemaster"
)

// localComm feeds the engine from a local gamemaster for a fixed number
// of turns, then reports end of input like the real referee going away.
type localComm struct {
	gm     *gamemaster.LocalGame
	turns  int
	played int
}

func (c *localComm) ReadBoard() (int, int, error) {
	return 0, 0, io.EOF
}

func (c *localComm) ReadSnapshot() (game.Snapshot, error) {
	if c.played >= c.turns {
		return game.Snapshot{}, io.EOF
	}
	return c.gm.Snapshot(), nil
}

func (c *localComm) SendActions(actions []game.Action) error {
	c.played++
	c.gm.Play(actions)
	return nil
}

func TestStepAgainstLocalGame(t *testing.T) {
	const width, height, robots = 20, 10, 3

	gm := gamemaster.NewLocalGame(width, height, robots, 3)
	e := New(nil, width, height, rand.New(rand.NewSource(42)))

	for turn := 1; turn <= 60; turn++ {
		actions := e.Step(gm.Snapshot())

		require.Len(t, actions, robots,
			"turn %d: every robot gets exactly one action", turn)

		carriers := 0
		for _, m := range e.State.Miners {
			if m.Order.Kind == game.OrderDeployRadar {
				carriers++
			}
		}
		require.LessOrEqual(t, carriers, 1,
			"turn %d: the radar mission is a singleton", turn)

		gm.Play(actions)
	}

	require.GreaterOrEqual(t, gm.RadarCount(), 1,
		"a radar should have been requested, hauled, and buried")
	require.Greater(t, gm.MyScore(), 0,
		"sixty turns on a rich board should deliver some ore")
}

func TestRunWithMetrics(t *testing.T) {
	const width, height, robots, turns = 15, 8, 2, 40

	gm := gamemaster.NewLocalGame(width, height, robots, 2)
	comm := &localComm{gm: gm, turns: turns}
	collector := metrics.NewCollector()
	e := New(comm, width, height, rand.New(rand.NewSource(7)),
		WithMetrics(collector), WithMaxTurns(100))

	require.NoError(t, e.Run())

	records := collector.TurnRecords()
	require.Len(t, records, turns, "one record per played turn")
	for _, record := range records {
		total := record.Moves + record.Digs + record.Requests + record.Waits
		require.Equal(t, robots, total,
			"turn %d: actions of every kind add up to the robot count", record.Turn)
	}

	summary := collector.Complete(e.State.MyScore, e.State.OpponentScore)
	require.Equal(t, turns, summary.Turns)
}

func TestRunStopsAtTurnLimit(t *testing.T) {
	gm := gamemaster.NewLocalGame(10, 6, 1, 1)
	comm := &localComm{gm: gm, turns: 1000}
	e := New(comm, 10, 6, rand.New(rand.NewSource(1)), WithMaxTurns(5))

	require.NoError(t, e.Run())
	require.Equal(t, 5, comm.played)
}
