package communication

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"geek/game"
)

const turnInput = `12 7
9 1 ? 0 2 0 0 1 ? 0
9 1 1 0 ? 0 ? 0 3 1
9 1 ? 0 ? 0 0 0 ? 0
3 0 5
7 0 1 2 -1
8 1 3 0 4
oops bad line
`

func newTestCommunicator(t *testing.T, input string) (*TextCommunicator, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	tc := NewTextCommunicator(strings.NewReader(input), out)
	width, height, err := tc.ReadBoard()
	require.NoError(t, err)
	require.Equal(t, 5, width)
	require.Equal(t, 3, height)
	return tc, out
}

func TestReadSnapshot(t *testing.T) {
	tc, _ := newTestCommunicator(t, "5 3\n"+turnInput)

	snap, err := tc.ReadSnapshot()
	require.NoError(t, err)

	require.Equal(t, 12, snap.MyScore)
	require.Equal(t, 7, snap.OpponentScore)
	require.Equal(t, 0, snap.RadarCooldown)
	require.Equal(t, 5, snap.TrapCooldown)

	require.Len(t, snap.Cells, 12, "the home column is skipped")
	byPos := map[game.Position]game.CellObservation{}
	for _, c := range snap.Cells {
		byPos[game.Position{X: c.X, Y: c.Y}] = c
	}
	require.False(t, byPos[game.Position{X: 1, Y: 0}].OreKnown,
		"? means the ore count stays unknown")
	require.Equal(t, 2, byPos[game.Position{X: 2, Y: 0}].Ore)
	require.True(t, byPos[game.Position{X: 2, Y: 0}].OreKnown)
	require.True(t, byPos[game.Position{X: 3, Y: 0}].HasHole)
	require.Equal(t, 3, byPos[game.Position{X: 4, Y: 1}].Ore)

	require.Len(t, snap.Entities, 2, "the malformed entity line is dropped")
	require.Equal(t, game.EntityObservation{UID: 7, TypeCode: 0, X: 1, Y: 2, ItemCode: -1},
		snap.Entities[0])
	require.Equal(t, game.EntityObservation{UID: 8, TypeCode: 1, X: 3, Y: 0, ItemCode: 4},
		snap.Entities[1])
}

func TestReadSnapshotEOF(t *testing.T) {
	tc, _ := newTestCommunicator(t, "5 3\n")

	_, err := tc.ReadSnapshot()
	require.ErrorIs(t, err, io.EOF)
}

func TestSendActions(t *testing.T) {
	tc, out := newTestCommunicator(t, "5 3\n")

	err := tc.SendActions([]game.Action{
		game.Move(4, 2),
		game.Wait(),
		game.Dig(1, 1).WithComment("changing order!"),
		game.Request(game.RequestRadar),
	})
	require.NoError(t, err)

	require.Equal(t,
		"MOVE 4 2\nWAIT\nDIG 1 1 changing order!\nREQUEST RADAR\n",
		out.String())
}
