package communication

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"geek/game"
)

// TextCommunicator speaks the referee's line protocol over a reader and a
// writer, normally stdin and stdout.
type TextCommunicator struct {
	scanner *bufio.Scanner
	out     *bufio.Writer
	width   int
	height  int
}

func NewTextCommunicator(in io.Reader, out io.Writer) *TextCommunicator {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &TextCommunicator{
		scanner: scanner,
		out:     bufio.NewWriter(out),
	}
}

// ReadBoard parses the "width height" announcement sent once at start.
func (tc *TextCommunicator) ReadBoard() (int, int, error) {
	fields, err := tc.readFields()
	if err != nil {
		return 0, 0, err
	}
	if len(fields) < 2 {
		return 0, 0, fmt.Errorf("malformed board line %q", strings.Join(fields, " "))
	}
	width, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("board width: %w", err)
	}
	height, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("board height: %w", err)
	}
	tc.width = width
	tc.height = height
	return width, height, nil
}

// ReadSnapshot parses one turn. Malformed cells or entity lines are
// logged and dropped; the rest of the snapshot survives. Only the
// structural lines (scores, counts) are fatal when broken, since the
// stream cannot be re-synchronized without them.
func (tc *TextCommunicator) ReadSnapshot() (game.Snapshot, error) {
	var snap game.Snapshot

	fields, err := tc.readFields()
	if err != nil {
		return snap, err
	}
	if len(fields) < 2 {
		return snap, fmt.Errorf("malformed score line")
	}
	snap.MyScore = intField(fields[0], "my score")
	snap.OpponentScore = intField(fields[1], "opponent score")

	for y := 0; y < tc.height; y++ {
		row, err := tc.readFields()
		if err != nil {
			return snap, err
		}
		// The home column x = 0 carries no ore and is skipped, like the
		// referee's own viewer does.
		for x := 1; x < tc.width; x++ {
			if 2*x+1 >= len(row) {
				log.Warn().Int("y", y).Msg("short grid row")
				break
			}
			obs, ok := parseCell(x, y, row[2*x], row[2*x+1])
			if !ok {
				continue
			}
			snap.Cells = append(snap.Cells, obs)
		}
	}

	fields, err = tc.readFields()
	if err != nil {
		return snap, err
	}
	if len(fields) < 3 {
		return snap, fmt.Errorf("malformed entity count line")
	}
	entityCount, err := strconv.Atoi(fields[0])
	if err != nil {
		return snap, fmt.Errorf("entity count: %w", err)
	}
	snap.RadarCooldown = intField(fields[1], "radar cooldown")
	snap.TrapCooldown = intField(fields[2], "trap cooldown")

	for i := 0; i < entityCount; i++ {
		fields, err := tc.readFields()
		if err != nil {
			return snap, err
		}
		obs, ok := parseEntity(fields)
		if !ok {
			continue
		}
		snap.Entities = append(snap.Entities, obs)
	}
	return snap, nil
}

// SendActions writes one line per action and flushes.
func (tc *TextCommunicator) SendActions(actions []game.Action) error {
	for _, a := range actions {
		if _, err := fmt.Fprintln(tc.out, a.String()); err != nil {
			return err
		}
	}
	return tc.out.Flush()
}

func (tc *TextCommunicator) readFields() ([]string, error) {
	if !tc.scanner.Scan() {
		if err := tc.scanner.Err(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return strings.Fields(tc.scanner.Text()), nil
}

// parseCell decodes one "ore hole" pair. "?" means the ore count is
// unknown this turn.
func parseCell(x, y int, oreTok, holeTok string) (game.CellObservation, bool) {
	obs := game.CellObservation{X: x, Y: y}

	if oreTok != "?" {
		ore, err := strconv.Atoi(oreTok)
		if err != nil {
			log.Warn().Str("token", oreTok).Int("x", x).Int("y", y).
				Msg("bad ore field, skipping cell")
			return obs, false
		}
		obs.Ore = ore
		obs.OreKnown = true
	}

	hole, err := strconv.Atoi(holeTok)
	if err != nil {
		log.Warn().Str("token", holeTok).Int("x", x).Int("y", y).
			Msg("bad hole field, skipping cell")
		return obs, false
	}
	obs.HasHole = hole == 1
	return obs, true
}

// parseEntity decodes one "id type x y item" line.
func parseEntity(fields []string) (game.EntityObservation, bool) {
	var obs game.EntityObservation
	if len(fields) < 5 {
		log.Warn().Strs("fields", fields).Msg("short entity line, skipping")
		return obs, false
	}

	values := make([]int, 5)
	for i, f := range fields[:5] {
		v, err := strconv.Atoi(f)
		if err != nil {
			log.Warn().Str("token", f).Msg("bad entity field, skipping record")
			return obs, false
		}
		values[i] = v
	}

	obs.UID = game.UID(values[0])
	obs.TypeCode = values[1]
	obs.X = values[2]
	obs.Y = values[3]
	obs.ItemCode = values[4]
	return obs, true
}

// intField parses a numeric attribute, falling back to zero so a corrupt
// field never costs the turn.
func intField(token, what string) int {
	v, err := strconv.Atoi(token)
	if err != nil {
		log.Warn().Str("token", token).Str("field", what).Msg("bad numeric field")
		return 0
	}
	return v
}
