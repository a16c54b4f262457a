package metrics

import (
	"time"

	"geek/game"
)

// TurnRecord captures what the engine did on one turn.
type TurnRecord struct {
	Turn     int
	Moves    int
	Digs     int
	Requests int
	Waits    int
	Duration time.Duration
}

// GameRecord sums up a finished game.
type GameRecord struct {
	Turns         int
	MyScore       int
	OpponentScore int
	Duration      time.Duration
}

// Collector accumulates per-turn records. The dummy implementation keeps
// the engine free of bookkeeping when metrics are off.
type Collector interface {
	StartTurn()
	CompleteTurn(turn int, actions []game.Action) TurnRecord
	Complete(myScore, opponentScore int) GameRecord
	TurnRecords() []TurnRecord
}

type collector struct {
	gameStart time.Time
	turnStart time.Time
	records   []TurnRecord
}

func NewCollector() Collector {
	return &collector{gameStart: time.Now()}
}

func (c *collector) StartTurn() {
	c.turnStart = time.Now()
}

func (c *collector) CompleteTurn(turn int, actions []game.Action) TurnRecord {
	record := TurnRecord{Turn: turn, Duration: time.Since(c.turnStart)}
	for _, a := range actions {
		switch a.Kind {
		case game.ActionMove:
			record.Moves++
		case game.ActionDig:
			record.Digs++
		case game.ActionRequest:
			record.Requests++
		case game.ActionWait:
			record.Waits++
		}
	}
	c.records = append(c.records, record)
	return record
}

func (c *collector) Complete(myScore, opponentScore int) GameRecord {
	return GameRecord{
		Turns:         len(c.records),
		MyScore:       myScore,
		OpponentScore: opponentScore,
		Duration:      time.Since(c.gameStart),
	}
}

func (c *collector) TurnRecords() []TurnRecord {
	return c.records
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return dummyCollector{}
}

func (dummyCollector) StartTurn() {}

func (dummyCollector) CompleteTurn(turn int, actions []game.Action) TurnRecord {
	return TurnRecord{Turn: turn}
}

func (dummyCollector) Complete(myScore, opponentScore int) GameRecord {
	return GameRecord{}
}

func (dummyCollector) TurnRecords() []TurnRecord { return nil }
