package engine

import (
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"geek/communication"
	"geek/experiments/metrics"
	"geek/game"
	"geek/meta"
	"geek/player"
)

type Option func(e *Engine)

func WithMetrics(collector metrics.Collector) Option {
	return func(e *Engine) {
		if collector != nil {
			e.metrics = collector
		}
	}
}

func WithMaxTurns(turns int) Option {
	return func(e *Engine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// Engine drives one game: each turn it reads a snapshot from the
// communicator, refreshes the model, and emits one action per owned
// robot.
type Engine struct {
	State    *game.GameState
	comm     communication.Communicator
	metrics  metrics.Collector
	maxTurns int
}

// New sets up an engine for a board of the given size.
func New(comm communication.Communicator, width, height int, rng *rand.Rand, options ...Option) *Engine {
	e := &Engine{
		State:    game.NewGameState(width, height, rng),
		comm:     comm,
		metrics:  metrics.NewDummyCollector(),
		maxTurns: meta.MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Step plays a single turn from one snapshot: apply, make sure the radar
// mission has a holder, then derive every robot's action. There is no
// hidden state beyond the game state itself.
func (e *Engine) Step(snap game.Snapshot) []game.Action {
	e.State.Apply(snap)
	if !e.State.HasRadarCarrier() {
		e.State.AssignRadar()
	}
	return player.TakeTurn(e.State)
}

// Run plays turns until the input ends or the turn limit is reached.
func (e *Engine) Run() error {
	for turn := 1; turn <= e.maxTurns; turn++ {
		snap, err := e.comm.ReadSnapshot()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Info().Int("turn", turn).Msg("input closed, game over")
				return nil
			}
			return err
		}

		e.metrics.StartTurn()
		actions := e.Step(snap)
		if err := e.comm.SendActions(actions); err != nil {
			return err
		}
		record := e.metrics.CompleteTurn(turn, actions)

		log.Debug().Int("turn", turn).
			Int("score", e.State.MyScore).
			Int("opponent_score", e.State.OpponentScore).
			Dur("took", record.Duration).
			Msg("turn played")
	}
	return nil
}
