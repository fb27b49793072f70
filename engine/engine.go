// Package engine plays one full game between two move-deciding agents on a
// single live board. Each move is decided by a freshly constructed searcher,
// so no tree state survives between moves.
package engine

import (
	"fmt"

	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxMoves bounds a game; a 6x7 board fills after 42 moves.
const MaxMoves = game.Rows * game.Cols

// Agent is one side's strategy configuration.
type Agent struct {
	Strategy    searcher.Strategy
	Simulations int
}

// Name renders the agent as e.g. "UR" or "UCT-500".
func (a Agent) Name() string {
	if a.Strategy == searcher.UniformRandom {
		return a.Strategy.String()
	}
	return fmt.Sprintf("%s-%d", a.Strategy, a.Simulations)
}

// Engine owns a live board and the two agents playing on it.
type Engine struct {
	board  *game.Board
	agents map[game.Cell]Agent
	first  game.Cell
	rng    *rand.Rand
}

// New returns an engine for one game of red vs yellow, with first to move
// first. The rng drives every decision of both agents, making the game
// reproducible for a fixed seed.
func New(red, yellow Agent, first game.Cell, rng *rand.Rand) *Engine {
	if first != game.Red && first != game.Yellow {
		panic("first mover must be red or yellow")
	}
	return &Engine{
		board:  game.NewBoard(),
		agents: map[game.Cell]Agent{game.Red: red, game.Yellow: yellow},
		first:  first,
		rng:    rng,
	}
}

// Run plays the game to its terminal state and returns the outcome along
// with per-move search metrics.
func (e *Engine) Run() (game.Outcome, []metrics.MoveMetric, error) {
	log.Info().
		Str("red", e.agents[game.Red].Name()).
		Str("yellow", e.agents[game.Yellow].Name()).
		Stringer("first", e.first).
		Msg("game started")

	var moveMetrics []metrics.MoveMetric
	mover := e.first
	for step := 1; step <= MaxMoves; step++ {
		done, outcome := e.board.Terminal()
		if done {
			log.Info().Stringer("outcome", outcome).Int("moves", step-1).Msg("game over")
			return outcome, moveMetrics, nil
		}

		agent := e.agents[mover]
		collector := metrics.NewCollector()
		m, err := searcher.New(agent.Strategy,
			searcher.WithSimulations(agent.Simulations),
			searcher.WithRand(e.rng),
			searcher.WithCollector(collector),
		)
		if err != nil {
			return game.Draw, moveMetrics, fmt.Errorf("configuring %s: %w", agent.Name(), err)
		}

		move, err := m.FindMove(e.board, mover)
		if err != nil {
			return game.Draw, moveMetrics, fmt.Errorf("deciding move %d for %s: %w", step, agent.Name(), err)
		}
		if err := e.board.Apply(move, mover); err != nil {
			return game.Draw, moveMetrics, fmt.Errorf("applying move %d to column %d: %w", step, move, err)
		}

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: collector.Complete(),
		})
		log.Debug().Int("step", step).Stringer("player", mover).Int("column", move).Msg("move played")

		mover = mover.Opponent()
	}

	done, outcome := e.board.Terminal()
	if !done {
		return game.Draw, moveMetrics, fmt.Errorf("game not terminal after %d moves", MaxMoves)
	}
	log.Info().Stringer("outcome", outcome).Int("moves", MaxMoves).Msg("game over")
	return outcome, moveMetrics, nil
}
