// Package tournament runs a round-robin tournament between strategy
// configurations and aggregates win/draw/loss tallies per pairing.
package tournament

import (
	"fmt"
	"time"

	"connectfour/engine"
	"connectfour/experiments/metrics"
	"connectfour/game"
	"connectfour/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Option func(t *Tournament)

// Tournament plays every configured agent against every agent, including
// itself, alternating the first mover between games of a pairing.
type Tournament struct {
	lineup []engine.Agent
	games  int
	rng    *rand.Rand
}

// WithGames sets the number of games per pairing (default 100).
func WithGames(games int) Option {
	return func(t *Tournament) {
		if games > 0 {
			t.games = games
		}
	}
}

// WithSeed seeds the tournament's random source.
func WithSeed(seed uint64) Option {
	return func(t *Tournament) {
		t.rng = rand.New(rand.NewSource(seed))
	}
}

// DefaultLineup is the standard five-agent field.
func DefaultLineup() []engine.Agent {
	return []engine.Agent{
		{Strategy: searcher.UniformRandom},
		{Strategy: searcher.PureMonteCarlo, Simulations: 500},
		{Strategy: searcher.PureMonteCarlo, Simulations: 10000},
		{Strategy: searcher.UCT, Simulations: 500},
		{Strategy: searcher.UCT, Simulations: 10000},
	}
}

func New(lineup []engine.Agent, options ...Option) (*Tournament, error) {
	if len(lineup) < 2 {
		return nil, fmt.Errorf("tournament needs at least two agents, got %d", len(lineup))
	}
	t := &Tournament{
		lineup: lineup,
		games:  100,
	}
	for _, option := range options {
		option(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return t, nil
}

// Run plays the full round robin and returns per-pairing tallies and
// per-game records.
func (t *Tournament) Run() ([]metrics.MatchupRecord, []metrics.GameRecord, error) {
	var matchups []metrics.MatchupRecord
	var games []metrics.GameRecord

	pairings := len(t.lineup) * len(t.lineup)
	pairing := 0
	for _, agent1 := range t.lineup {
		for _, agent2 := range t.lineup {
			pairing++
			log.Info().
				Int("pairing", pairing).
				Int("pairings", pairings).
				Str("agent1", agent1.Name()).
				Str("agent2", agent2.Name()).
				Msg("pairing started")

			record := metrics.MatchupRecord{Agent1: agent1.Name(), Agent2: agent2.Name()}
			for i := 0; i < t.games; i++ {
				// Alternate the first mover for fairness. Agent1 always
				// plays red, agent2 yellow.
				first := game.Red
				if i%2 != 0 {
					first = game.Yellow
				}

				start := time.Now()
				outcome, moves, err := engine.New(agent1, agent2, first, t.rng).Run()
				if err != nil {
					return nil, nil, fmt.Errorf("game %d of %s vs %s: %w", i+1, agent1.Name(), agent2.Name(), err)
				}
				end := time.Now()

				switch outcome {
				case game.RedWins:
					record.Wins1++
				case game.YellowWins:
					record.Wins2++
				default:
					record.Draws++
				}

				games = append(games, metrics.GameRecord{
					ID:     len(games) + 1,
					Agent1: agent1.Name(),
					Agent2: agent2.Name(),
					GameMetric: metrics.GameMetric{
						StartingPlayer: first.String(),
						Result:         outcome.String(),
						StartTime:      start,
						EndTime:        end,
						Duration:       end.Sub(start),
						TotalMoves:     len(moves),
					},
				})
			}

			log.Info().
				Str("agent1", agent1.Name()).
				Str("agent2", agent2.Name()).
				Int("wins1", record.Wins1).
				Int("wins2", record.Wins2).
				Int("draws", record.Draws).
				Msg("pairing finished")
			matchups = append(matchups, record)
		}
	}

	return matchups, games, nil
}
