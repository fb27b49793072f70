package searcher

import (
	"fmt"
	"math"

	"connectfour/game"
)

// DefaultExploration is the UCB exploration constant used by UCT.
var DefaultExploration = math.Sqrt2

// Strategy selects how the searcher picks a move.
type Strategy int

const (
	// UniformRandom picks a legal move uniformly at random, with no tree.
	UniformRandom Strategy = iota
	// PureMonteCarlo builds a tree selecting children by average value only.
	PureMonteCarlo
	// UCT builds a tree selecting children by UCB1 score.
	UCT
)

func (s Strategy) String() string {
	switch s {
	case UniformRandom:
		return "UR"
	case PureMonteCarlo:
		return "PMCGS"
	case UCT:
		return "UCT"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name (UR, PMCGS or UCT) to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "UR":
		return UniformRandom, nil
	case "PMCGS":
		return PureMonteCarlo, nil
	case "UCT":
		return UCT, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q: must be UR, PMCGS or UCT", name)
	}
}

// maximizing reports whether p is the value-maximizing player.
func maximizing(p game.Cell) bool {
	return p == game.Yellow
}
