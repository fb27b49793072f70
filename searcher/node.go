package searcher

import (
	"math"

	"github.com/rs/zerolog/log"
)

// node is one position in the search tree. It accumulates the rewards and
// visits backed up through it; children are keyed by the 1-indexed column
// played from this position. The parent link is a non-owning back-reference
// used only for upward walks.
type node struct {
	parent   *node
	children map[int]*node
	rewards  float64 // sum of perspective-adjusted outcomes
	visits   int
}

func newNode(parent *node) *node {
	return &node{
		parent:   parent,
		children: make(map[int]*node),
	}
}

// value returns the running average reward, clamped to [-1, 1], or 0 for an
// unvisited node.
func (n *node) value() float64 {
	if n.visits == 0 {
		return 0
	}
	return clamp(n.rewards/float64(n.visits), -1, 1)
}

// fullyExpanded reports whether the node has one child per legal move.
// Count equality suffices: expansion only ever adds moves that were legal
// here, and legality is stable along one apply/undo path.
func (n *node) fullyExpanded(legal []int) bool {
	return len(n.children) == len(legal)
}

// ucb returns the node's UCB1 score. An unvisited node scores +Inf for a
// maximizing mover and -Inf for a minimizing one, forcing exploration.
func (n *node) ucb(c float64, max bool) float64 {
	if n.visits == 0 {
		if max {
			return math.Inf(1)
		}
		return math.Inf(-1)
	}

	if n.parent == nil || n.parent.visits == 0 {
		log.Warn().Msg("ucb score requested before parent was visited")
		return n.value()
	}

	exploration := c * math.Sqrt(math.Log(float64(n.parent.visits))/float64(n.visits))
	if max {
		return n.value() + exploration
	}
	return n.value() - exploration
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
