package searcher

import (
	"fmt"
	"math"
	"time"

	"connectfour/experiments/metrics"
	"connectfour/game"

	"golang.org/x/exp/rand"
)

type Option func(m *MCTS)

// MCTS decides one move for a position using the configured strategy. It
// runs strictly sequentially: a single mutable board is threaded through
// every simulation and restored by undoing moves in reverse order, and all
// randomness comes from one injected source so decisions are reproducible
// move-for-move under a fixed seed.
type MCTS struct {
	strategy    Strategy
	simulations int
	exploration float64
	rng         *rand.Rand
	observer    Observer
	collector   metrics.Collector
}

// WithSimulations sets the simulation budget. Required to be positive for
// PMCGS and UCT; UniformRandom runs no simulations and must leave it zero.
func WithSimulations(simulations int) Option {
	return func(m *MCTS) {
		m.simulations = simulations
	}
}

// WithExploration overrides the UCB exploration constant (default sqrt 2).
func WithExploration(c float64) Option {
	return func(m *MCTS) {
		if c > 0 {
			m.exploration = c
		}
	}
}

// WithSeed seeds the searcher's random source.
func WithSeed(seed uint64) Option {
	return func(m *MCTS) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand injects a random source, e.g. one shared across the moves of a
// game.
func WithRand(rng *rand.Rand) Option {
	return func(m *MCTS) {
		if rng != nil {
			m.rng = rng
		}
	}
}

// WithObserver attaches a reporting sink for the search trace.
func WithObserver(observer Observer) Option {
	return func(m *MCTS) {
		if observer != nil {
			m.observer = observer
		}
	}
}

// WithCollector attaches a metrics collector.
func WithCollector(collector metrics.Collector) Option {
	return func(m *MCTS) {
		if collector != nil {
			m.collector = collector
		}
	}
}

// New validates the configuration and returns a searcher. Configuration
// errors are fatal to the decision: no search is attempted.
func New(strategy Strategy, options ...Option) (*MCTS, error) {
	m := &MCTS{
		strategy:    strategy,
		exploration: DefaultExploration,
		observer:    nopObserver{},
		collector:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	switch strategy {
	case UniformRandom:
		if m.simulations != 0 {
			return nil, fmt.Errorf("strategy UR takes no simulation budget, got %d", m.simulations)
		}
	case PureMonteCarlo, UCT:
		if m.simulations <= 0 {
			return nil, fmt.Errorf("strategy %s requires a positive simulation budget, got %d", strategy, m.simulations)
		}
	default:
		return nil, fmt.Errorf("unknown strategy %v", strategy)
	}
	return m, nil
}

// FindMove decides one move for player on board. The board is mutated during
// the search but restored to its exact prior state before returning; the
// simulation tree is discarded once the move is decided.
func (m *MCTS) FindMove(board *game.Board, player game.Cell) (int, error) {
	if player != game.Red && player != game.Yellow {
		return 0, fmt.Errorf("invalid player %v: must be R or Y", player)
	}
	legal := board.LegalMoves()
	if len(legal) == 0 {
		return 0, fmt.Errorf("no legal moves: board is full")
	}

	m.collector.Start(m.strategy.String())

	if m.strategy == UniformRandom {
		move := legal[m.rng.Intn(len(legal))]
		m.observer.FinalMove(move)
		return move, nil
	}

	root := newNode(nil)
	for i := 0; i < m.simulations; i++ {
		m.simulate(root, board, player)
		m.collector.AddSimulation()
	}

	move := m.decide(root, legal, maximizing(player))
	m.observer.FinalMove(move)
	return move, nil
}

// simulate runs one selection, expansion, rollout and backpropagation cycle,
// then unwinds every move it applied so the board returns to its
// pre-simulation state.
func (m *MCTS) simulate(root *node, board *game.Board, player game.Cell) {
	cur := root
	mover := player
	var path []int // selection and expansion moves, in application order

	for {
		legal := board.LegalMoves()
		if len(legal) == 0 {
			break
		}
		if done, _ := board.Terminal(); done {
			break
		}

		if cur.fullyExpanded(legal) {
			move, scores := m.pickChild(cur, legal, maximizing(mover))
			m.observer.SelectionStep(cur.rewards, cur.visits, scores, move)
			cur = cur.children[move]
			mustApply(board, move, mover)
			path = append(path, move)
			mover = mover.Opponent()
			continue
		}

		// Expansion: one new node per simulation, picked uniformly among
		// the unexplored moves.
		unexplored := make([]int, 0, len(legal))
		for _, move := range legal {
			if _, ok := cur.children[move]; !ok {
				unexplored = append(unexplored, move)
			}
		}
		move := unexplored[m.rng.Intn(len(unexplored))]
		m.observer.SelectionStep(cur.rewards, cur.visits, nil, move)

		child := newNode(cur)
		cur.children[move] = child
		cur = child
		m.observer.NodeAdded(move)
		m.collector.AddNode()

		mustApply(board, move, mover)
		path = append(path, move)
		mover = mover.Opponent()
		break
	}

	outcome, rolled := m.rollout(board, mover)
	m.observer.TerminalValue(float64(outcome))

	m.backpropagate(cur, outcome, maximizing(player))

	for i := len(rolled) - 1; i >= 0; i-- {
		board.Undo(rolled[i])
	}
	for i := len(path) - 1; i >= 0; i-- {
		board.Undo(path[i])
	}
}

// pickChild selects among a fully expanded node's children by the strategy's
// comparison rule: plain average value for PMCGS, UCB1 score for UCT. Ties
// go to the lowest column.
func (m *MCTS) pickChild(n *node, legal []int, max bool) (int, map[int]float64) {
	scores := make(map[int]float64, len(legal))
	for _, move := range legal {
		child := n.children[move]
		if m.strategy == UCT {
			scores[move] = child.ucb(m.exploration, max)
		} else {
			scores[move] = child.value()
		}
	}

	best := legal[0]
	for _, move := range legal[1:] {
		if max && scores[move] > scores[best] {
			best = move
		} else if !max && scores[move] < scores[best] {
			best = move
		}
	}
	return best, scores
}

// rollout plays uniformly random moves until a terminal state and returns
// its outcome plus the moves applied, in order, so the caller can unwind
// them.
func (m *MCTS) rollout(board *game.Board, mover game.Cell) (game.Outcome, []int) {
	var moves []int
	for {
		if done, outcome := board.Terminal(); done {
			return outcome, moves
		}
		legal := board.LegalMoves()
		if len(legal) == 0 {
			return game.Draw, moves
		}

		move := legal[m.rng.Intn(len(legal))]
		mustApply(board, move, mover)
		moves = append(moves, move)
		m.observer.RolloutMove(move)
		mover = mover.Opponent()
	}
}

// backpropagate walks from the frontier node to the root, adding a visit
// everywhere and folding the outcome into each node's rewards from that
// node's mover's perspective. Perspective alternates strictly by depth
// parity, which holds because Connect Four has no pass moves: counting
// depth 0 at the leaf, a depth is maximizing iff its parity matches the
// root player's maximizing role.
func (m *MCTS) backpropagate(leaf *node, outcome game.Outcome, rootMax bool) {
	value := clamp(float64(outcome), -1, 1)

	var updated []*node
	depth := 0
	for n := leaf; n != nil; n = n.parent {
		n.visits++
		if (depth%2 == 0) == rootMax {
			n.rewards += value
		} else {
			n.rewards -= value
		}
		updated = append(updated, n)
		depth++
	}

	// Report the path top-down, skipping the root.
	for i := len(updated) - 2; i >= 0; i-- {
		m.observer.NodeUpdated(updated[i].rewards, updated[i].visits)
	}
}

// decide picks the final move from the root's children by plain average
// value, max for Yellow and min for Red. A legal move that was never
// expanded counts as value 0. Ties go to the lowest column.
func (m *MCTS) decide(root *node, legal []int, max bool) int {
	values := make(map[int]float64, len(legal))
	best := 0
	bestValue := math.Inf(-1)
	if !max {
		bestValue = math.Inf(1)
	}

	for _, move := range legal {
		value := 0.0
		if child, ok := root.children[move]; ok {
			value = child.value()
		}
		values[move] = value

		if max && value > bestValue {
			bestValue = value
			best = move
		} else if !max && value < bestValue {
			bestValue = value
			best = move
		}
	}

	m.observer.ColumnValues(values)
	return best
}

func mustApply(board *game.Board, move int, p game.Cell) {
	if err := board.Apply(move, p); err != nil {
		panic(fmt.Sprintf("applying legal move %d: %v", move, err))
	}
}
