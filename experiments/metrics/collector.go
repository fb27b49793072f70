package metrics

import (
	"time"
)

// SearchMetric describes one move decision.
type SearchMetric struct {
	Strategy    string
	Simulations int
	NodesAdded  int
	Duration    time.Duration
}

// MoveMetric ties a search metric to its position in a game.
type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

// GameMetric describes one finished game.
type GameMetric struct {
	StartingPlayer string
	Result         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers metrics for a single move decision. The engine is
// sequential, so implementations need no synchronization.
type Collector interface {
	Start(strategy string)
	AddSimulation()
	AddNode()
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	simulations int
	nodesAdded  int
	startTime   time.Time
}

func NewCollector() Collector {
	return &collector{}
}

func (c *collector) Start(strategy string) {
	c.startTime = time.Now()
	c.strategy = strategy
	c.simulations = 0
	c.nodesAdded = 0
}

func (c *collector) AddSimulation() {
	c.simulations++
}

func (c *collector) AddNode() {
	c.nodesAdded++
}

func (c *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    c.strategy,
		Simulations: c.simulations,
		NodesAdded:  c.nodesAdded,
		Duration:    time.Since(c.startTime),
	}
}

type dummyCollector struct{}

// NewDummyCollector returns a collector that records nothing.
func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (dummyCollector) Start(strategy string)  {}
func (dummyCollector) AddSimulation()         {}
func (dummyCollector) AddNode()               {}
func (dummyCollector) Complete() SearchMetric { return SearchMetric{} }
