package searcher

// Observer receives a trace of the search as it runs. It is a pure
// observation interface: implementations see copies of the statistics and
// cannot influence which move is returned.
type Observer interface {
	// SelectionStep reports the stats of the node about to be left and the
	// move chosen from it. During tree descent scores holds the per-move
	// comparison values; during expansion it is nil.
	SelectionStep(rewards float64, visits int, scores map[int]float64, move int)
	// NodeAdded reports the single node expanded this simulation.
	NodeAdded(move int)
	// RolloutMove reports each move played during the random play-out.
	RolloutMove(move int)
	// TerminalValue reports the outcome fed into backpropagation.
	TerminalValue(value float64)
	// NodeUpdated reports post-backpropagation stats for each node on the
	// simulation path, root child first, root excluded.
	NodeUpdated(rewards float64, visits int)
	// ColumnValues reports the final per-column average values, one entry
	// per legal move (0 for moves never expanded); full columns are absent.
	ColumnValues(values map[int]float64)
	// FinalMove reports the decided move.
	FinalMove(move int)
}

type nopObserver struct{}

func (nopObserver) SelectionStep(rewards float64, visits int, scores map[int]float64, move int) {}
func (nopObserver) NodeAdded(move int)                                                         {}
func (nopObserver) RolloutMove(move int)                                                       {}
func (nopObserver) TerminalValue(value float64)                                                {}
func (nopObserver) NodeUpdated(rewards float64, visits int)                                    {}
func (nopObserver) ColumnValues(values map[int]float64)                                        {}
func (nopObserver) FinalMove(move int)                                                         {}
