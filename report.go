package main

import (
	"fmt"
	"io"

	"connectfour/game"
)

// reporter writes the search trace to out in the classic text protocol. It
// only observes the search; the decided move is identical whichever report
// mode is active.
//
// trace enables the per-simulation output (Verbose), columns the final
// per-column values (Verbose and Brief). The final move is always printed.
type reporter struct {
	out     io.Writer
	trace   bool
	columns bool
}

func (r *reporter) SelectionStep(rewards float64, visits int, scores map[int]float64, move int) {
	if !r.trace {
		return
	}
	fmt.Fprintf(r.out, "wi: %g\n", rewards)
	fmt.Fprintf(r.out, "ni: %d\n", visits)
	for col := 1; col <= game.Cols; col++ {
		if score, ok := scores[col]; ok {
			fmt.Fprintf(r.out, "V%d: %.2f\n", col, score)
		}
	}
	fmt.Fprintf(r.out, "Move selected: %d\n\n", move)
}

func (r *reporter) NodeAdded(move int) {
	if !r.trace {
		return
	}
	fmt.Fprintf(r.out, "NODE ADDED\n\n")
}

func (r *reporter) RolloutMove(move int) {
	if !r.trace {
		return
	}
	fmt.Fprintf(r.out, "Move selected: %d\n", move)
}

func (r *reporter) TerminalValue(value float64) {
	if !r.trace {
		return
	}
	fmt.Fprintf(r.out, "TERMINAL NODE VALUE: %g\n\n", value)
}

func (r *reporter) NodeUpdated(rewards float64, visits int) {
	if !r.trace {
		return
	}
	fmt.Fprintf(r.out, "Updated values:\nwi: %g\nni: %d\n\n", rewards, visits)
}

func (r *reporter) ColumnValues(values map[int]float64) {
	if !r.columns {
		return
	}
	for col := 1; col <= game.Cols; col++ {
		if value, ok := values[col]; ok {
			fmt.Fprintf(r.out, "Column %d: %.2f\n", col, value)
		} else {
			fmt.Fprintf(r.out, "Column %d: Null\n", col)
		}
	}
}

func (r *reporter) FinalMove(move int) {
	fmt.Fprintf(r.out, "FINAL Move selected: %d\n", move)
}
