package game

import (
	"errors"
	"strings"

	"github.com/rs/zerolog/log"
)

// Board dimensions. Row 0 is the bottom row.
const (
	Rows = 6
	Cols = 7
)

// Cell is the content of a single board square.
type Cell int8

const (
	Empty Cell = iota
	Red        // Min player, outcome -1
	Yellow     // Max player, outcome +1
)

func (c Cell) String() string {
	switch c {
	case Red:
		return "R"
	case Yellow:
		return "Y"
	default:
		return "O"
	}
}

// Opponent returns the other player.
func (c Cell) Opponent() Cell {
	if c == Red {
		return Yellow
	}
	return Red
}

// Outcome is a terminal game result from the max player's perspective.
type Outcome int8

const (
	RedWins    Outcome = -1
	Draw       Outcome = 0
	YellowWins Outcome = 1
)

func (o Outcome) String() string {
	switch o {
	case RedWins:
		return "red wins"
	case YellowWins:
		return "yellow wins"
	default:
		return "draw"
	}
}

// outcomeFor maps a winning player to the signed outcome.
func outcomeFor(p Cell) Outcome {
	if p == Red {
		return RedWins
	}
	return YellowWins
}

// ErrColumnFull is returned by Apply when the requested column has no empty
// cell. The search never requests an illegal move, so hitting this indicates
// an engine defect in the caller.
var ErrColumnFull = errors.New("column is full")

type square struct {
	row, col int
}

// Board is a mutable Connect Four position. It records its move history so
// the most recent move can be undone in O(1), and keeps a last-move marker
// so win checking only scans lines through the latest placement.
//
// The search threads a single Board through thousands of simulations via
// strictly nested Apply/Undo pairs; it is never copied.
type Board struct {
	cells   [Rows][Cols]Cell
	history []square
	last    square
	hasLast bool
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{history: make([]square, 0, Rows*Cols)}
}

// Cell returns the content of the given square.
func (b *Board) Cell(row, col int) Cell {
	return b.cells[row][col]
}

// Moves returns the number of moves recorded on the history stack.
func (b *Board) Moves() int {
	return len(b.history)
}

// LastMove returns the square of the most recent placement, if any.
func (b *Board) LastMove() (row, col int, ok bool) {
	if !b.hasLast {
		return 0, 0, false
	}
	return b.last.row, b.last.col, true
}

// LegalMoves returns the 1-indexed columns that are not full, in ascending
// order. An empty result means the board is full.
func (b *Board) LegalMoves() []int {
	moves := make([]int, 0, Cols)
	for col := 0; col < Cols; col++ {
		if b.cells[Rows-1][col] == Empty {
			moves = append(moves, col+1)
		}
	}
	return moves
}

// Apply drops p's piece into the given 1-indexed column, occupying the
// lowest empty cell. Returns ErrColumnFull if the column is full.
func (b *Board) Apply(column int, p Cell) error {
	col := column - 1
	for row := 0; row < Rows; row++ {
		if b.cells[row][col] == Empty {
			b.cells[row][col] = p
			b.last = square{row: row, col: col}
			b.hasLast = true
			b.history = append(b.history, b.last)
			return nil
		}
	}
	return ErrColumnFull
}

// Undo removes the most recently placed piece in the given 1-indexed column.
// The caller must undo moves in reverse application order; when the history
// stack's top matches the column this is O(1). The scanning fallback only
// exists for externally loaded positions whose full history is unknown.
func (b *Board) Undo(column int) {
	col := column - 1

	if n := len(b.history); n > 0 && b.history[n-1].col == col {
		top := b.history[n-1]
		b.history = b.history[:n-1]
		b.cells[top.row][top.col] = Empty
		b.syncLast()
		return
	}

	log.Warn().Int("column", column).Msg("undo without matching history entry, scanning column")
	for row := Rows - 1; row >= 0; row-- {
		if b.cells[row][col] != Empty {
			b.cells[row][col] = Empty
			if n := len(b.history); n > 0 && b.history[n-1] == (square{row: row, col: col}) {
				b.history = b.history[:n-1]
			}
			b.syncLast()
			return
		}
	}
}

func (b *Board) syncLast() {
	if n := len(b.history); n > 0 {
		b.last = b.history[n-1]
		b.hasLast = true
	} else {
		b.hasLast = false
	}
}

// Terminal reports whether the position is over and, if so, its outcome.
// With a last-move marker set, the win check only scans the four lines
// through that square; a full-board scan covers loaded positions without one.
func (b *Board) Terminal() (bool, Outcome) {
	if b.hasLast {
		if winner, ok := b.winAt(b.last.row, b.last.col); ok {
			return true, outcomeFor(winner)
		}
	} else if winner, ok := b.winAnywhere(); ok {
		return true, outcomeFor(winner)
	}

	if len(b.LegalMoves()) == 0 {
		return true, Draw
	}
	return false, Draw
}

// axes holds the four line directions as pairs of opposite steps.
var axes = [4][2][2]int{
	{{0, 1}, {0, -1}},  // horizontal
	{{1, 0}, {-1, 0}},  // vertical
	{{1, 1}, {-1, -1}}, // diagonal /
	{{1, -1}, {-1, 1}}, // diagonal \
}

// winAt checks whether the piece at (row, col) completes a line of four.
// For each axis it extends outward in both directions counting contiguous
// same-owner cells, including the piece itself, and stops at the first axis
// reaching four.
func (b *Board) winAt(row, col int) (Cell, bool) {
	p := b.cells[row][col]
	if p == Empty {
		return Empty, false
	}

	for _, axis := range axes {
		count := 1
		for _, step := range axis {
			r, c := row+step[0], col+step[1]
			for r >= 0 && r < Rows && c >= 0 && c < Cols && b.cells[r][c] == p {
				count++
				r += step[0]
				c += step[1]
			}
		}
		if count >= 4 {
			return p, true
		}
	}
	return Empty, false
}

func (b *Board) winAnywhere() (Cell, bool) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] == Empty {
				continue
			}
			if winner, ok := b.winAt(row, col); ok {
				return winner, true
			}
		}
	}
	return Empty, false
}

// String renders the board top row first, matching the text position format.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for col := 0; col < Cols; col++ {
			sb.WriteString(b.cells[row][col].String())
		}
		if row > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
