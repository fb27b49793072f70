package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("listing all columns on an empty board", func(t *testing.T) {
		b := NewBoard()

		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, b.LegalMoves(),
			"Every column should be legal on an empty board")
	})

	t.Run("excluding a full column", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			p := Red
			if i%2 == 0 {
				p = Yellow
			}
			require.NoError(t, b.Apply(4, p))
		}

		require.Equal(t, []int{1, 2, 3, 5, 6, 7}, b.LegalMoves(),
			"A full column should not be legal")
	})

	t.Run("returning no moves exactly when the board is full", func(t *testing.T) {
		b := fillWithoutWin(t)

		require.Empty(t, b.LegalMoves(), "A full board should have no legal moves")
	})
}

func TestApply(t *testing.T) {
	t.Run("stacking pieces from the bottom", func(t *testing.T) {
		b := NewBoard()

		require.NoError(t, b.Apply(3, Red))
		require.NoError(t, b.Apply(3, Yellow))

		require.Equal(t, Red, b.Cell(0, 2), "First piece should occupy the bottom cell")
		require.Equal(t, Yellow, b.Cell(1, 2), "Second piece should stack on top")
		require.Equal(t, 2, b.Moves(), "History should record both moves")

		row, col, ok := b.LastMove()
		require.True(t, ok, "Last-move marker should be set")
		require.Equal(t, 1, row)
		require.Equal(t, 2, col)
	})

	t.Run("rejecting a move into a full column", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < Rows; i++ {
			require.NoError(t, b.Apply(1, Red))
		}

		err := b.Apply(1, Yellow)

		require.ErrorIs(t, err, ErrColumnFull, "Should fail with ErrColumnFull")
		require.Equal(t, Rows, b.Moves(), "Failed apply should not touch the history")
	})
}

func TestUndo(t *testing.T) {
	t.Run("restoring the board after nested apply and undo", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Apply(2, Red))
		before := b.String()
		beforeMoves := b.Moves()
		beforeLegal := b.LegalMoves()

		columns := []int{4, 4, 5, 1, 4, 7}
		p := Yellow
		for _, col := range columns {
			require.NoError(t, b.Apply(col, p))
			p = p.Opponent()
		}
		for i := len(columns) - 1; i >= 0; i-- {
			b.Undo(columns[i])
		}

		require.Equal(t, before, b.String(), "Grid should be restored exactly")
		require.Equal(t, beforeMoves, b.Moves(), "History depth should be restored")
		require.Equal(t, beforeLegal, b.LegalMoves(), "Legal moves should be restored")

		row, col, ok := b.LastMove()
		require.True(t, ok, "Last-move marker should point at the original move again")
		require.Equal(t, 0, row)
		require.Equal(t, 1, col)
	})

	t.Run("clearing the marker when the last piece is removed", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Apply(6, Yellow))

		b.Undo(6)

		_, _, ok := b.LastMove()
		require.False(t, ok, "Marker should be unset on an empty board")
		require.Equal(t, 0, b.Moves())
	})

	t.Run("falling back to a column scan without a matching history entry", func(t *testing.T) {
		// A loaded position only knows its most recent move, so undoing any
		// other column cannot use the history stack.
		b := NewBoard()
		b.cells[0][0] = Red
		b.cells[1][0] = Yellow
		b.cells[0][3] = Yellow
		seedHistory(b)

		b.Undo(4)

		require.Equal(t, Empty, b.Cell(0, 3), "Topmost piece in the column should be removed")
		require.Equal(t, Yellow, b.Cell(1, 0), "Other columns should be untouched")
		require.Equal(t, Red, b.Cell(0, 0), "Other columns should be untouched")
	})
}

func TestTerminal(t *testing.T) {
	t.Run("detecting a horizontal win", func(t *testing.T) {
		b := NewBoard()
		for _, col := range []int{1, 2, 3} {
			require.NoError(t, b.Apply(col, Yellow))
			require.NoError(t, b.Apply(col, Red))
		}
		require.NoError(t, b.Apply(4, Yellow))

		done, outcome := b.Terminal()

		require.True(t, done, "Four in a row should end the game")
		require.Equal(t, YellowWins, outcome)
	})

	t.Run("detecting a vertical win", func(t *testing.T) {
		b := NewBoard()
		for i := 0; i < 3; i++ {
			require.NoError(t, b.Apply(5, Red))
			require.NoError(t, b.Apply(2, Yellow))
		}
		require.NoError(t, b.Apply(5, Red))

		done, outcome := b.Terminal()

		require.True(t, done, "Four stacked pieces should end the game")
		require.Equal(t, RedWins, outcome)
	})

	t.Run("detecting a rising diagonal win", func(t *testing.T) {
		b := NewBoard()
		// Yellow on (0,0) (1,1) (2,2) (3,3) with red filler underneath.
		require.NoError(t, b.Apply(1, Yellow))
		require.NoError(t, b.Apply(2, Red))
		require.NoError(t, b.Apply(2, Yellow))
		require.NoError(t, b.Apply(3, Red))
		require.NoError(t, b.Apply(3, Red))
		require.NoError(t, b.Apply(3, Yellow))
		require.NoError(t, b.Apply(4, Red))
		require.NoError(t, b.Apply(4, Red))
		require.NoError(t, b.Apply(4, Red))
		require.NoError(t, b.Apply(4, Yellow))

		done, outcome := b.Terminal()

		require.True(t, done, "Diagonal four should end the game")
		require.Equal(t, YellowWins, outcome)
	})

	t.Run("reporting an ongoing game as non-terminal", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Apply(4, Yellow))
		require.NoError(t, b.Apply(4, Red))

		done, _ := b.Terminal()

		require.False(t, done, "Game should continue")
	})

	t.Run("reporting a draw on a full board with no line of four", func(t *testing.T) {
		b := fillWithoutWin(t)

		done, outcome := b.Terminal()

		require.True(t, done, "Full board should be terminal")
		require.Equal(t, Draw, outcome, "No line of four should mean a draw")
	})

	t.Run("finding a win by full scan when no marker is set", func(t *testing.T) {
		b := NewBoard()
		for col := 0; col < 4; col++ {
			b.cells[0][col] = Red
		}

		done, outcome := b.Terminal()

		require.True(t, done, "Full-board scan should find the line")
		require.Equal(t, RedWins, outcome)
	})
}

// fillWithoutWin fills the board in a column pattern that produces no line of
// four: columns are paired so no player ever gets more than three in a line.
func fillWithoutWin(t *testing.T) *Board {
	t.Helper()
	b := NewBoard()
	// Checkerboard shifted every two rows: every line tops out at two in a row.
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			p := Red
			if (row/2+col)%2 != 0 {
				p = Yellow
			}
			b.cells[row][col] = p
		}
	}
	b.last = square{row: Rows - 1, col: 0}
	b.hasLast = true
	done, _ := b.Terminal()
	require.True(t, done)
	return b
}
