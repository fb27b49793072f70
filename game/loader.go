package game

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Position is a starting position read from a text file:
//
//	line 1:    strategy name (UR, PMCGS or UCT)
//	line 2:    player to move (R or Y)
//	lines 3-8: board rows, top row first, cells R, Y or O
//
// The board is normalized so that row 0 is the bottom row.
type Position struct {
	Board    *Board
	Player   Cell
	Strategy string
}

// Load parses a position from r.
func Load(r io.Reader) (*Position, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read position: %w", err)
	}
	if len(lines) < Rows+2 {
		return nil, fmt.Errorf("position must have at least %d lines (strategy, player, %d board rows), got %d",
			Rows+2, Rows, len(lines))
	}

	var player Cell
	switch lines[1] {
	case "R":
		player = Red
	case "Y":
		player = Yellow
	default:
		return nil, fmt.Errorf("invalid player %q: must be R or Y", lines[1])
	}

	board := NewBoard()
	for i, line := range lines[2 : Rows+2] {
		if len(line) != Cols {
			return nil, fmt.Errorf("board row %d must have exactly %d cells, got %d", i+3, Cols, len(line))
		}
		row := Rows - 1 - i // file is top row first
		for col, ch := range line {
			switch ch {
			case 'R':
				board.cells[row][col] = Red
			case 'Y':
				board.cells[row][col] = Yellow
			case 'O':
			default:
				return nil, fmt.Errorf("invalid cell %q in board row %d", string(ch), i+3)
			}
		}
	}
	seedHistory(board)

	return &Position{
		Board:    board,
		Player:   player,
		Strategy: lines[0],
	}, nil
}

// LoadFile parses a position from the file at path.
func LoadFile(path string) (*Position, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open position file: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// seedHistory marks one occupied cell as the last move so the win check can
// take its fast path. The full move order of a loaded position is unknown,
// so the history stack holds that single entry and Undo may fall back to
// scanning if the search ever unwinds past it.
func seedHistory(b *Board) {
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if b.cells[row][col] != Empty {
				b.last = square{row: row, col: col}
				b.hasLast = true
				b.history = append(b.history[:0], b.last)
			}
		}
	}
}
