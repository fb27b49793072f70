package main

import (
	"strings"

	"connectfour/game"

	"github.com/muesli/termenv"
)

// renderBoard draws the board top row first with colored pieces, followed by
// the column numbers.
func renderBoard(b *game.Board) string {
	profile := termenv.ColorProfile()
	red := profile.Color("1")
	yellow := profile.Color("3")

	var sb strings.Builder
	for row := game.Rows - 1; row >= 0; row-- {
		for col := 0; col < game.Cols; col++ {
			switch b.Cell(row, col) {
			case game.Red:
				sb.WriteString(termenv.String("R").Foreground(red).String())
			case game.Yellow:
				sb.WriteString(termenv.String("Y").Foreground(yellow).String())
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("1234567")
	return sb.String()
}
