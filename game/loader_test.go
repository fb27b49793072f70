package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("parsing a valid position", func(t *testing.T) {
		input := strings.Join([]string{
			"UCT",
			"Y",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOROOO",
			"OORYOOO",
		}, "\n")

		pos, err := Load(strings.NewReader(input))

		require.NoError(t, err)
		require.Equal(t, "UCT", pos.Strategy)
		require.Equal(t, Yellow, pos.Player)
		require.Equal(t, Red, pos.Board.Cell(0, 2), "Bottom file row should map to row 0")
		require.Equal(t, Yellow, pos.Board.Cell(0, 3))
		require.Equal(t, Red, pos.Board.Cell(1, 3), "Second file row from the bottom should map to row 1")
		require.Equal(t, Empty, pos.Board.Cell(5, 0), "Top file row should map to the top board row")
	})

	t.Run("seeding the last-move marker from a loaded board", func(t *testing.T) {
		input := strings.Join([]string{
			"PMCGS",
			"R",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"YOOOOOO",
		}, "\n")

		pos, err := Load(strings.NewReader(input))

		require.NoError(t, err)
		_, _, ok := pos.Board.LastMove()
		require.True(t, ok, "Marker should be set for a non-empty loaded board")
		require.Equal(t, 1, pos.Board.Moves(), "History should hold the seeded entry")
	})

	t.Run("leaving the marker unset for an empty board", func(t *testing.T) {
		input := strings.Join([]string{
			"UR",
			"R",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
		}, "\n")

		pos, err := Load(strings.NewReader(input))

		require.NoError(t, err)
		_, _, ok := pos.Board.LastMove()
		require.False(t, ok, "Marker should be unset for an empty loaded board")
	})

	t.Run("rejecting a truncated file", func(t *testing.T) {
		input := "UCT\nY\nOOOOOOO"

		_, err := Load(strings.NewReader(input))

		require.Error(t, err, "Missing board rows should be rejected")
	})

	t.Run("rejecting a row with the wrong width", func(t *testing.T) {
		input := strings.Join([]string{
			"UCT",
			"Y",
			"OOOOOOO",
			"OOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
		}, "\n")

		_, err := Load(strings.NewReader(input))

		require.Error(t, err, "Short board rows should be rejected")
	})

	t.Run("rejecting an invalid player", func(t *testing.T) {
		input := strings.Join([]string{
			"UCT",
			"X",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
		}, "\n")

		_, err := Load(strings.NewReader(input))

		require.Error(t, err, "Player must be R or Y")
	})

	t.Run("rejecting an invalid cell character", func(t *testing.T) {
		input := strings.Join([]string{
			"UCT",
			"Y",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOOOOO",
			"OOOXOOO",
			"OOOOOOO",
		}, "\n")

		_, err := Load(strings.NewReader(input))

		require.Error(t, err, "Cells must be R, Y or O")
	})
}
