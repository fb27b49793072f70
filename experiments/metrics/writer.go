package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// MatchupRecord tallies one tournament pairing.
type MatchupRecord struct {
	Agent1 string
	Agent2 string
	Wins1  int
	Wins2  int
	Draws  int
}

// GameRecord describes one tournament game.
type GameRecord struct {
	ID     int
	Agent1 string
	Agent2 string
	GameMetric
}

// Writer exports tournament results as CSV files under a timestamped
// directory.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory the writer exports into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteMatchupRecords(records []MatchupRecord) error {
	path := filepath.Join(w.baseDir, "matchup_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create matchup records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"agent1", "agent2", "wins1", "wins2", "draws"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write matchup records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Agent1,
			record.Agent2,
			strconv.Itoa(record.Wins1),
			strconv.Itoa(record.Wins2),
			strconv.Itoa(record.Draws),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write matchup record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"id", "agent1", "agent2", "starting_player", "result", "start_time", "end_time", "duration", "total_moves"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			record.Agent1,
			record.Agent2,
			record.StartingPlayer,
			record.Result,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}
