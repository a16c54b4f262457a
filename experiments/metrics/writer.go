package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer dumps collected records as CSV files under a timestamped
// subfolder of the base directory.
type Writer struct {
	baseDir string
}

func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	path := filepath.Join(w.baseDir, "turn_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turn records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"turn", "moves", "digs", "requests", "waits", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write turn records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Moves),
			strconv.Itoa(record.Digs),
			strconv.Itoa(record.Requests),
			strconv.Itoa(record.Waits),
			record.Duration.String(),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write turn record row: %w", err)
		}
	}
	return nil
}

func (w *Writer) WriteGameRecord(record GameRecord) error {
	path := filepath.Join(w.baseDir, "game_record.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game record file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"turns", "my_score", "opponent_score", "duration"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write game record header: %w", err)
	}
	row := []string{
		strconv.Itoa(record.Turns),
		strconv.Itoa(record.MyScore),
		strconv.Itoa(record.OpponentScore),
		record.Duration.String(),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("failed to write game record row: %w", err)
	}
	return nil
}
