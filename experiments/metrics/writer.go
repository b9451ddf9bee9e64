package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Writer struct {
	baseDir string
}

// NewWriter creates a subfolder of dir named by the current timestamp and
// writes all of a run's files into it.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory this run's files are written to.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteStrategyConfigs(configs []StrategyConfig) error {
	// Create a file
	path := filepath.Join(w.baseDir, "strategy_configs.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create strategy configs file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"id", "name", "hold_point"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write strategy configs header: %w", err)
	}

	// Write each row
	for _, config := range configs {
		row := []string{
			strconv.Itoa(config.ID),
			config.Name,
			strconv.Itoa(config.HoldPoint),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write strategy config row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "game_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create game records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{
		"id", "strategy1", "strategy2", "game_id", "seed", "starting_player",
		"winner", "score1", "score2", "turns", "rolls", "busts", "banks",
		"start_time", "end_time", "duration", "timed_out",
	}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write game records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Strategy1),
			strconv.Itoa(record.Strategy2),
			record.GameID,
			strconv.FormatUint(record.Seed, 10),
			strconv.Itoa(record.StartingPlayer),
			record.Winner,
			strconv.Itoa(record.Scores[0]),
			strconv.Itoa(record.Scores[1]),
			strconv.Itoa(record.Turns),
			strconv.Itoa(record.Rolls),
			strconv.Itoa(record.Busts),
			strconv.Itoa(record.Banks),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.FormatBool(record.TimedOut),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write game record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteTurnRecords(records []TurnRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "turn_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create turn records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"game", "turn", "player", "rolls", "total", "banked", "score"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write turn records header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			record.Player,
			strconv.Itoa(record.Rolls),
			strconv.Itoa(record.Total),
			strconv.FormatBool(record.Banked),
			strconv.Itoa(record.Score),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write turn record row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteThroughput(records []ThroughputRecord) error {
	// Create a file
	path := filepath.Join(w.baseDir, "throughput.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create throughput file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"goroutines", "games", "duration", "games_per_second"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write throughput header: %w", err)
	}

	// Write each row
	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Goroutines),
			strconv.Itoa(record.Games),
			record.Duration.String(),
			strconv.FormatFloat(record.GamesPerSecond, 'f', 1, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write throughput row: %w", err)
		}
	}

	return nil
}

func (w *Writer) WriteRatings(ratings []Rating) error {
	// Create a file
	path := filepath.Join(w.baseDir, "ratings.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create ratings file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	// Write header
	header := []string{"name", "rating", "deviation", "volatility", "wins", "losses"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write ratings header: %w", err)
	}

	// Write each row
	for _, rating := range ratings {
		row := []string{
			rating.Name,
			strconv.FormatFloat(rating.Rating, 'f', 2, 64),
			strconv.FormatFloat(rating.Deviation, 'f', 2, 64),
			strconv.FormatFloat(rating.Volatility, 'f', 4, 64),
			strconv.Itoa(rating.Wins),
			strconv.Itoa(rating.Losses),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write rating row: %w", err)
		}
	}

	return nil
}
