package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"pig/experiments/metrics"
)

// throughputLadder is the pool sizes a throughput series sweeps.
var throughputLadder = []int{1, 2, 4, 8, 16, 32}

// RunThroughput plays the same schedule of games at each pool size and
// stores how many games per second every size sustained. The schedule
// reuses the round-robin pairings, so the workload matches a strategies
// series of the same arguments.
func RunThroughput(holds []int, games int, baseSeed uint64, dir string) error {
	configs, err := buildConfigs(holds)
	if err != nil {
		return err
	}
	if games <= 0 {
		games = DefaultGamesPerPairing
	}

	log.Info().Msgf("starting throughput series: %d strategies, %d games per pairing",
		len(configs), games)

	records := []metrics.ThroughputRecord{}
	for _, goroutines := range throughputLadder {
		start := time.Now()
		gameRecords, _ := playSeries(configs, games, goroutines, baseSeed)
		elapsed := time.Since(start)

		played := len(gameRecords)
		rate := 0.0
		if elapsed > 0 {
			rate = float64(played) / elapsed.Seconds()
		}
		records = append(records, metrics.ThroughputRecord{
			Goroutines:     goroutines,
			Games:          played,
			Duration:       elapsed,
			GamesPerSecond: rate,
		})

		log.Info().Msgf("%d goroutines: %d games in %s (%.0f games/s)",
			goroutines, played, elapsed, rate)
	}

	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create series writer: %w", err)
	}
	if err := writer.WriteThroughput(records); err != nil {
		return err
	}

	log.Info().Msgf("stored throughput records in %s", writer.Dir())
	return nil
}
