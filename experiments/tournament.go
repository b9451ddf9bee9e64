package experiments

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"pig/engine"
	"pig/experiments/metrics"
	"pig/game"
	"pig/strategy"
)

const (
	// DefaultGamesPerPairing balances rating confidence against runtime.
	DefaultGamesPerPairing = 100
	// DefaultGoroutines plays this many games concurrently.
	DefaultGoroutines = 4
)

// job is one scheduled game of a series.
type job struct {
	config1 metrics.StrategyConfig
	config2 metrics.StrategyConfig
	seed    uint64
	starter int
}

// outcome is a finished game's records before numbering.
type outcome struct {
	winner string
	metric metrics.GameMetric
	turns  []metrics.TurnMetric
}

// RunStrategies plays a round-robin series between bank-at-k strategies,
// rates the field and stores all records under dir.
func RunStrategies(holds []int, games, goroutines int, baseSeed uint64, dir string) error {
	configs, err := buildConfigs(holds)
	if err != nil {
		return err
	}
	if games <= 0 {
		games = DefaultGamesPerPairing
	}
	if goroutines <= 0 {
		goroutines = DefaultGoroutines
	}

	log.Info().Msgf("starting strategies series: %d strategies, %d games per pairing, %d goroutines",
		len(configs), games, goroutines)

	gameRecords, turnRecords := playSeries(configs, games, goroutines, baseSeed)
	ratings := rateSeries(configs, gameRecords)

	if err := store(dir, configs, gameRecords, turnRecords, ratings); err != nil {
		return err
	}

	for _, rating := range ratings.Standings() {
		log.Info().Msgf("%s: rating %.0f (%d wins, %d losses)",
			rating.Name, rating.Rating, rating.Wins, rating.Losses)
	}
	return nil
}

// buildConfigs numbers one config per distinct hold point.
func buildConfigs(holds []int) ([]metrics.StrategyConfig, error) {
	configs := []metrics.StrategyConfig{}
	seen := map[int]bool{}
	for _, k := range holds {
		if k <= 0 {
			return nil, fmt.Errorf("cannot use hold point %d: must be positive", k)
		}
		if seen[k] {
			continue
		}
		seen[k] = true
		configs = append(configs, metrics.StrategyConfig{
			ID:        len(configs) + 1,
			Name:      fmt.Sprintf("hold%d", k),
			HoldPoint: k,
		})
	}
	if len(configs) < 2 {
		return nil, fmt.Errorf("cannot run a series with %d strategies: need at least two distinct hold points", len(configs))
	}
	return configs, nil
}

// schedule lays out every game of the series up front: each pairing plays
// the configured number of games, starters alternate within a pairing and
// every game gets its own seed derived from the base seed, so a whole run
// is reproducible from one number.
func schedule(configs []metrics.StrategyConfig, games int, baseSeed uint64) []job {
	jobs := []job{}
	for i := 0; i < len(configs); i++ {
		for j := i + 1; j < len(configs); j++ {
			for g := 0; g < games; g++ {
				jobs = append(jobs, job{
					config1: configs[i],
					config2: configs[j],
					seed:    baseSeed + uint64(len(jobs)),
					starter: g % 2,
				})
			}
		}
	}
	return jobs
}

// playSeries runs every scheduled game over a pool of goroutines. Each
// worker writes to its jobs' own result slots, so the records come out in
// schedule order no matter which goroutine finishes first.
func playSeries(configs []metrics.StrategyConfig, games, goroutines int, baseSeed uint64) ([]metrics.GameRecord, []metrics.TurnRecord) {
	jobs := schedule(configs, games, baseSeed)
	outcomes := make([]outcome, len(jobs))

	task := make(chan int, len(jobs))
	for i := range jobs {
		task <- i
	}
	close(task)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for index := range task {
				outcomes[index] = play(jobs[index])
			}
		}()
	}
	wg.Wait()

	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}
	for index, result := range outcomes {
		id := index + 1
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         id,
			Strategy1:  jobs[index].config1.ID,
			Strategy2:  jobs[index].config2.ID,
			GameMetric: result.metric,
		})
		for _, turn := range result.turns {
			turnRecords = append(turnRecords, metrics.TurnRecord{
				Game:       id,
				TurnMetric: turn,
			})
		}
	}
	return gameRecords, turnRecords
}

// play runs a single game of the series.
func play(j job) outcome {
	names := [2]string{j.config1.Name, j.config2.Name}
	strategies := [2]game.Strategy{
		strategy.NewHoldAt(j.config1.HoldPoint),
		strategy.NewHoldAt(j.config2.HoldPoint),
	}

	e := engine.NewLocal(names, strategies, j.seed, engine.WithStartingPlayer(j.starter))
	winner, metric, turns := e.Run()

	return outcome{winner: winner, metric: metric, turns: turns}
}

// rateSeries replays the outcomes in schedule order through the rating
// system.
func rateSeries(configs []metrics.StrategyConfig, records []metrics.GameRecord) metrics.Ratings {
	names := make([]string, len(configs))
	byID := make(map[int]string, len(configs))
	for i, config := range configs {
		names[i] = config.Name
		byID[config.ID] = config.Name
	}

	ratings := metrics.NewRatings(names)
	for _, record := range records {
		name1, name2 := byID[record.Strategy1], byID[record.Strategy2]
		if record.Winner == name1 {
			ratings.Update(name1, name2)
		} else {
			ratings.Update(name2, name1)
		}
	}
	return ratings
}

// store writes the series' files under dir.
func store(dir string, configs []metrics.StrategyConfig, gameRecords []metrics.GameRecord, turnRecords []metrics.TurnRecord, ratings metrics.Ratings) error {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return fmt.Errorf("failed to create series writer: %w", err)
	}

	if err := writer.WriteStrategyConfigs(configs); err != nil {
		return err
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteTurnRecords(turnRecords); err != nil {
		return err
	}
	if err := writer.WriteRatings(ratings.Standings()); err != nil {
		return err
	}

	log.Info().Msgf("stored %d game records in %s", len(gameRecords), writer.Dir())
	return nil
}
