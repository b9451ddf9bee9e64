package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"pig/config"
	"pig/engine"
	"pig/experiments"
	"pig/game"
	"pig/strategy"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "pig: %v\n", err)
		os.Exit(1)
	}

	player1 := flag.String("player1", "", "Player 1 type: human, computer, hold:<k> or script:<path>")
	player2 := flag.String("player2", "", "Player 2 type: human, computer, hold:<k> or script:<path>")
	timed := flag.Bool("timed", false, "Stop the game after the time limit and declare the leader")
	seed := flag.Int64("seed", cfg.Seed, "Die seed; 0 seeds from the current time")
	experiment := flag.String("experiment", "", "Run a benchmark series instead of a match (strategies, throughput)")
	holds := flag.String("holds", "10,15,20,25,30", "Hold points for the strategies series")
	games := flag.Int("games", experiments.DefaultGamesPerPairing, "Games per pairing in a series")
	goroutines := flag.Int("goroutines", experiments.DefaultGoroutines, "Concurrent games in a series")
	flag.Parse()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pig: unknown log level %q\n", cfg.LogLevel)
		os.Exit(1)
	}
	zerolog.SetGlobalLevel(level)

	if *experiment != "" {
		runSeries(*experiment, *holds, *games, *goroutines, resolveSeed(*seed), cfg.ResultsDir)
		return
	}

	runMatch(*player1, *player2, *timed, resolveSeed(*seed), cfg.TimeLimit)
}

// resolveSeed turns the seed flag into a die seed, drawing one from the
// clock when unset.
func resolveSeed(seed int64) uint64 {
	if seed == 0 {
		return uint64(time.Now().UnixNano())
	}
	return uint64(seed)
}

// runMatch plays a single narrated game on the console.
func runMatch(tag1, tag2 string, timed bool, seed uint64, limit time.Duration) {
	if tag1 == "" || tag2 == "" {
		fmt.Fprintln(os.Stderr, "pig: both -player1 and -player2 are required")
		flag.Usage()
		os.Exit(2)
	}

	// Both players read the same stdin, so they share one buffer.
	in := bufio.NewReader(os.Stdin)
	strategy1, err := strategy.Parse(tag1, "Player 1", in, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up player 1")
	}
	strategy2, err := strategy.Parse(tag2, "Player 2", in, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot set up player 2")
	}

	base := engine.NewLocal(
		[2]string{"Player 1", "Player 2"},
		[2]game.Strategy{strategy1, strategy2},
		seed,
		engine.WithSink(game.NewConsoleSink(os.Stdout)),
	)
	var e engine.Engine = base
	if timed {
		e = engine.NewTimed(base, limit)
	}

	fmt.Println("Welcome to the game of Pig!")
	winner, metric, _ := e.Run()

	score := metric.Scores[0]
	if metric.Scores[1] > score {
		score = metric.Scores[1]
	}
	if metric.TimedOut {
		fmt.Printf("Time's up! The winner is %s with %d points.\n", winner, score)
		return
	}
	fmt.Printf("Congratulations %s, you won with a score of %d!\n", winner, score)
}

// runSeries dispatches to a named benchmark series.
func runSeries(name, holds string, games, goroutines int, seed uint64, dir string) {
	points, err := parseHolds(holds)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot parse hold points")
	}

	switch name {
	case "strategies":
		err = experiments.RunStrategies(points, games, goroutines, seed, dir)
	case "throughput":
		err = experiments.RunThroughput(points, games, seed, dir)
	default:
		log.Fatal().Str("experiment", name).Msg("unknown experiment")
	}
	if err != nil {
		log.Fatal().Err(err).Msg("series failed")
	}
}

// parseHolds reads a comma-separated list of hold points.
func parseHolds(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	holds := make([]int, 0, len(parts))
	for _, part := range parts {
		k, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("cannot parse hold point %q: %w", part, err)
		}
		holds = append(holds, k)
	}
	return holds, nil
}
