// Package metrics defines the records a benchmark series produces and
// writes them out as CSV files for offline analysis.
package metrics

import "time"

// StrategyConfig identifies a benchmark strategy by its hold point.
type StrategyConfig struct {
	ID        int
	Name      string
	HoldPoint int
}

// TurnMetric summarizes one turn of a game.
type TurnMetric struct {
	Turn   int // 1-based position in the game
	Player string
	Rolls  int
	Total  int  // points accumulated, 0 after a bust
	Banked bool // false means the turn ended in a bust
	Score  int  // the player's banked score after the turn
}

// GameMetric summarizes one finished game.
type GameMetric struct {
	GameID         string
	Seed           uint64
	StartingPlayer int // player index, 0 or 1
	Winner         string
	Scores         [2]int
	Turns          int
	Rolls          int
	Busts          int
	Banks          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TimedOut       bool
}

// GameRecord ties a game to the benchmark strategies that played it.
type GameRecord struct {
	ID        int
	Strategy1 int // StrategyConfig.ID
	Strategy2 int // StrategyConfig.ID
	GameMetric
}

// TurnRecord ties a turn to its game.
type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}

// ThroughputRecord reports how fast one pool size played a fixed schedule
// of games.
type ThroughputRecord struct {
	Goroutines     int
	Games          int
	Duration       time.Duration
	GamesPerSecond float64
}
