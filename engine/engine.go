package engine

import "pig/experiments/metrics"

// MaxTurns caps a game so a policy that never banks cannot spin forever.
// Games between sane strategies finish in well under a hundred turns.
const MaxTurns = 500

type Engine interface {
	// Run starts a game till a player wins or a max number of turns is
	// reached and reports the winner with the game's records
	Run() (winner string, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}
