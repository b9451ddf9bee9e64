package engine

import (
	"time"

	"github.com/rs/zerolog/log"

	"pig/experiments/metrics"
)

// DefaultTimeLimit is the wall-clock budget for a timed game.
const DefaultTimeLimit = 60 * time.Second

// Timed wraps a Local engine and stops the run once the limit has elapsed.
// The clock is only consulted between turns, never during one: a turn in
// progress always finishes, the next one is not played. When the clock
// stops the game, the player leading at that instant wins with the usual
// tie rule.
type Timed struct {
	base  *Local
	limit time.Duration
}

// NewTimed wraps base with a wall-clock limit. A non-positive limit means
// the default.
func NewTimed(base *Local, limit time.Duration) *Timed {
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	return &Timed{base: base, limit: limit}
}

// Run plays turns until a player wins or the limit runs out.
func (t *Timed) Run() (string, metrics.GameMetric, []metrics.TurnMetric) {
	start := t.base.begin()

	for !t.base.IsWinner() && len(t.base.turns) < MaxTurns {
		if elapsed := t.base.now().Sub(start); elapsed > t.limit {
			log.Info().Str("game", t.base.id).Dur("limit", t.limit).Dur("elapsed", elapsed).
				Msg("time limit reached")
			return t.base.finish(start, true)
		}
		t.base.PlayTurn()
	}

	return t.base.finish(start, false)
}
