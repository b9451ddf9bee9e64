package engine

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"pig/experiments/metrics"
	"pig/game"
)

// Option configures a Local engine.
type Option func(*Local)

// WithSink routes turn events (rolls, busts, banks) to sink. Games narrate
// nothing by default.
func WithSink(sink game.EventSink) Option {
	return func(l *Local) {
		l.sink = sink
	}
}

// WithStartingPlayer sets which player index opens the game. Even indexes
// open with the first player, odd ones with the second, negatives included.
func WithStartingPlayer(index int) Option {
	return func(l *Local) {
		l.active = ((index % 2) + 2) % 2
	}
}

// WithRoller substitutes the seeded die, for tests.
func WithRoller(die game.Roller) Option {
	return func(l *Local) {
		l.die = die
	}
}

// WithClock substitutes the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Local) {
		l.now = now
	}
}

// Local runs a game of Pig between two players on this process. The zero
// starting player opens unless an option says otherwise.
type Local struct {
	id         string
	seed       uint64
	players    [2]*game.Player
	strategies [2]game.Strategy
	die        game.Roller
	sink       game.EventSink
	now        func() time.Time
	active     int
	startedBy  int
	turns      []metrics.TurnMetric
}

// NewLocal sets up a game between the named players. The die is seeded
// with seed, so a finished game can be replayed from its record.
func NewLocal(names [2]string, strategies [2]game.Strategy, seed uint64, options ...Option) *Local {
	if strategies[0] == nil || strategies[1] == nil {
		panic("both players need a strategy")
	}

	l := &Local{
		id:         uuid.New().String(),
		seed:       seed,
		players:    [2]*game.Player{game.NewPlayer(names[0]), game.NewPlayer(names[1])},
		strategies: strategies,
		die:        game.NewDie(seed),
		sink:       game.NopSink{},
		now:        time.Now,
	}
	for _, option := range options {
		option(l)
	}
	l.startedBy = l.active
	return l
}

// IsWinner reports whether either player has banked the winning score.
func (l *Local) IsWinner() bool {
	return l.players[0].Score >= game.WinningScore || l.players[1].Score >= game.WinningScore
}

// PlayTurn resolves one turn for the active player, records it and passes
// the turn to the other player.
func (l *Local) PlayTurn() {
	player := l.players[l.active]
	result := game.PlayTurn(l.die, player, l.strategies[l.active], l.sink)

	l.turns = append(l.turns, metrics.TurnMetric{
		Turn:   len(l.turns) + 1,
		Player: player.Name,
		Rolls:  result.Rolls,
		Total:  result.Total,
		Banked: result.State == game.Banked,
		Score:  player.Score,
	})
	l.active = 1 - l.active
}

// Run plays turns until a player banks the winning score.
func (l *Local) Run() (string, metrics.GameMetric, []metrics.TurnMetric) {
	start := l.begin()

	for !l.IsWinner() && len(l.turns) < MaxTurns {
		l.PlayTurn()
	}

	return l.finish(start, false)
}

// begin logs the matchup and stamps the game's start.
func (l *Local) begin() time.Time {
	log.Info().Str("game", l.id).Uint64("seed", l.seed).
		Msgf("%s vs %s, player %d is starting", l.players[0].Name, l.players[1].Name, l.active+1)
	return l.now()
}

// leader returns the player with the higher banked score. On equal scores
// the first player wins: they bear the disadvantage of a fixed turn order,
// so the tie goes to them.
func (l *Local) leader() *game.Player {
	if l.players[1].Score > l.players[0].Score {
		return l.players[1]
	}
	return l.players[0]
}

// finish declares the leader the winner and assembles the game's record.
func (l *Local) finish(start time.Time, timedOut bool) (string, metrics.GameMetric, []metrics.TurnMetric) {
	end := l.now()
	winner := l.leader()

	rolls, busts, banks := 0, 0, 0
	for _, turn := range l.turns {
		rolls += turn.Rolls
		if turn.Banked {
			banks++
		} else {
			busts++
		}
	}

	log.Info().Str("game", l.id).Bool("timed_out", timedOut).
		Msgf("%s won: %s, %s", winner.Name, l.players[0], l.players[1])

	metric := metrics.GameMetric{
		GameID:         l.id,
		Seed:           l.seed,
		StartingPlayer: l.startedBy,
		Winner:         winner.Name,
		Scores:         [2]int{l.players[0].Score, l.players[1].Score},
		Turns:          len(l.turns),
		Rolls:          rolls,
		Busts:          busts,
		Banks:          banks,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TimedOut:       timedOut,
	}
	return winner.Name, metric, l.turns
}
