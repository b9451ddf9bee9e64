package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedRoller returns a fixed sequence of rolls.
type scriptedRoller struct {
	rolls []int
	next  int
}

func (r *scriptedRoller) Roll() int {
	value := r.rolls[r.next]
	r.next++
	return value
}

// decideFunc adapts a function to the Strategy interface.
type decideFunc func(banked, turnTotal int) Decision

func (f decideFunc) Decide(banked, turnTotal int) Decision {
	return f(banked, turnTotal)
}

var alwaysContinue = decideFunc(func(banked, turnTotal int) Decision {
	return Continue
})

var alwaysBank = decideFunc(func(banked, turnTotal int) Decision {
	return Bank
})

// recordingSink captures the event stream for assertions.
type recordingSink struct {
	events []string
}

func (s *recordingSink) Rolled(p *Player, value, turnTotal int) {
	s.events = append(s.events, "rolled")
}

func (s *recordingSink) Busted(p *Player) {
	s.events = append(s.events, "busted")
}

func (s *recordingSink) Banked(p *Player, turnTotal int) {
	s.events = append(s.events, "banked")
}

func TestPlayTurn(t *testing.T) {
	t.Run("should forfeit the turn on a first-roll bust", func(t *testing.T) {
		die := &scriptedRoller{rolls: []int{1}}
		player := NewPlayer("Player 1")
		consulted := false
		strategy := decideFunc(func(banked, turnTotal int) Decision {
			consulted = true
			return Continue
		})
		sink := &recordingSink{}

		result := PlayTurn(die, player, strategy, sink)

		require.Equal(t, Busted, result.State)
		require.Equal(t, 0, result.Total)
		require.Equal(t, 1, result.Rolls)
		require.Equal(t, 0, player.Score)
		require.False(t, consulted, "strategy must not be consulted on a bust")
		require.Equal(t, []string{"rolled", "busted"}, sink.events)
	})

	t.Run("should forfeit accumulated points on a later bust", func(t *testing.T) {
		die := &scriptedRoller{rolls: []int{5, 6, 1}}
		player := NewPlayer("Player 1")
		player.Score = 30
		sink := &recordingSink{}

		result := PlayTurn(die, player, alwaysContinue, sink)

		require.Equal(t, Busted, result.State)
		require.Equal(t, 0, result.Total)
		require.Equal(t, 3, result.Rolls)
		require.Equal(t, 30, player.Score, "banked points survive a bust")
		require.Equal(t, []string{"rolled", "rolled", "rolled", "busted"}, sink.events)
	})

	t.Run("should bank the turn total when the strategy holds", func(t *testing.T) {
		die := &scriptedRoller{rolls: []int{3, 4}}
		player := NewPlayer("Player 1")
		strategy := decideFunc(func(banked, turnTotal int) Decision {
			if turnTotal >= 7 {
				return Bank
			}
			return Continue
		})
		sink := &recordingSink{}

		result := PlayTurn(die, player, strategy, sink)

		require.Equal(t, Banked, result.State)
		require.Equal(t, 7, result.Total)
		require.Equal(t, 2, result.Rolls)
		require.Equal(t, 7, player.Score)
		require.Equal(t, []string{"rolled", "rolled", "banked"}, sink.events)
	})

	t.Run("should bank a single roll", func(t *testing.T) {
		die := &scriptedRoller{rolls: []int{2}}
		player := NewPlayer("Player 2")

		result := PlayTurn(die, player, alwaysBank, NopSink{})

		require.Equal(t, Banked, result.State)
		require.Equal(t, 2, result.Total)
		require.Equal(t, 1, result.Rolls)
		require.Equal(t, 2, player.Score)
	})

	t.Run("should pass the running totals to the strategy", func(t *testing.T) {
		die := &scriptedRoller{rolls: []int{2, 3, 6}}
		player := NewPlayer("Player 1")
		player.Score = 40
		var banked, totals []int
		strategy := decideFunc(func(b, turnTotal int) Decision {
			banked = append(banked, b)
			totals = append(totals, turnTotal)
			if turnTotal >= 11 {
				return Bank
			}
			return Continue
		})

		PlayTurn(die, player, strategy, NopSink{})

		require.Equal(t, []int{40, 40, 40}, banked)
		require.Equal(t, []int{2, 5, 11}, totals)
	})

	t.Run("should accumulate scores across turns", func(t *testing.T) {
		player := NewPlayer("Player 1")

		PlayTurn(&scriptedRoller{rolls: []int{6}}, player, alwaysBank, NopSink{})
		PlayTurn(&scriptedRoller{rolls: []int{1}}, player, alwaysBank, NopSink{})
		PlayTurn(&scriptedRoller{rolls: []int{4}}, player, alwaysBank, NopSink{})

		require.Equal(t, 10, player.Score)
	})
}
