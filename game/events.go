package game

import (
	"fmt"
	"io"
)

// EventSink observes turn resolution. The engine reports every roll, bust
// and bank; sinks render or ignore them.
type EventSink interface {
	// Rolled reports a roll. On a bust the turn total excludes the 1,
	// otherwise it includes the reported value.
	Rolled(p *Player, value, turnTotal int)
	// Busted reports a roll of 1 ending the turn with no points.
	Busted(p *Player)
	// Banked reports the turn total being committed; p.Score already
	// includes it.
	Banked(p *Player, turnTotal int)
}

// ConsoleSink narrates a game, one line per event.
type ConsoleSink struct {
	w io.Writer
}

func NewConsoleSink(w io.Writer) *ConsoleSink {
	return &ConsoleSink{w: w}
}

func (s *ConsoleSink) Rolled(p *Player, value, turnTotal int) {
	fmt.Fprintf(s.w, "%s rolled: %d\n", p.Name, value)
	if value != 1 {
		fmt.Fprintf(s.w, "Turn total: %d, Total score: %d\n", turnTotal, p.Score)
	}
}

func (s *ConsoleSink) Busted(p *Player) {
	fmt.Fprintf(s.w, "%s rolled a 1! No points added. Turn over.\n", p.Name)
}

func (s *ConsoleSink) Banked(p *Player, turnTotal int) {
	fmt.Fprintf(s.w, "%s's total score: %d\n", p.Name, p.Score)
}

// NopSink discards all events. Benchmark games narrate nothing.
type NopSink struct{}

func (NopSink) Rolled(p *Player, value, turnTotal int) {}

func (NopSink) Busted(p *Player) {}

func (NopSink) Banked(p *Player, turnTotal int) {}
