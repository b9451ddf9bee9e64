package game

// TurnState tracks where a single turn stands.
type TurnState int

const (
	// Rolling means the active player may roll again.
	Rolling TurnState = iota
	// Busted means a 1 was rolled and the turn total is forfeited.
	Busted
	// Banked means the turn total was committed to the banked score.
	Banked
)

func (t TurnState) String() string {
	switch t {
	case Busted:
		return "busted"
	case Banked:
		return "banked"
	default:
		return "rolling"
	}
}

// TurnResult summarizes one resolved turn.
type TurnResult struct {
	State TurnState
	Total int // points accumulated this turn, 0 after a bust
	Rolls int // rolls taken, the busting roll included
}

// PlayTurn resolves one turn for p: roll, accumulate and consult the
// player's strategy until it banks or a 1 forfeits the turn total. The
// banked score changes only when the turn ends in a bank.
func PlayTurn(die Roller, p *Player, s Strategy, sink EventSink) TurnResult {
	state := Rolling
	total := 0
	rolls := 0

	for state == Rolling {
		value := die.Roll()
		rolls++

		if value == 1 {
			sink.Rolled(p, value, total)
			sink.Busted(p)
			state = Busted
			total = 0
			continue
		}

		total += value
		sink.Rolled(p, value, total)

		if s.Decide(p.Score, total) == Bank {
			p.AddToScore(total)
			sink.Banked(p, total)
			state = Banked
		}
	}

	return TurnResult{State: state, Total: total, Rolls: rolls}
}
