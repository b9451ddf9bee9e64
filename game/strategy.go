package game

// Decision is a policy's verdict after a non-busting roll.
type Decision int

const (
	// Continue keeps rolling, risking the turn total.
	Continue Decision = iota
	// Bank commits the turn total to the player's score and ends the turn.
	Bank
)

func (d Decision) String() string {
	if d == Bank {
		return "bank"
	}
	return "continue"
}

// Strategy decides whether the active player keeps rolling or banks, given
// the player's banked score and the current turn total. The engine consults
// it once per non-busting roll; it is never asked about a roll of 1.
type Strategy interface {
	Decide(banked, turnTotal int) Decision
}
